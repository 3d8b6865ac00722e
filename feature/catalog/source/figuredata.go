package source

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"catalog-engine/core/storage"
	"catalog-engine/core/utils"
	"catalog-engine/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// FigureDataConfig holds configuration for the authoritative manifest
// adapter.
type FigureDataConfig struct {
	// URLs is the ordered list of figure manifest endpoints. The first
	// one that answers wins.
	URLs []string `mapstructure:"urls"`
	// TimeoutSeconds bounds the whole fetch, all endpoints included.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// TTLMinutes is the freshness window for manifest-derived records.
	TTLMinutes int `mapstructure:"ttl_minutes" default:"1440"`
	// SnapshotObject is the storage object holding the last good
	// manifest, used when every live endpoint is unreachable.
	SnapshotObject string `mapstructure:"snapshot_object" default:"gamedata/figuredata.xml"`
}

// DefaultFigureDataURLs is the ordered hotel endpoint list used when
// none is configured.
var DefaultFigureDataURLs = []string{
	"https://www.habbo.com.br/gamedata/figuredata/1",
	"https://www.habbo.com/gamedata/figuredata/1",
	"https://www.habbo.es/gamedata/figuredata/1",
}

// FigureDataSource fetches and parses the official figure manifest.
// It is the only adapter whose category declarations are trusted
// verbatim by the classifier.
type FigureDataSource struct {
	cfg    FigureDataConfig
	client *http.Client
	store  storage.Client
	bucket string
	logger *zap.Logger
}

// NewFigureDataSource wires the adapter. store may be nil; the snapshot
// fallback is then disabled.
func NewFigureDataSource(cfg FigureDataConfig, store storage.Client, bucket string, logger *zap.Logger) *FigureDataSource {
	if len(cfg.URLs) == 0 {
		cfg.URLs = DefaultFigureDataURLs
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 15
	}
	if cfg.TTLMinutes <= 0 {
		cfg.TTLMinutes = 24 * 60
	}
	if cfg.SnapshotObject == "" {
		cfg.SnapshotObject = "gamedata/figuredata.xml"
	}
	return &FigureDataSource{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		store:  store,
		bucket: bucket,
		logger: logger,
	}
}

func (s *FigureDataSource) Name() string { return "figuredata" }

func (s *FigureDataSource) Family() models.SourceFamily { return models.SourceAuthoritative }

func (s *FigureDataSource) TTL() time.Duration {
	return time.Duration(s.cfg.TTLMinutes) * time.Minute
}

// Fetch downloads the manifest from the first endpoint that answers and
// parses it. A parse failure salvages every set record decoded before
// the failure and reports malformed. When all endpoints fail, the last
// stored snapshot is parsed instead; with no snapshot either, the
// adapter reports unavailable.
func (s *FigureDataSource) Fetch(ctx context.Context, category models.Category, gender models.Gender) ([]models.RawItem, models.SourceStatus) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	data, fresh, err := s.download(ctx)
	if err != nil {
		s.logger.Warn("figuredata endpoints unreachable", zap.Error(err))
		data, err = s.loadSnapshot(ctx)
		if err != nil {
			return nil, models.StatusUnavailable
		}
	}

	items, parseErr := parseFigureData(data, category, gender)
	if parseErr != nil {
		if len(items) == 0 {
			return nil, models.StatusMalformed
		}
		s.logger.Warn("figuredata partially parsed",
			zap.Int("salvaged", len(items)), zap.Error(parseErr))
		return items, models.StatusMalformed
	}

	if fresh {
		s.refreshSnapshot(ctx, data)
	}
	return items, models.StatusOK
}

// download walks the endpoint list in order and returns the first
// successful body.
func (s *FigureDataSource) download(ctx context.Context) ([]byte, bool, error) {
	var lastErr error
	for _, url := range s.cfg.URLs {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			lastErr = err
			continue
		}
		req.Header.Set("Accept", "text/xml, application/xml, */*")

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("figuredata %s: status %d", url, resp.StatusCode)
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return body, true, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no figuredata endpoints configured")
	}
	return nil, false, lastErr
}

func (s *FigureDataSource) loadSnapshot(ctx context.Context) ([]byte, error) {
	if s.store == nil {
		return nil, fmt.Errorf("snapshot store not configured")
	}
	obj, err := s.store.GetObject(ctx, s.bucket, s.cfg.SnapshotObject, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("load figuredata snapshot: %w", err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read figuredata snapshot: %w", err)
	}
	s.logger.Info("serving figuredata from snapshot", zap.String("object", s.cfg.SnapshotObject))
	return data, nil
}

// refreshSnapshot stores the fetched manifest best-effort; a failure
// only costs the next outage its fallback.
func (s *FigureDataSource) refreshSnapshot(ctx context.Context, data []byte) {
	if s.store == nil {
		return
	}
	_, err := s.store.PutObject(ctx, s.bucket, s.cfg.SnapshotObject,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/xml"})
	if err != nil {
		s.logger.Warn("failed to refresh figuredata snapshot", zap.Error(err))
	}
}

// figureSet is one <set> element of the manifest.
type figureSet struct {
	ID         string `xml:"id,attr"`
	Gender     string `xml:"gender,attr"`
	Club       string `xml:"club,attr"`
	Selectable string `xml:"selectable,attr"`
}

// figureColor is one <color> element of a palette.
type figureColor struct {
	ID         string `xml:"id,attr"`
	Selectable string `xml:"selectable,attr"`
}

// parseFigureData decodes the manifest with a streaming token walk so a
// malformed document still yields every record decoded before the
// failure. It returns the decode error alongside the salvaged items.
func parseFigureData(data []byte, category models.Category, gender models.Gender) ([]models.RawItem, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	palettes := make(map[string][]string) // palette id -> selectable color ids
	typePalette := make(map[string]string)

	var items []models.RawItem
	var curPalette string
	var curType string

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return items, fmt.Errorf("decode figuredata: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "palette":
			curPalette = attr(start, "id")
		case "color":
			var c figureColor
			if err := dec.DecodeElement(&c, &start); err != nil {
				return items, fmt.Errorf("decode color: %w", err)
			}
			if curPalette != "" && c.Selectable != "0" {
				palettes[curPalette] = append(palettes[curPalette], c.ID)
			}
		case "settype":
			curType = attr(start, "type")
			typePalette[curType] = attr(start, "paletteid")
		case "set":
			var set figureSet
			if err := dec.DecodeElement(&set, &start); err != nil {
				return items, fmt.Errorf("decode set %q: %w", curType, err)
			}
			if set.Selectable == "0" || curType == "" {
				continue
			}
			item, ok := manifestItem(curType, set, palettes[typePalette[curType]])
			if !ok {
				continue
			}
			if category != "" {
				if cat, ok := models.CategoryFromCode(curType); !ok || cat != category {
					continue
				}
			}
			if gender != "" && gender != models.GenderUnisex {
				if g := models.Gender(set.Gender); g.IsValid() && g != gender && g != models.GenderUnisex {
					continue
				}
			}
			items = append(items, item)
		}
	}

	return items, nil
}

// manifestItem converts one manifest set into a raw item.
func manifestItem(setType string, set figureSet, colors []string) (models.RawItem, bool) {
	if set.ID == "" {
		return models.RawItem{}, false
	}
	return models.RawItem{
		Identifier:       setType + "_" + set.ID,
		DeclaredCategory: setType,
		DeclaredGender:   strings.ToUpper(set.Gender),
		DeclaredColors:   colors,
		// The club attribute is a membership level, anything above zero
		// is members-only.
		DeclaredClub: utils.ToInt(set.Club) > 0,
		Source:       models.SourceAuthoritative,
	}, true
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
