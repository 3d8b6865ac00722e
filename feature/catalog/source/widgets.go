package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"catalog-engine/feature/catalog/models"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// WidgetsConfig holds configuration for the community catalog adapter.
type WidgetsConfig struct {
	// BaseURL is the root of the community catalog site.
	BaseURL string `mapstructure:"base_url" default:"https://www.habbowidgets.com/clothing"`
	// TimeoutSeconds bounds each page request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"8"`
	// TTLMinutes is the freshness window for scraped records.
	TTLMinutes int `mapstructure:"ttl_minutes" default:"60"`
	// PageSize is the number of entries one listing page carries.
	PageSize int `mapstructure:"page_size" default:"100"`
	// MaxPages caps pagination per category.
	MaxPages int `mapstructure:"max_pages" default:"10"`
}

// WidgetsSource scrapes a community-maintained clothing catalog. The
// site publishes paginated HTML listings per category; each entry names
// an asset in the swf naming convention, which the classifier decodes.
// Scraped category claims are not trusted: everything goes through the
// pattern rules.
type WidgetsSource struct {
	cfg    WidgetsConfig
	client *http.Client
	logger *zap.Logger
}

// NewWidgetsSource wires the adapter with its own bounded HTTP client.
func NewWidgetsSource(cfg WidgetsConfig, logger *zap.Logger) *WidgetsSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.habbowidgets.com/clothing"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 8
	}
	if cfg.TTLMinutes <= 0 {
		cfg.TTLMinutes = 60
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 10
	}
	return &WidgetsSource{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		logger: logger,
	}
}

func (s *WidgetsSource) Name() string { return "widgets" }

func (s *WidgetsSource) Family() models.SourceFamily { return models.SourceScraped }

func (s *WidgetsSource) TTL() time.Duration {
	return time.Duration(s.cfg.TTLMinutes) * time.Minute
}

// Fetch walks listing pages until a short page, the page cap, or an
// upstream failure. A failure after at least one successful page
// degrades to partial; a failure before any page is unavailable.
func (s *WidgetsSource) Fetch(ctx context.Context, category models.Category, gender models.Gender) ([]models.RawItem, models.SourceStatus) {
	sections := s.sections(category)

	items := make([]models.RawItem, 0, s.cfg.PageSize)
	seen := make(map[string]struct{})
	fetchedPages := 0
	failed := false

	for _, section := range sections {
		for page := 1; page <= s.cfg.MaxPages; page++ {
			entries, err := s.fetchPage(ctx, section, page)
			if err != nil {
				s.logger.Warn("widgets page fetch failed",
					zap.String("section", section), zap.Int("page", page), zap.Error(err))
				failed = true
				break
			}
			fetchedPages++

			for _, ident := range entries {
				if _, ok := seen[ident]; ok {
					continue
				}
				seen[ident] = struct{}{}
				items = append(items, models.RawItem{
					Identifier: ident,
					Source:     models.SourceScraped,
				})
			}

			if len(entries) < s.cfg.PageSize {
				break
			}
		}
	}

	switch {
	case fetchedPages == 0:
		return nil, models.StatusUnavailable
	case failed:
		return items, models.StatusPartial
	default:
		return items, models.StatusOK
	}
}

// sections maps a requested category to the site's section paths. The
// site is organised by the two-letter codes; an all-categories request
// walks every section.
func (s *WidgetsSource) sections(category models.Category) []string {
	if category != "" {
		if code := category.Code(); code != "" {
			return []string{code}
		}
	}
	sections := make([]string, 0, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		if cat == models.CategoryMisc {
			continue
		}
		sections = append(sections, cat.Code())
	}
	return sections
}

// fetchPage downloads one listing page and extracts asset identifiers.
func (s *WidgetsSource) fetchPage(ctx context.Context, section string, page int) ([]string, error) {
	url := fmt.Sprintf("%s/%s?page=%d&size=%d", s.cfg.BaseURL, section, page, s.cfg.PageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("widgets %s page %d: status %d", section, page, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse widgets listing: %w", err)
	}

	return extractEntries(doc), nil
}

// extractEntries pulls asset identifiers out of a listing document.
// Entries carry the identifier in a data attribute; older pages keep it
// as the entry text. Blank or malformed entries are skipped, keeping as
// many records as the page yields.
func extractEntries(doc *goquery.Document) []string {
	var entries []string
	doc.Find("li.asset, div.asset").Each(func(_ int, sel *goquery.Selection) {
		ident, ok := sel.Attr("data-asset")
		if !ok {
			ident = sel.Find(".asset-name").Text()
		}
		ident = strings.TrimSpace(ident)
		if ident == "" {
			return
		}
		entries = append(entries, ident)
	})
	return entries
}
