package imaging

import (
	"fmt"

	"catalog-engine/feature/catalog/models"
)

// imagingHosts is the ordered list of avatar-imaging hosts. The first
// entry builds the primary URL; the rest become fallbacks in order.
var imagingHosts = []string{
	"https://www.habbo.com",
	"https://www.habbo.com.br",
	"https://www.habbo.es",
}

// assetMirror serves pre-rendered part images and is the last fallback.
const assetMirror = "https://habboassets.com/c_images/clothing"

// headCategories render with the headonly flag so the thumbnail shows
// the part in isolation instead of a full avatar.
var headCategories = map[models.Category]struct{}{
	models.CategoryHead:          {},
	models.CategoryHair:          {},
	models.CategoryHat:           {},
	models.CategoryEyewear:       {},
	models.CategoryFaceAccessory: {},
}

// Resolve builds the primary thumbnail URL and its ordered fallback
// list for an item. It is a pure function of the item's business
// fields; walking the fallbacks on load failure is the presentation
// layer's job.
func Resolve(item models.CatalogItem) (string, []string) {
	color := "1"
	if len(item.Colors) > 0 {
		color = item.Colors[0]
	}

	urls := make([]string, 0, len(imagingHosts)+1)
	for _, host := range imagingHosts {
		urls = append(urls, avatarImageURL(host, item, color))
	}
	urls = append(urls, fmt.Sprintf("%s/%s/%s_%s.png", assetMirror, item.Category.Code(), item.FigureID, color))

	return urls[0], urls[1:]
}

// avatarImageURL renders the single-part figure string (code-id-color--)
// against one imaging host.
func avatarImageURL(host string, item models.CatalogItem, color string) string {
	figure := fmt.Sprintf("%s-%s-%s--", item.Category.Code(), item.FigureID, color)
	url := fmt.Sprintf(
		"%s/habbo-imaging/avatarimage?figure=%s&gender=%s&size=m&direction=2&head_direction=2&action=std&gesture=std",
		host, figure, item.Gender,
	)
	if _, ok := headCategories[item.Category]; ok {
		url += "&headonly=1"
	}
	return url
}

// Annotate fills ThumbnailURL on each item in place. Thumbnails are
// attached on the way out of the engine and never persisted.
func Annotate(items []models.CatalogItem) {
	for i := range items {
		primary, _ := Resolve(items[i])
		items[i].ThumbnailURL = primary
	}
}
