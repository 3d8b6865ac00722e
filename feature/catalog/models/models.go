package models

import (
	"time"
)

// Category identifies one slot of the avatar figure. The long token is
// the canonical value used across the application; the two-letter code
// is what manifests and the imaging service speak.
type Category string

const (
	CategoryHead           Category = "head"
	CategoryHair           Category = "hair"
	CategoryHat            Category = "hat"
	CategoryEyewear        Category = "eyewear"
	CategoryFaceAccessory  Category = "face-accessory"
	CategoryShirt          Category = "shirt"
	CategoryCoat           Category = "coat"
	CategoryPrint          Category = "print"
	CategoryChestAccessory Category = "chest-accessory"
	CategoryTrousers       Category = "trousers"
	CategoryShoes          Category = "shoes"
	CategoryWaist          Category = "waist"
	CategoryEffect         Category = "effect"
	CategoryPet            Category = "pet"
	CategoryDance          Category = "dance"
	CategoryMisc           Category = "misc"
)

// categoryCodes maps each category to its figure-string wire code.
var categoryCodes = map[Category]string{
	CategoryHead:           "hd",
	CategoryHair:           "hr",
	CategoryHat:            "ha",
	CategoryEyewear:        "ea",
	CategoryFaceAccessory:  "fa",
	CategoryShirt:          "ch",
	CategoryCoat:           "cc",
	CategoryPrint:          "cp",
	CategoryChestAccessory: "ca",
	CategoryTrousers:       "lg",
	CategoryShoes:          "sh",
	CategoryWaist:          "wa",
	CategoryEffect:         "fx",
	CategoryPet:            "pt",
	CategoryDance:          "dn",
	CategoryMisc:           "xx",
}

// codeCategories is the reverse lookup, built once at init.
var codeCategories = func() map[string]Category {
	m := make(map[string]Category, len(categoryCodes))
	for cat, code := range categoryCodes {
		m[code] = cat
	}
	return m
}()

// AllCategories lists every valid category in a stable order.
var AllCategories = []Category{
	CategoryHead, CategoryHair, CategoryHat, CategoryEyewear,
	CategoryFaceAccessory, CategoryShirt, CategoryCoat, CategoryPrint,
	CategoryChestAccessory, CategoryTrousers, CategoryShoes, CategoryWaist,
	CategoryEffect, CategoryPet, CategoryDance, CategoryMisc,
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	_, ok := categoryCodes[c]
	return ok
}

// Code returns the two-letter wire code for the category.
func (c Category) Code() string {
	return categoryCodes[c]
}

// CategoryFromCode resolves a two-letter wire code to a Category.
func CategoryFromCode(code string) (Category, bool) {
	cat, ok := codeCategories[code]
	return cat, ok
}

// Gender of an item. Unisex items match any requested gender.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderUnisex Gender = "U"
)

// IsValid reports whether g is one of M, F, U.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderUnisex
}

// Rarity tier of an item. Rarity and Club are independent: a club-only
// item can be common rarity and vice versa.
type Rarity string

const (
	RarityCommon         Rarity = "common"
	RarityRare           Rarity = "rare"
	RarityLimited        Rarity = "limited"
	RarityExclusiveToken Rarity = "exclusive-token"
	RarityClubOnly       Rarity = "club-only"
)

// Confidence records how the classifier arrived at a category.
// Higher tiers win during merge tie-breaks.
type Confidence string

const (
	ConfidenceAuthoritative Confidence = "authoritative"
	ConfidencePattern       Confidence = "pattern"
	ConfidencePrefix        Confidence = "prefix"
	ConfidenceContextual    Confidence = "contextual"
	ConfidenceFallback      Confidence = "fallback"
)

// SourceFamily tags the provenance of a record.
type SourceFamily string

const (
	SourceAuthoritative SourceFamily = "authoritative"
	SourceScraped       SourceFamily = "scraped"
	SourceFallback      SourceFamily = "fallback"
)

// Priority returns the merge priority of the source family.
// Larger wins.
func (s SourceFamily) Priority() int {
	switch s {
	case SourceAuthoritative:
		return 3
	case SourceScraped:
		return 2
	case SourceFallback:
		return 1
	default:
		return 0
	}
}

// SourceStatus is the uniform terminal state of one adapter fetch.
type SourceStatus string

const (
	StatusOK          SourceStatus = "ok"
	StatusPartial     SourceStatus = "partial"
	StatusUnavailable SourceStatus = "unavailable"
	StatusMalformed   SourceStatus = "malformed"
)

// RawItem is the short-lived record an adapter produces. It never
// leaves the pipeline; the classifier consumes it and emits CatalogItems.
type RawItem struct {
	// Identifier is the opaque upstream identifier (swf name, set id...).
	Identifier string

	// DeclaredCategory is the upstream category claim, if any.
	// Only trusted when the source is authoritative.
	DeclaredCategory string

	// DeclaredGender is the upstream gender claim, if any.
	DeclaredGender string

	// DeclaredColors are the upstream color ids, if any. They are
	// validated against the category palette before use.
	DeclaredColors []string

	// DeclaredClub marks the item as requiring the premium tier.
	DeclaredClub bool

	// DeclaredName is the upstream display name, if any.
	DeclaredName string

	// Source is the family of the adapter that produced the record.
	Source SourceFamily
}

// CatalogItem is the canonical unit the rest of the application consumes.
type CatalogItem struct {
	// ID is category:figureId after merge (globally unique).
	ID string `json:"id"`

	// Category is one of the closed category set.
	Category Category `json:"category"`

	// FigureID is a non-empty numeric string, never "0".
	FigureID string `json:"figureId"`

	// Gender is M, F or U.
	Gender Gender `json:"gender"`

	// Colors is the ordered, non-empty list of palette-valid color ids.
	// The first entry is the default color.
	Colors []string `json:"colors"`

	// Rarity tier.
	Rarity Rarity `json:"rarity"`

	// Club marks premium-membership items.
	Club bool `json:"club"`

	// Name is the display string, never empty.
	Name string `json:"name"`

	// Source is the winning record's provenance. Diagnostics only.
	Source SourceFamily `json:"source"`

	// Confidence records how the category was decided.
	Confidence Confidence `json:"confidence"`

	// ThumbnailURL is resolved lazily before the item crosses the
	// system boundary. It is not part of the item's cache identity.
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// DefaultName returns the fallback display name for an item.
func DefaultName(category Category, figureID string) string {
	return string(category) + "-" + figureID
}

// Request is the inbound catalog query from the presentation layer.
type Request struct {
	// Category is a category token or "all".
	Category string `json:"category" query:"category"`

	// Gender filters items to the given gender plus unisex.
	Gender Gender `json:"gender" query:"gender"`

	// Search is an optional case-insensitive name filter.
	Search string `json:"search" query:"search"`

	// Strict drops fallback-confidence items with no competing record.
	Strict bool `json:"strict" query:"strict"`

	// ForceRefresh bypasses the cache lookup (the result is still cached).
	ForceRefresh bool `json:"forceRefresh" query:"forceRefresh"`
}

// Metadata describes how a response was assembled.
type Metadata struct {
	TotalItems         int                     `json:"totalItems"`
	CategoriesPresent  []Category              `json:"categoriesPresent"`
	SourceBreakdown    map[string]SourceStatus `json:"sourceBreakdown"`
	GeneratedAt        time.Time               `json:"generatedAt"`
	Cached             bool                    `json:"cached"`
}

// Response is the canonical catalog answer.
type Response struct {
	Items    []CatalogItem `json:"items"`
	Metadata Metadata      `json:"metadata"`
}

// CategoryCount summarises one category for the categories endpoint.
type CategoryCount struct {
	ID    Category `json:"id"`
	Code  string   `json:"code"`
	Count int      `json:"count"`
}
