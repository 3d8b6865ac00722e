package classify

import (
	"regexp"
	"strings"

	"catalog-engine/feature/catalog/models"
)

// Result is the classifier output for one raw item.
type Result struct {
	Category   models.Category
	Gender     models.Gender
	FigureID   string
	Rarity     models.Rarity
	Confidence models.Confidence
}

var (
	// prefixExpr matches a known two-letter category code embedded at
	// the start of an identifier, followed by a digit (optionally
	// separated by an underscore), e.g. "hr_890" or "ch042".
	prefixExpr = regexp.MustCompile(`^(hd|hr|ha|he|ea|fa|ch|cc|cp|ca|lg|sh|wa|fx)_?[0-9]`)

	// digitRun matches the first run of digits in an identifier.
	digitRun = regexp.MustCompile(`[0-9]+`)
)

// Classify infers category, gender, figure id and rarity for one raw
// item. It returns false when the item must be rejected: an extracted
// figure id that is empty or "0" cannot address a renderable asset,
// regardless of how confident the category match was.
func Classify(raw models.RawItem) (Result, bool) {
	figureID := extractFigureID(raw.Identifier)
	if figureID == "" || figureID == "0" {
		return Result{}, false
	}

	category, confidence := classifyCategory(raw)

	return Result{
		Category:   category,
		Gender:     inferGender(raw),
		FigureID:   figureID,
		Rarity:     inferRarity(raw.Identifier),
		Confidence: confidence,
	}, true
}

// classifyCategory walks the precedence ladder: authoritative declared
// category, keyword pattern table, embedded prefix code, contextual
// tokens, then the general garment fallback.
func classifyCategory(raw models.RawItem) (models.Category, models.Confidence) {
	if raw.Source == models.SourceAuthoritative && raw.DeclaredCategory != "" {
		if cat := resolveDeclared(raw.DeclaredCategory); cat.IsValid() {
			return cat, models.ConfidenceAuthoritative
		}
	}

	ident := strings.ToLower(raw.Identifier)

	for _, r := range keywordRules {
		for _, token := range r.tokens {
			if strings.Contains(ident, token) {
				return r.category, models.ConfidencePattern
			}
		}
	}

	if m := prefixExpr.FindStringSubmatch(ident); m != nil {
		if cat, ok := categoryFromPrefix(m[1]); ok {
			return cat, models.ConfidencePrefix
		}
	}

	for _, token := range contextualTokens {
		if strings.Contains(ident, token) {
			return models.CategoryShirt, models.ConfidenceContextual
		}
	}

	return models.CategoryShirt, models.ConfidenceFallback
}

// resolveDeclared accepts either the long category token or the
// two-letter wire code an authoritative manifest uses.
func resolveDeclared(declared string) models.Category {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if cat := models.Category(declared); cat.IsValid() {
		return cat
	}
	if cat, ok := models.CategoryFromCode(declared); ok {
		return cat
	}
	return ""
}

// categoryFromPrefix maps a matched prefix code to a category. The
// "he" (head accessory) code has no slot of its own and folds into hat.
func categoryFromPrefix(code string) (models.Category, bool) {
	if code == "he" {
		return models.CategoryHat, true
	}
	return models.CategoryFromCode(code)
}

// extractFigureID returns the first run of digits in the identifier.
func extractFigureID(identifier string) string {
	return digitRun.FindString(identifier)
}

func inferGender(raw models.RawItem) models.Gender {
	if g := models.Gender(strings.ToUpper(raw.DeclaredGender)); g.IsValid() {
		return g
	}
	ident := strings.ToLower(raw.Identifier)
	for _, t := range genderTokens {
		if strings.Contains(ident, t.token) {
			return t.gender
		}
	}
	return models.GenderUnisex
}

func inferRarity(identifier string) models.Rarity {
	ident := strings.ToLower(identifier)
	for _, t := range rarityTokens {
		if strings.Contains(ident, t.token) {
			return t.rarity
		}
	}
	return models.RarityCommon
}
