package classify

import "catalog-engine/feature/catalog/models"

// rule maps a family of identifier tokens to one category. Rules are
// evaluated top to bottom; the first matching token wins, so more
// specific families must precede broader ones.
type rule struct {
	tokens   []string
	category models.Category
}

// keywordRules is the ordered pattern table. Token families follow the
// vocabulary observed in community asset names.
var keywordRules = []rule{
	{[]string{"hair", "hr_", "_hair_", "wig", "ponytail"}, models.CategoryHair},
	{[]string{"head", "hd_", "face_", "_face"}, models.CategoryHead},
	{[]string{"hat", "ha_", "cap", "helmet", "crown", "tiara", "beanie"}, models.CategoryHat},
	{[]string{"eye", "ea_", "glass", "sunglass", "monocle", "goggle"}, models.CategoryEyewear},
	{[]string{"mask", "fa_", "beard", "mustache", "moustache"}, models.CategoryFaceAccessory},
	{[]string{"shirt", "ch_", "top_", "blouse", "tshirt", "t-shirt", "_shirt_", "dress"}, models.CategoryShirt},
	{[]string{"coat", "cc_", "jacket", "blazer", "hoodie", "cardigan"}, models.CategoryCoat},
	{[]string{"chest", "ca_", "tie_", "necklace", "medal", "scarf"}, models.CategoryChestAccessory},
	{[]string{"print", "cp_", "logo", "emblem"}, models.CategoryPrint},
	{[]string{"trouser", "lg_", "pant", "jean", "skirt", "_leg_"}, models.CategoryTrousers},
	{[]string{"shoe", "sh_", "boot", "sneaker", "sandal", "heel"}, models.CategoryShoes},
	{[]string{"waist", "wa_", "belt"}, models.CategoryWaist},
	{[]string{"effect", "fx_", "glow", "aura"}, models.CategoryEffect},
	{[]string{"pet_", "_pet", "animal"}, models.CategoryPet},
	{[]string{"dance", "emote"}, models.CategoryDance},
	{[]string{"misc", "badge", "bundle"}, models.CategoryMisc},
}

// contextualTokens suggest "some garment" without naming a slot:
// gendered markers and seasonal collection tags. They map to the
// general garment category as a best guess.
var contextualTokens = []string{
	"male", "female", "_m_", "_f_", "_u_",
	"summer", "winter", "xmas", "easter", "valentine",
}

// rarityTokens maps tier markers to rarities, checked in order so the
// more specific markers win over the broad ones.
var rarityTokens = []struct {
	token  string
	rarity models.Rarity
}{
	{"nft", models.RarityExclusiveToken},
	{"ltd", models.RarityLimited},
	{"limited", models.RarityLimited},
	{"club", models.RarityClubOnly},
	{"_hc_", models.RarityClubOnly},
	{"hc_", models.RarityClubOnly},
	{"rare", models.RarityRare},
	{"exclusive", models.RarityRare},
}

// genderTokens maps identifier markers to genders. First match wins.
var genderTokens = []struct {
	token  string
	gender models.Gender
}{
	{"_f_", models.GenderFemale},
	{"female", models.GenderFemale},
	{"_girl_", models.GenderFemale},
	{"_m_", models.GenderMale},
	{"male", models.GenderMale},
	{"_boy_", models.GenderMale},
}
