package utils

import "strings"

// OpenFoodFacts allergen tags arrive as "en:milk", "fr:lait" etc.
// User allergy lists are free text ("Peanuts, Dairy"). Both sides are
// normalized to bare lowercase words before comparison.

// Common label differences between OFF tags and how people write allergies.
var allergenSynonyms = map[string]string{
	"dairy":      "milk",
	"lactose":    "milk",
	"groundnut":  "peanuts",
	"peanut":     "peanuts",
	"tree-nut":   "nuts",
	"treenuts":   "nuts",
	"shellfish":  "crustaceans",
	"wheat":      "gluten",
	"egg":        "eggs",
	"soy":        "soybeans",
	"soya":       "soybeans",
	"sesame-seeds": "sesame",
}

// NormalizeAllergen lowercases, strips the language prefix and maps
// known synonyms onto the OFF canonical word.
func NormalizeAllergen(tag string) string {
	t := strings.ToLower(strings.TrimSpace(tag))
	if i := strings.Index(t, ":"); i >= 0 {
		t = t[i+1:]
	}
	t = strings.ReplaceAll(t, " ", "-")
	if canon, ok := allergenSynonyms[t]; ok {
		return canon
	}
	return t
}

// ParseAllergyList splits a comma-separated allergy string into a
// normalized set.
func ParseAllergyList(s string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(s, ",") {
		n := NormalizeAllergen(part)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// MatchAllergens returns the normalized allergens present in both the
// product's tag list and the user's allergy list.
func MatchAllergens(productTags []string, userAllergies string) []string {
	allergies := ParseAllergyList(userAllergies)
	if len(allergies) == 0 || len(productTags) == 0 {
		return nil
	}

	tagSet := make(map[string]struct{}, len(productTags))
	for _, t := range productTags {
		tagSet[NormalizeAllergen(t)] = struct{}{}
	}

	var matched []string
	for _, a := range allergies {
		if _, ok := tagSet[a]; ok {
			matched = append(matched, a)
		}
	}
	return matched
}
