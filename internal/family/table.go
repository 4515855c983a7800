package family

import "github.com/jordanpinkava/Kinship-Project/internal/domain"

// Term holds the gendered forms of one kinship term.
type Term struct {
	Female  string
	Male    string
	Neutral string
}

// For selects the form matching the querying individual's gender.
func (t Term) For(gender domain.Gender) string {
	switch gender {
	case domain.GenderFemale:
		return t.Female
	case domain.GenderMale:
		return t.Male
	default:
		return t.Neutral
	}
}

// Table maps combined path keys to kinship terms. It is read-only after
// construction and safe for concurrent lookups.
type Table map[string]Term

// DefaultTable returns the standard kinship table. Keys read as
// "path from the querying individual" : "path from the other individual",
// both leading to the selected common relative; the term describes the
// querying individual.
func DefaultTable() Table {
	return Table{
		":": {Female: "self", Male: "self", Neutral: "self"},

		":P": {Female: "mother", Male: "father", Neutral: "parent"},
		"P:": {Female: "daughter", Male: "son", Neutral: "child"},

		"P:P": {Female: "sister", Male: "brother", Neutral: "sibling"},

		":S": {Female: "wife", Male: "husband", Neutral: "spouse"},
		"S:": {Female: "wife", Male: "husband", Neutral: "spouse"},

		":PP":  {Female: "grandmother", Male: "grandfather", Neutral: "grandparent"},
		"PP:":  {Female: "granddaughter", Male: "grandson", Neutral: "grandchild"},
		":PPP": {Female: "great-grandmother", Male: "great-grandfather", Neutral: "great-grandparent"},
		"PPP:": {Female: "great-granddaughter", Male: "great-grandson", Neutral: "great-grandchild"},

		"P:PP":   {Female: "aunt", Male: "uncle", Neutral: "auncle"},
		"PP:P":   {Female: "niece", Male: "nephew", Neutral: "nibling"},
		"P:PPP":  {Female: "great-aunt", Male: "great-uncle", Neutral: "great-auncle"},
		"PPP:P":  {Female: "great-niece", Male: "great-nephew", Neutral: "great-nibling"},
		"PP:PP":  {Female: "cousin", Male: "cousin", Neutral: "cousin"},
		"PP:PPP": {Female: "cousin once removed", Male: "cousin once removed", Neutral: "cousin once removed"},
		"PPP:PP": {Female: "cousin once removed", Male: "cousin once removed", Neutral: "cousin once removed"},

		"S:P":  {Female: "stepmother", Male: "stepfather", Neutral: "stepparent"},
		"P:S":  {Female: "stepdaughter", Male: "stepson", Neutral: "stepchild"},
		"PS:P": {Female: "stepsister", Male: "stepbrother", Neutral: "stepsibling"},
		"P:PS": {Female: "stepsister", Male: "stepbrother", Neutral: "stepsibling"},
		"S:PP": {Female: "stepgrandmother", Male: "stepgrandfather", Neutral: "stepgrandparent"},
		"PP:S": {Female: "stepgranddaughter", Male: "stepgrandson", Neutral: "stepgrandchild"},

		":SP":  {Female: "mother-in-law", Male: "father-in-law", Neutral: "parent-in-law"},
		"SP:":  {Female: "daughter-in-law", Male: "son-in-law", Neutral: "child-in-law"},
		"SP:P": {Female: "sister-in-law", Male: "brother-in-law", Neutral: "sibling-in-law"},
		"P:SP": {Female: "sister-in-law", Male: "brother-in-law", Neutral: "sibling-in-law"},
	}
}
