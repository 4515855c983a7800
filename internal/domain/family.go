package domain

// Couple names two individuals married to each other.
type Couple [2]string

// FamilyDescription is the declarative input consumed by graph construction:
// who exists, who their parents are (in order), and who is married to whom.
type FamilyDescription struct {
	Individuals map[string]string   `json:"individuals" yaml:"individuals"`
	Parents     map[string][]string `json:"parents" yaml:"parents"`
	Couples     []Couple            `json:"couples" yaml:"couples"`
}

// IndividualSummary is the lightweight view returned by list endpoints.
type IndividualSummary struct {
	Name    string
	Gender  Gender
	Parents []string
	Spouse  string
}
