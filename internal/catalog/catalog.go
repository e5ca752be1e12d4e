// Package catalog is the read-only registry of recognized claim types.
//
// The registry is embedded YAML loaded once on first use. Lookups never fail
// fatally: an unknown claim type simply resolves to (Claim{}, false) and the
// calculator falls back to its generic estimate.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/claims.yaml
var claimsYAML []byte

//go:embed data/events.yaml
var eventsYAML []byte

// Parameter describes one claim-specific input captured by the wizard.
type Parameter struct {
	Name        string   `yaml:"name" json:"name"`
	Kind        string   `yaml:"kind" json:"kind"` // number, text, date or select
	Label       string   `yaml:"label" json:"label"`
	Placeholder string   `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Options     []string `yaml:"options,omitempty" json:"options,omitempty"`
}

// Evidence is a kind of proof suggested for a claim.
type Evidence struct {
	Type        string `yaml:"type" json:"type"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
}

// Claim is the display metadata of a claim type.
type Claim struct {
	ID          string      `yaml:"id" json:"id"`
	Title       string      `yaml:"title" json:"title"`
	Label       string      `yaml:"label" json:"label"`
	Description string      `yaml:"description" json:"description"`
	Article     string      `yaml:"article" json:"article"`
	Category    string      `yaml:"category" json:"category"`
	Parameters  []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Evidence    []Evidence  `yaml:"evidence,omitempty" json:"evidence,omitempty"`
}

// EventType is a fact event and the claims it usually gives rise to.
type EventType struct {
	Value       string   `yaml:"value" json:"value"`
	Label       string   `yaml:"label" json:"label"`
	Description string   `yaml:"description" json:"description"`
	Suggested   []string `yaml:"suggested" json:"suggestedClaims"`
}

// DismissalType is a way the employment relationship ended.
type DismissalType struct {
	Value string `yaml:"value" json:"value"`
	Group string `yaml:"group" json:"group"` // regular or probation
	Label string `yaml:"label" json:"label"`
}

type registry struct {
	claims     []Claim
	byID       map[string]int
	categories []string
	events     []EventType
	eventByID  map[string]int
	dismissals []DismissalType
}

var (
	loadOnce sync.Once
	reg      *registry
)

func load() *registry {
	loadOnce.Do(func() {
		r, err := parse(claimsYAML, eventsYAML)
		if err != nil {
			// The data is compiled into the binary; a parse failure is a build defect.
			panic(err)
		}
		reg = r
	})
	return reg
}

func parse(claimsData, eventsData []byte) (*registry, error) {
	var claims struct {
		Claims []Claim `yaml:"claims"`
	}
	if err := yaml.Unmarshal(claimsData, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse claim catalog: %w", err)
	}

	var events struct {
		Events     []EventType     `yaml:"events"`
		Dismissals []DismissalType `yaml:"dismissals"`
	}
	if err := yaml.Unmarshal(eventsData, &events); err != nil {
		return nil, fmt.Errorf("failed to parse event catalog: %w", err)
	}

	r := &registry{
		claims:     claims.Claims,
		byID:       make(map[string]int, len(claims.Claims)),
		events:     events.Events,
		eventByID:  make(map[string]int, len(events.Events)),
		dismissals: events.Dismissals,
	}

	seen := make(map[string]bool)
	for i, c := range r.claims {
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate claim type %q", c.ID)
		}
		r.byID[c.ID] = i
		if !seen[c.Category] {
			seen[c.Category] = true
			r.categories = append(r.categories, c.Category)
		}
	}
	for i, e := range r.events {
		r.eventByID[e.Value] = i
	}
	return r, nil
}

// Resolve returns the metadata for claimType.
func Resolve(claimType string) (Claim, bool) {
	r := load()
	i, ok := r.byID[claimType]
	if !ok {
		return Claim{}, false
	}
	return r.claims[i], true
}

// All returns every claim type in catalog order.
func All() []Claim {
	r := load()
	out := make([]Claim, len(r.claims))
	copy(out, r.claims)
	return out
}

// Categories returns the category names in first-appearance order.
func Categories() []string {
	r := load()
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// ByCategory returns the claim types of one category.
func ByCategory(category string) []Claim {
	var out []Claim
	for _, c := range load().claims {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// SuggestedEvidence returns the proofs usually attached to claimType.
func SuggestedEvidence(claimType string) []Evidence {
	c, ok := Resolve(claimType)
	if !ok {
		return nil
	}
	return c.Evidence
}

// EventTypes returns every recognized fact event.
func EventTypes() []EventType {
	r := load()
	out := make([]EventType, len(r.events))
	copy(out, r.events)
	return out
}

// DismissalTypes returns every recognized dismissal type.
func DismissalTypes() []DismissalType {
	r := load()
	out := make([]DismissalType, len(r.dismissals))
	copy(out, r.dismissals)
	return out
}

// SuggestClaims returns the claims suggested by the given fact events,
// deduplicated, in first-seen order. Unknown events are skipped.
func SuggestClaims(events []string) []string {
	r := load()
	seen := make(map[string]bool)
	var out []string
	for _, ev := range events {
		i, ok := r.eventByID[ev]
		if !ok {
			continue
		}
		for _, claim := range r.events[i].Suggested {
			if !seen[claim] {
				seen[claim] = true
				out = append(out, claim)
			}
		}
	}
	return out
}
