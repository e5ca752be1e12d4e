// Package jurisprudence gives a rough outlook for a claim from simulated
// labor-court statistics. The table is static; no court database is queried.
package jurisprudence

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/statistics.yaml
var statisticsYAML []byte

// DefaultCourt is used when a request names none.
const DefaultCourt = "TRT-2"

// Request asks for the outlook of one claim.
type Request struct {
	Claim string `json:"claim"`
	Court string `json:"court,omitempty"`
	From  string `json:"from,omitempty"` // year, default 2023
	To    string `json:"to,omitempty"`   // year, default 2025
}

// Analysis is the outlook of one claim.
type Analysis struct {
	Claim           string   `json:"claim"`
	Articles        []string `json:"articles"`
	Court           string   `json:"court"`
	Probability     int      `json:"probability"` // percent of granted decisions
	TotalCases      int      `json:"totalCases"`
	Granted         int      `json:"granted"`
	Denied          int      `json:"denied"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	ComparisonBase  string   `json:"comparisonBase"`
}

type statistics struct {
	Key             string   `yaml:"key"`
	Probability     int      `yaml:"probability"`
	Total           int      `yaml:"total"`
	Granted         int      `yaml:"granted"`
	Denied          int      `yaml:"denied"`
	Articles        []string `yaml:"articles"`
	Summary         string   `yaml:"summary"`
	Recommendations []string `yaml:"recommendations"`
}

type table struct {
	Entries []statistics `yaml:"entries"`
	Generic statistics   `yaml:"generic"`
}

var (
	loadOnce sync.Once
	tbl      table
)

func load() table {
	loadOnce.Do(func() {
		if err := yaml.Unmarshal(statisticsYAML, &tbl); err != nil {
			panic(fmt.Sprintf("failed to parse jurisprudence table: %v", err))
		}
	})
	return tbl
}

// lookup returns the first entry whose key occurs in the claim text.
func lookup(claim string) statistics {
	t := load()
	lower := strings.ToLower(claim)
	for _, s := range t.Entries {
		if strings.Contains(lower, s.Key) {
			return s
		}
	}
	return t.Generic
}

// Analyze returns the outlook for req.Claim.
func Analyze(req Request) Analysis {
	s := lookup(req.Claim)

	court := orDefault(req.Court, DefaultCourt)
	from := orDefault(req.From, "2023")
	to := orDefault(req.To, "2025")

	return Analysis{
		Claim:           req.Claim,
		Articles:        append([]string(nil), s.Articles...),
		Court:           court,
		Probability:     s.Probability,
		TotalCases:      s.Total,
		Granted:         s.Granted,
		Denied:          s.Denied,
		Summary:         s.Summary,
		Recommendations: append([]string(nil), s.Recommendations...),
		ComparisonBase:  fmt.Sprintf("%s, %s–%s, %d decisões analisadas", court, from, to, s.Total),
	}
}

// AnalyzeAll analyzes each claim against the same court, in order.
func AnalyzeAll(claims []string, court string) []Analysis {
	out := make([]Analysis, len(claims))
	for i, c := range claims {
		out[i] = Analyze(Request{Claim: c, Court: court})
	}
	return out
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
