package calculator

// Confidence is a coarse indicator of how much of the required input data
// was present when an estimate was computed.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Facts are the employment facts the formulas depend on.
type Facts struct {
	// GrossSalary is the monthly gross wage. Negative or NaN values are
	// treated as zero.
	GrossSalary float64 `json:"grossSalary"`

	// AdmissionDate and TerminationDate are ISO-8601 dates; empty means absent.
	AdmissionDate   string `json:"admissionDate"`
	TerminationDate string `json:"terminationDate"`
}

// Claim is one selected claim.
type Claim struct {
	// Type is a catalog identifier or, for older cases, a free-text label.
	Type string `json:"claimType"`

	// Label is the display text. When empty the catalog label is used.
	Label string `json:"label,omitempty"`

	// Parameters are claim-specific inputs. Missing entries take defaults.
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Overrides maps an item ID to a user-supplied base value.
type Overrides map[string]float64

// Item is the computed breakdown for one claim.
type Item struct {
	// ID is derived from the claim's position in the list (calc_0, calc_1, ...).
	ID          string `json:"id"`
	ClaimType   string `json:"claimType"`
	Description string `json:"description"`

	// Rule names the formula that produced the item.
	Rule string `json:"rule"`

	BaseValue      float64 `json:"baseValue"`
	AccessoryValue float64 `json:"accessoryValue"`
	Total          float64 `json:"total"`

	Formula    string     `json:"formula"`
	Editable   bool       `json:"editable"`
	Confidence Confidence `json:"confidenceLevel"`

	// Overridden is set when a manual value replaced BaseValue.
	Overridden bool `json:"overridden,omitempty"`
}

// Summary is the case-level calculation result.
type Summary struct {
	Items          []Item  `json:"items"`
	TotalBase      float64 `json:"totalBase"`
	TotalAccessory float64 `json:"totalAccessory"`
	TotalOverall   float64 `json:"totalOverall"`
}
