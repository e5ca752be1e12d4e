package models

import "github.com/mmynk/peticao/internal/calculator"

// Status is the lifecycle stage of a case.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusGenerated Status = "generated"
	StatusFiled     Status = "filed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusGenerated, StatusFiled:
		return true
	}
	return false
}

// Case is a labor claim under preparation.
type Case struct {
	// ID is the unique identifier for the case (UUID format).
	ID string `json:"id"`

	// Title is the display name, usually "<claimant> x <defendant>".
	Title string `json:"title"`

	Status Status `json:"status"`

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`

	// Version counts stored revisions. Updates based on an older version
	// are rejected.
	Version int64 `json:"version"`

	// Value mirrors Calculations.TotalOverall.
	Value float64 `json:"value"`

	Qualification Qualification    `json:"qualification"`
	Facts         Facts            `json:"facts"`
	Claims        []ClaimSelection `json:"claims"`
	Evidence      []EvidenceRef    `json:"evidence"`

	// Overrides maps ClaimSelection.Key to a manual base value.
	Overrides map[string]float64 `json:"overrides,omitempty"`

	// Calculations is the summary computed from the current facts, claims
	// and overrides. Nil until the first computation.
	Calculations *calculator.Summary `json:"calculations,omitempty"`

	// PetitionText is the last generated petition.
	PetitionText string `json:"petitionText,omitempty"`
}

// Qualification identifies the parties.
type Qualification struct {
	ClaimantName     string `json:"claimantName"`
	ClaimantCPF      string `json:"claimantCpf"`
	ClaimantAddress  string `json:"claimantAddress"`
	DefendantName    string `json:"defendantName"`
	DefendantCNPJ    string `json:"defendantCnpj"`
	DefendantAddress string `json:"defendantAddress"`

	// City is where the petition is signed.
	City string `json:"city,omitempty"`

	// DigitalProcess is set when the claimant opts for a fully digital process.
	DigitalProcess bool `json:"digitalProcess,omitempty"`
}

// Facts are the employment facts as entered by the claimant.
type Facts struct {
	AdmissionDate   string  `json:"admissionDate"`
	TerminationDate string  `json:"terminationDate"`
	Position        string  `json:"position"`
	Salary          float64 `json:"salary"`
	WorkSchedule    string  `json:"workSchedule"`
	Description     string  `json:"description"`

	// DismissalType is a catalog dismissal value (sem_justa_causa, pedido_demissao, ...).
	DismissalType string `json:"dismissalType,omitempty"`

	// Events are catalog fact events used to suggest claims.
	Events []string `json:"events,omitempty"`
}

// Calculation returns the subset of facts the calculator uses.
func (f Facts) Calculation() calculator.Facts {
	return calculator.Facts{
		GrossSalary:     f.Salary,
		AdmissionDate:   f.AdmissionDate,
		TerminationDate: f.TerminationDate,
	}
}

// ClaimSelection is a claim chosen for the case.
type ClaimSelection struct {
	// Key is a stable identifier assigned when the claim is selected.
	Key string `json:"key"`

	// Type is a catalog identifier or a free-text label.
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`

	Parameters map[string]any `json:"parameters,omitempty"`
}

// Calculation converts the selection to a calculator claim.
func (c ClaimSelection) Calculation() calculator.Claim {
	return calculator.Claim{Type: c.Type, Label: c.Label, Parameters: c.Parameters}
}

// EvidenceRef describes an attached proof. The content lives in the
// evidence store under Digest.
type EvidenceRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	MediaType   string `json:"mediaType,omitempty"`
	Size        int64  `json:"size"`
	Digest      string `json:"digest"`
	LinkedClaim string `json:"linkedClaim,omitempty"`
	Description string `json:"description,omitempty"`
}
