// Package api defines the wire messages of the peticao.v1 services.
//
// Messages are encoded as JSON with camelCase field names. Monetary values
// are plain numbers, never rounded; clients format them for display.
package api

// Qualification identifies the parties.
type Qualification struct {
	ClaimantName     string `json:"claimantName"`
	ClaimantCpf      string `json:"claimantCpf"`
	ClaimantAddress  string `json:"claimantAddress"`
	DefendantName    string `json:"defendantName"`
	DefendantCnpj    string `json:"defendantCnpj"`
	DefendantAddress string `json:"defendantAddress"`
	City             string `json:"city,omitempty"`
	DigitalProcess   bool   `json:"digitalProcess,omitempty"`
}

// Facts are the employment facts.
type Facts struct {
	AdmissionDate   string   `json:"admissionDate"`
	TerminationDate string   `json:"terminationDate"`
	Position        string   `json:"position"`
	Salary          float64  `json:"salary"`
	WorkSchedule    string   `json:"workSchedule"`
	Description     string   `json:"description"`
	DismissalType   string   `json:"dismissalType,omitempty"`
	Events          []string `json:"events,omitempty"`
}

// ClaimSelection is a selected claim. Key is assigned by the server and
// should be sent back unchanged.
type ClaimSelection struct {
	Key        string         `json:"key,omitempty"`
	Type       string         `json:"type"`
	Label      string         `json:"label,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// EvidenceRef describes an attached proof.
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

// CalculationItem is the estimate for one claim.
type CalculationItem struct {
	ID              string  `json:"id"`
	ClaimType       string  `json:"claimType"`
	Description     string  `json:"description"`
	Rule            string  `json:"rule"`
	BaseValue       float64 `json:"baseValue"`
	AccessoryValue  float64 `json:"accessoryValue"`
	Total           float64 `json:"total"`
	Formula         string  `json:"formula"`
	Editable        bool    `json:"editable"`
	ConfidenceLevel string  `json:"confidenceLevel"`
	Overridden      bool    `json:"overridden,omitempty"`
}

// CalculationSummary is the estimate for a whole case.
type CalculationSummary struct {
	Items          []CalculationItem `json:"items"`
	TotalBase      float64           `json:"totalBase"`
	TotalAccessory float64           `json:"totalAccessory"`
	TotalOverall   float64           `json:"totalOverall"`
}

// Case is a labor claim under preparation.
type Case struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Status        string           `json:"status"`
	CreatedAt     int64            `json:"createdAt"`
	UpdatedAt     int64            `json:"updatedAt"`
	Version       int64            `json:"version"`
	Value         float64          `json:"value"`
	Qualification Qualification    `json:"qualification"`
	Facts         Facts            `json:"facts"`
	Claims        []ClaimSelection `json:"claims"`
	Evidence      []EvidenceRef    `json:"evidence"`

	// Overrides maps calculation item IDs to manual base values.
	Overrides    map[string]float64  `json:"overrides,omitempty"`
	Calculations *CalculationSummary `json:"calculations,omitempty"`
	PetitionText string              `json:"petitionText,omitempty"`
}

// CaseSummary is a case as shown in listings.
type CaseSummary struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	Value     float64 `json:"value"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

// ClaimParameter is a claim-specific input.
type ClaimParameter struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// SuggestedEvidence is a proof usually attached to a claim.
type SuggestedEvidence struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ClaimType is a recognized claim.
type ClaimType struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
	Article     string              `json:"article"`
	Category    string              `json:"category"`
	Parameters  []ClaimParameter    `json:"parameters,omitempty"`
	Evidence    []SuggestedEvidence `json:"evidence,omitempty"`
}

// EventType is a fact event and the claims it suggests.
type EventType struct {
	Value           string   `json:"value"`
	Label           string   `json:"label"`
	Description     string   `json:"description"`
	SuggestedClaims []string `json:"suggestedClaims"`
}

// DismissalType is a way the contract ended.
type DismissalType struct {
	Value string `json:"value"`
	Group string `json:"group"`
	Label string `json:"label"`
}

// Analysis is the jurisprudence outlook of one claim.
type Analysis struct {
	Claim           string   `json:"claim"`
	Articles        []string `json:"articles"`
	Court           string   `json:"court"`
	Probability     int      `json:"probability"`
	TotalCases      int      `json:"totalCases"`
	Granted         int      `json:"granted"`
	Denied          int      `json:"denied"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	ComparisonBase  string   `json:"comparisonBase"`
}

// CaseService messages.

type CreateCaseRequest struct {
	Qualification *Qualification   `json:"qualification,omitempty"`
	Facts         *Facts           `json:"facts,omitempty"`
	Claims        []ClaimSelection `json:"claims,omitempty"`
}

type CreateCaseResponse struct {
	Case *Case `json:"case"`
}

type GetCaseRequest struct {
	CaseID string `json:"caseId"`
}

type GetCaseResponse struct {
	Case *Case `json:"case"`
}

type ListCasesRequest struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type ListCasesResponse struct {
	Cases []CaseSummary `json:"cases"`
}

type DeleteCaseRequest struct {
	CaseID string `json:"caseId"`
}

type DeleteCaseResponse struct{}

type UpdateQualificationRequest struct {
	CaseID        string        `json:"caseId"`
	Qualification Qualification `json:"qualification"`
}

type UpdateQualificationResponse struct {
	Case *Case `json:"case"`
}

type UpdateFactsRequest struct {
	CaseID string `json:"caseId"`
	Facts  Facts  `json:"facts"`
}

type UpdateFactsResponse struct {
	Case *Case `json:"case"`
}

type UpdateClaimsRequest struct {
	CaseID string           `json:"caseId"`
	Claims []ClaimSelection `json:"claims"`
}

type UpdateClaimsResponse struct {
	Case *Case `json:"case"`
}

// SetOverrideRequest sets the manual base value of an item. A nil Value
// clears the override.
type SetOverrideRequest struct {
	CaseID string   `json:"caseId"`
	ItemID string   `json:"itemId"`
	Value  *float64 `json:"value"`
}

type SetOverrideResponse struct {
	Case *Case `json:"case"`
}

type AttachEvidenceRequest struct {
	CaseID      string `json:"caseId"`
	Name        string `json:"name"`
	MediaType   string `json:"mediaType,omitempty"`
	LinkedClaim string `json:"linkedClaim,omitempty"`
	Description string `json:"description,omitempty"`
	Content     []byte `json:"content"`
}

type AttachEvidenceResponse struct {
	Evidence EvidenceRef `json:"evidence"`
	Case     *Case       `json:"case"`
}

type RemoveEvidenceRequest struct {
	CaseID     string `json:"caseId"`
	EvidenceID string `json:"evidenceId"`
}

type RemoveEvidenceResponse struct {
	Case *Case `json:"case"`
}

// GeneratePetitionRequest renders the petition. When Text is set it is
// stored as the edited petition instead.
type GeneratePetitionRequest struct {
	CaseID string `json:"caseId"`
	Text   string `json:"text,omitempty"`
}

type GeneratePetitionResponse struct {
	PetitionText string   `json:"petitionText"`
	Requirements []string `json:"requirements"`
	Case         *Case    `json:"case"`
}

type ExportBundleRequest struct {
	CaseID string `json:"caseId"`
}

type ExportBundleResponse struct {
	FileName string `json:"fileName"`
	Content  []byte `json:"content"`
}

// CalculatorService messages.

type CalculateRequest struct {
	Facts     Facts              `json:"facts"`
	Claims    []ClaimSelection   `json:"claims"`
	Overrides map[string]float64 `json:"overrides,omitempty"`
}

type CalculateResponse struct {
	Summary      CalculationSummary `json:"summary"`
	MonthsWorked int                `json:"monthsWorked"`
}

type ListClaimTypesRequest struct {
	Category string `json:"category,omitempty"`
}

type ListClaimTypesResponse struct {
	Categories     []string        `json:"categories"`
	ClaimTypes     []ClaimType     `json:"claimTypes"`
	EventTypes     []EventType     `json:"eventTypes"`
	DismissalTypes []DismissalType `json:"dismissalTypes"`
}

type SuggestClaimsRequest struct {
	Events []string `json:"events"`
}

type SuggestClaimsResponse struct {
	ClaimTypes []ClaimType `json:"claimTypes"`
}

type AnalyzeClaimsRequest struct {
	Claims []string `json:"claims"`
	Court  string   `json:"court,omitempty"`
}

type AnalyzeClaimsResponse struct {
	Analyses []Analysis `json:"analyses"`
}

// GetCaseID getters let interceptors tag calls with the case they act on.
// They are nil-safe.

func (x *GetCaseRequest) GetCaseID() string {
	if x == nil {
		return ""
	}
	return x.CaseID
}

func (x *DeleteCaseRequest) GetCaseID() string {
	if x == nil {
		return ""
	}
	return x.CaseID
}

func (x *UpdateQualificationRequest) GetCaseID() string {
	if x == nil {
		return ""
	}
	return x.CaseID
}

func (x *UpdateFactsRequest) GetCaseID() string {
	if x == nil {
		return ""
	}
	return x.CaseID
}

func (x *UpdateClaimsRequest) GetCaseID() string {
	if x == nil {
		return ""
	}
	return x.CaseID
}

func (x *SetOverrideRequest) GetCaseID() string {
	if x == nil {
		return ""
	}
	return x.CaseID
}

func (x *AttachEvidenceRequest) GetCaseID() string {
	if x == nil {
		return ""
	}
	return x.CaseID
}

func (x *RemoveEvidenceRequest) GetCaseID() string {
	if x == nil {
		return ""
	}
	return x.CaseID
}

func (x *GeneratePetitionRequest) GetCaseID() string {
	if x == nil {
		return ""
	}
	return x.CaseID
}

func (x *ExportBundleRequest) GetCaseID() string {
	if x == nil {
		return ""
	}
	return x.CaseID
}
