package service

import (
	"github.com/mmynk/peticao/internal/calculator"
	"github.com/mmynk/peticao/internal/casefile"
	"github.com/mmynk/peticao/internal/catalog"
	"github.com/mmynk/peticao/internal/jurisprudence"
	"github.com/mmynk/peticao/internal/models"
	"github.com/mmynk/peticao/pkg/api"
)

func qualificationFromAPI(q api.Qualification) models.Qualification {
	return models.Qualification{
		ClaimantName:     q.ClaimantName,
		ClaimantCPF:      q.ClaimantCpf,
		ClaimantAddress:  q.ClaimantAddress,
		DefendantName:    q.DefendantName,
		DefendantCNPJ:    q.DefendantCnpj,
		DefendantAddress: q.DefendantAddress,
		City:             q.City,
		DigitalProcess:   q.DigitalProcess,
	}
}

func qualificationToAPI(q models.Qualification) api.Qualification {
	return api.Qualification{
		ClaimantName:     q.ClaimantName,
		ClaimantCpf:      q.ClaimantCPF,
		ClaimantAddress:  q.ClaimantAddress,
		DefendantName:    q.DefendantName,
		DefendantCnpj:    q.DefendantCNPJ,
		DefendantAddress: q.DefendantAddress,
		City:             q.City,
		DigitalProcess:   q.DigitalProcess,
	}
}

func factsFromAPI(f api.Facts) models.Facts {
	return models.Facts{
		AdmissionDate:   f.AdmissionDate,
		TerminationDate: f.TerminationDate,
		Position:        f.Position,
		Salary:          f.Salary,
		WorkSchedule:    f.WorkSchedule,
		Description:     f.Description,
		DismissalType:   f.DismissalType,
		Events:          f.Events,
	}
}

func factsToAPI(f models.Facts) api.Facts {
	return api.Facts{
		AdmissionDate:   f.AdmissionDate,
		TerminationDate: f.TerminationDate,
		Position:        f.Position,
		Salary:          f.Salary,
		WorkSchedule:    f.WorkSchedule,
		Description:     f.Description,
		DismissalType:   f.DismissalType,
		Events:          f.Events,
	}
}

func claimsFromAPI(claims []api.ClaimSelection) []models.ClaimSelection {
	out := make([]models.ClaimSelection, len(claims))
	for i, c := range claims {
		out[i] = models.ClaimSelection{
			Key:        c.Key,
			Type:       c.Type,
			Label:      c.Label,
			Parameters: c.Parameters,
		}
	}
	return out
}

func claimsToAPI(claims []models.ClaimSelection) []api.ClaimSelection {
	out := make([]api.ClaimSelection, len(claims))
	for i, c := range claims {
		out[i] = api.ClaimSelection{
			Key:        c.Key,
			Type:       c.Type,
			Label:      c.Label,
			Parameters: c.Parameters,
		}
	}
	return out
}

func evidenceToAPI(e models.EvidenceRef) api.EvidenceRef {
	return api.EvidenceRef{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Category,
		MediaType:   e.MediaType,
		Size:        e.Size,
		Digest:      e.Digest,
		LinkedClaim: e.LinkedClaim,
		Description: e.Description,
	}
}

func summaryToAPI(s calculator.Summary) api.CalculationSummary {
	items := make([]api.CalculationItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = api.CalculationItem{
			ID:              it.ID,
			ClaimType:       it.ClaimType,
			Description:     it.Description,
			Rule:            it.Rule,
			BaseValue:       it.BaseValue,
			AccessoryValue:  it.AccessoryValue,
			Total:           it.Total,
			Formula:         it.Formula,
			Editable:        it.Editable,
			ConfidenceLevel: string(it.Confidence),
			Overridden:      it.Overridden,
		}
	}
	return api.CalculationSummary{
		Items:          items,
		TotalBase:      s.TotalBase,
		TotalAccessory: s.TotalAccessory,
		TotalOverall:   s.TotalOverall,
	}
}

// caseToAPI converts the aggregate's case. Overrides are reported against
// the positional item IDs clients address them by.
func caseToAPI(a *casefile.Aggregate) *api.Case {
	c := a.Case()
	sum := summaryToAPI(a.Summary())

	evidence := make([]api.EvidenceRef, len(c.Evidence))
	for i, e := range c.Evidence {
		evidence[i] = evidenceToAPI(e)
	}

	return &api.Case{
		ID:            c.ID,
		Title:         c.Title,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Version:       c.Version,
		Value:         c.Value,
		Qualification: qualificationToAPI(c.Qualification),
		Facts:         factsToAPI(c.Facts),
		Claims:        claimsToAPI(c.Claims),
		Evidence:      evidence,
		Overrides:     a.PositionalOverrides(),
		Calculations:  &sum,
		PetitionText:  c.PetitionText,
	}
}

func caseSummaryToAPI(c *models.Case) api.CaseSummary {
	return api.CaseSummary{
		ID:        c.ID,
		Title:     c.Title,
		Status:    string(c.Status),
		Value:     c.Value,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func claimTypeToAPI(c catalog.Claim) api.ClaimType {
	out := api.ClaimType{
		ID:          c.ID,
		Title:       c.Title,
		Label:       c.Label,
		Description: c.Description,
		Article:     c.Article,
		Category:    c.Category,
	}
	for _, p := range c.Parameters {
		out.Parameters = append(out.Parameters, api.ClaimParameter{
			Name:        p.Name,
			Kind:        p.Kind,
			Label:       p.Label,
			Placeholder: p.Placeholder,
			Options:     p.Options,
		})
	}
	for _, e := range c.Evidence {
		out.Evidence = append(out.Evidence, api.SuggestedEvidence{
			Type:        e.Type,
			Label:       e.Label,
			Description: e.Description,
		})
	}
	return out
}

func analysisToAPI(a jurisprudence.Analysis) api.Analysis {
	return api.Analysis{
		Claim:           a.Claim,
		Articles:        a.Articles,
		Court:           a.Court,
		Probability:     a.Probability,
		TotalCases:      a.TotalCases,
		Granted:         a.Granted,
		Denied:          a.Denied,
		Summary:         a.Summary,
		Recommendations: a.Recommendations,
		ComparisonBase:  a.ComparisonBase,
	}
}
