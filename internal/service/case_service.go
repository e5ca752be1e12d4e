package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/peticao/internal/casefile"
	"github.com/mmynk/peticao/internal/evidence"
	"github.com/mmynk/peticao/internal/metrics"
	"github.com/mmynk/peticao/internal/models"
	"github.com/mmynk/peticao/internal/petition"
	"github.com/mmynk/peticao/internal/storage"
	"github.com/mmynk/peticao/internal/validation"
	"github.com/mmynk/peticao/pkg/api"
	"github.com/mmynk/peticao/pkg/api/apiconnect"
)

// CaseService implements the Connect CaseService
type CaseService struct {
	apiconnect.UnimplementedCaseServiceHandler
	store storage.Store
	now   func() time.Time
}

// NewCaseService creates a new CaseService with the given storage backend.
func NewCaseService(store storage.Store) *CaseService {
	return &CaseService{store: store, now: time.Now}
}

// toConnectError maps domain errors to Connect codes. Internal errors are
// logged before they are returned.
func toConnectError(op string, err error) error {
	var verr *validation.ValidationError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		return connect.NewError(connect.CodeAborted, err)
	case errors.As(err, &verr),
		errors.Is(err, casefile.ErrUnknownItem),
		errors.Is(err, casefile.ErrInvalidOverride),
		errors.Is(err, evidence.ErrEmpty),
		errors.Is(err, evidence.ErrTooLarge):
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	slog.Error(op+" failed", "error", err)
	return connect.NewError(connect.CodeInternal, err)
}

// load fetches a case and wraps it in an aggregate.
func (s *CaseService) load(ctx context.Context, caseID string) (*casefile.Aggregate, error) {
	c, err := s.store.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return casefile.New(c), nil
}

// save persists the aggregate's case.
func (s *CaseService) save(ctx context.Context, a *casefile.Aggregate) error {
	if err := s.store.UpdateCase(ctx, a.Case()); err != nil {
		return err
	}
	metrics.CaseEvents.WithLabelValues("updated").Inc()
	return nil
}

// CreateCase creates a new draft case. Sections present in the request are
// validated; absent ones are filled in later by the update calls.
func (s *CaseService) CreateCase(ctx context.Context, req *connect.Request[api.CreateCaseRequest]) (*connect.Response[api.CreateCaseResponse], error) {
	slog.Info("CreateCase request received",
		"has_qualification", req.Msg.Qualification != nil,
		"has_facts", req.Msg.Facts != nil,
		"claims_count", len(req.Msg.Claims),
	)

	c := &models.Case{Status: models.StatusDraft}
	if req.Msg.Facts != nil {
		c.Facts = factsFromAPI(*req.Msg.Facts)
		if err := validation.ValidateFacts(c.Facts); err != nil {
			return nil, toConnectError("CreateCase", err)
		}
	}
	if len(req.Msg.Claims) > 0 {
		c.Claims = claimsFromAPI(req.Msg.Claims)
		if err := validation.ValidateClaims(c.Claims); err != nil {
			return nil, toConnectError("CreateCase", err)
		}
	}

	a := casefile.New(c)
	if req.Msg.Qualification != nil {
		q := qualificationFromAPI(*req.Msg.Qualification)
		if err := validation.ValidateQualification(q); err != nil {
			return nil, toConnectError("CreateCase", err)
		}
		a.OnQualificationChanged(q)
	}

	// Save to storage (generates ID, timestamps and a default title)
	if err := s.store.CreateCase(ctx, a.Case()); err != nil {
		return nil, toConnectError("CreateCase", err)
	}
	metrics.CaseEvents.WithLabelValues("created").Inc()
	metrics.ObserveSummary(a.Summary())

	slog.Info("Case created", "case_id", c.ID, "title", c.Title, "value", c.Value)

	return connect.NewResponse(&api.CreateCaseResponse{Case: caseToAPI(a)}), nil
}

// GetCase retrieves a case by ID.
func (s *CaseService) GetCase(ctx context.Context, req *connect.Request[api.GetCaseRequest]) (*connect.Response[api.GetCaseResponse], error) {
	slog.Info("GetCase request received", "case_id", req.Msg.CaseID)

	a, err := s.load(ctx, req.Msg.CaseID)
	if err != nil {
		return nil, toConnectError("GetCase", err)
	}

	slog.Info("GetCase successful", "case_id", a.Case().ID, "title", a.Case().Title)

	return connect.NewResponse(&api.GetCaseResponse{Case: caseToAPI(a)}), nil
}

// ListCases lists cases, most recently updated first.
func (s *CaseService) ListCases(ctx context.Context, req *connect.Request[api.ListCasesRequest]) (*connect.Response[api.ListCasesResponse], error) {
	slog.Info("ListCases request received", "status", req.Msg.Status, "limit", req.Msg.Limit)

	status := models.Status(req.Msg.Status)
	if status != "" && !status.Valid() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown status %q", req.Msg.Status))
	}
	if req.Msg.Limit < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("limit must not be negative"))
	}

	cases, err := s.store.ListCases(ctx, storage.ListOptions{Status: status, Limit: req.Msg.Limit})
	if err != nil {
		return nil, toConnectError("ListCases", err)
	}

	out := make([]api.CaseSummary, len(cases))
	for i, c := range cases {
		out[i] = caseSummaryToAPI(c)
	}

	slog.Info("ListCases successful", "count", len(out))

	return connect.NewResponse(&api.ListCasesResponse{Cases: out}), nil
}

// DeleteCase removes a case.
func (s *CaseService) DeleteCase(ctx context.Context, req *connect.Request[api.DeleteCaseRequest]) (*connect.Response[api.DeleteCaseResponse], error) {
	slog.Info("DeleteCase request received", "case_id", req.Msg.CaseID)

	if err := s.store.DeleteCase(ctx, req.Msg.CaseID); err != nil {
		return nil, toConnectError("DeleteCase", err)
	}
	metrics.CaseEvents.WithLabelValues("deleted").Inc()

	slog.Info("Case deleted", "case_id", req.Msg.CaseID)

	return connect.NewResponse(&api.DeleteCaseResponse{}), nil
}

// UpdateQualification replaces the party identification.
func (s *CaseService) UpdateQualification(ctx context.Context, req *connect.Request[api.UpdateQualificationRequest]) (*connect.Response[api.UpdateQualificationResponse], error) {
	slog.Info("UpdateQualification request received", "case_id", req.Msg.CaseID)

	q := qualificationFromAPI(req.Msg.Qualification)
	if err := validation.ValidateQualification(q); err != nil {
		return nil, toConnectError("UpdateQualification", err)
	}

	a, err := s.load(ctx, req.Msg.CaseID)
	if err != nil {
		return nil, toConnectError("UpdateQualification", err)
	}
	a.OnQualificationChanged(q)
	if err := s.save(ctx, a); err != nil {
		return nil, toConnectError("UpdateQualification", err)
	}

	slog.Info("Qualification updated", "case_id", req.Msg.CaseID, "title", a.Case().Title)

	return connect.NewResponse(&api.UpdateQualificationResponse{Case: caseToAPI(a)}), nil
}

// UpdateFacts replaces the employment facts and recomputes the estimate.
func (s *CaseService) UpdateFacts(ctx context.Context, req *connect.Request[api.UpdateFactsRequest]) (*connect.Response[api.UpdateFactsResponse], error) {
	slog.Info("UpdateFacts request received", "case_id", req.Msg.CaseID)

	facts := factsFromAPI(req.Msg.Facts)
	if err := validation.ValidateFacts(facts); err != nil {
		return nil, toConnectError("UpdateFacts", err)
	}

	a, err := s.load(ctx, req.Msg.CaseID)
	if err != nil {
		return nil, toConnectError("UpdateFacts", err)
	}
	sum := a.OnFactsChanged(facts)
	if err := s.save(ctx, a); err != nil {
		return nil, toConnectError("UpdateFacts", err)
	}
	metrics.ObserveSummary(sum)

	slog.Info("Facts updated", "case_id", req.Msg.CaseID, "value", sum.TotalOverall)

	return connect.NewResponse(&api.UpdateFactsResponse{Case: caseToAPI(a)}), nil
}

// UpdateClaims replaces the claim selection and recomputes the estimate.
func (s *CaseService) UpdateClaims(ctx context.Context, req *connect.Request[api.UpdateClaimsRequest]) (*connect.Response[api.UpdateClaimsResponse], error) {
	slog.Info("UpdateClaims request received",
		"case_id", req.Msg.CaseID,
		"claims_count", len(req.Msg.Claims),
	)

	claims := claimsFromAPI(req.Msg.Claims)
	if err := validation.ValidateClaims(claims); err != nil {
		return nil, toConnectError("UpdateClaims", err)
	}

	a, err := s.load(ctx, req.Msg.CaseID)
	if err != nil {
		return nil, toConnectError("UpdateClaims", err)
	}
	sum := a.OnClaimsChanged(claims)
	if err := s.save(ctx, a); err != nil {
		return nil, toConnectError("UpdateClaims", err)
	}
	metrics.ObserveSummary(sum)

	slog.Info("Claims updated",
		"case_id", req.Msg.CaseID,
		"items", len(sum.Items),
		"value", sum.TotalOverall,
	)

	return connect.NewResponse(&api.UpdateClaimsResponse{Case: caseToAPI(a)}), nil
}

// SetOverride sets or clears the manual base value of one calculation item.
func (s *CaseService) SetOverride(ctx context.Context, req *connect.Request[api.SetOverrideRequest]) (*connect.Response[api.SetOverrideResponse], error) {
	slog.Info("SetOverride request received",
		"case_id", req.Msg.CaseID,
		"item_id", req.Msg.ItemID,
		"clear", req.Msg.Value == nil,
	)

	a, err := s.load(ctx, req.Msg.CaseID)
	if err != nil {
		return nil, toConnectError("SetOverride", err)
	}

	if req.Msg.Value == nil {
		_, err = a.ClearOverride(req.Msg.ItemID)
	} else {
		_, err = a.OnOverrideChanged(req.Msg.ItemID, *req.Msg.Value)
	}
	if err != nil {
		return nil, toConnectError("SetOverride", err)
	}

	if err := s.save(ctx, a); err != nil {
		return nil, toConnectError("SetOverride", err)
	}

	slog.Info("Override updated", "case_id", req.Msg.CaseID, "value", a.Case().Value)

	return connect.NewResponse(&api.SetOverrideResponse{Case: caseToAPI(a)}), nil
}

// AttachEvidence stores an uploaded proof and links it to the case.
func (s *CaseService) AttachEvidence(ctx context.Context, req *connect.Request[api.AttachEvidenceRequest]) (*connect.Response[api.AttachEvidenceResponse], error) {
	slog.Info("AttachEvidence request received",
		"case_id", req.Msg.CaseID,
		"name", req.Msg.Name,
		"size", len(req.Msg.Content),
		"linked_claim", req.Msg.LinkedClaim,
	)

	ref, err := evidence.New(evidence.Upload{
		Name:        req.Msg.Name,
		MediaType:   req.Msg.MediaType,
		LinkedClaim: req.Msg.LinkedClaim,
		Description: req.Msg.Description,
		Content:     req.Msg.Content,
	})
	if err != nil {
		return nil, toConnectError("AttachEvidence", err)
	}

	a, err := s.load(ctx, req.Msg.CaseID)
	if err != nil {
		return nil, toConnectError("AttachEvidence", err)
	}
	if ref.LinkedClaim != "" && !hasClaim(a.Case(), ref.LinkedClaim) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("linked claim %q is not selected", ref.LinkedClaim))
	}

	a.AttachEvidence(ref)
	if err := validation.ValidateEvidence(a.Case().Evidence); err != nil {
		return nil, toConnectError("AttachEvidence", err)
	}

	if err := s.store.PutEvidenceBlob(ctx, ref.Digest, req.Msg.Content); err != nil {
		return nil, toConnectError("AttachEvidence", err)
	}
	if err := s.save(ctx, a); err != nil {
		return nil, toConnectError("AttachEvidence", err)
	}

	slog.Info("Evidence attached",
		"case_id", req.Msg.CaseID,
		"evidence_id", ref.ID,
		"category", ref.Category,
	)

	return connect.NewResponse(&api.AttachEvidenceResponse{
		Evidence: evidenceToAPI(ref),
		Case:     caseToAPI(a),
	}), nil
}

// RemoveEvidence detaches a proof from the case. Stored content is kept,
// since other cases may reference the same digest.
func (s *CaseService) RemoveEvidence(ctx context.Context, req *connect.Request[api.RemoveEvidenceRequest]) (*connect.Response[api.RemoveEvidenceResponse], error) {
	slog.Info("RemoveEvidence request received",
		"case_id", req.Msg.CaseID,
		"evidence_id", req.Msg.EvidenceID,
	)

	a, err := s.load(ctx, req.Msg.CaseID)
	if err != nil {
		return nil, toConnectError("RemoveEvidence", err)
	}
	if !a.DetachEvidence(req.Msg.EvidenceID) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("evidence %s not found", req.Msg.EvidenceID))
	}
	if err := s.save(ctx, a); err != nil {
		return nil, toConnectError("RemoveEvidence", err)
	}

	slog.Info("Evidence removed", "case_id", req.Msg.CaseID, "evidence_id", req.Msg.EvidenceID)

	return connect.NewResponse(&api.RemoveEvidenceResponse{Case: caseToAPI(a)}), nil
}

// hasClaim reports whether ref names a selected claim by key or type.
func hasClaim(c *models.Case, ref string) bool {
	for _, cl := range c.Claims {
		if cl.Key == ref || cl.Type == ref {
			return true
		}
	}
	return false
}

// GeneratePetition renders the petition, or stores the edited text sent by
// the client, and reports what still blocks filing.
func (s *CaseService) GeneratePetition(ctx context.Context, req *connect.Request[api.GeneratePetitionRequest]) (*connect.Response[api.GeneratePetitionResponse], error) {
	slog.Info("GeneratePetition request received",
		"case_id", req.Msg.CaseID,
		"edited", req.Msg.Text != "",
	)

	a, err := s.load(ctx, req.Msg.CaseID)
	if err != nil {
		return nil, toConnectError("GeneratePetition", err)
	}
	c := a.Case()

	text := req.Msg.Text
	if text == "" {
		text = petition.Render(c, s.now())
	}
	c.PetitionText = text
	if c.Status == models.StatusDraft {
		c.Status = models.StatusGenerated
	}
	requirements := petition.CheckRequirements(c)

	if err := s.save(ctx, a); err != nil {
		return nil, toConnectError("GeneratePetition", err)
	}
	metrics.CaseEvents.WithLabelValues("generated").Inc()

	slog.Info("Petition generated",
		"case_id", c.ID,
		"length", len(text),
		"pending_requirements", len(requirements),
	)

	if requirements == nil {
		requirements = []string{}
	}
	return connect.NewResponse(&api.GeneratePetitionResponse{
		PetitionText: text,
		Requirements: requirements,
		Case:         caseToAPI(a),
	}), nil
}

// ExportBundle packs the petition, the calculation and the evidence list
// into a zip archive ready for filing.
func (s *CaseService) ExportBundle(ctx context.Context, req *connect.Request[api.ExportBundleRequest]) (*connect.Response[api.ExportBundleResponse], error) {
	slog.Info("ExportBundle request received", "case_id", req.Msg.CaseID)

	a, err := s.load(ctx, req.Msg.CaseID)
	if err != nil {
		return nil, toConnectError("ExportBundle", err)
	}

	s.checkEvidence(ctx, a.Case())

	now := s.now()
	content, err := petition.Bundle(a.Case(), now)
	if err != nil {
		return nil, toConnectError("ExportBundle", err)
	}
	name := petition.BundleName(a.Case(), now)
	metrics.CaseEvents.WithLabelValues("exported").Inc()

	slog.Info("Bundle exported", "case_id", req.Msg.CaseID, "file", name, "size", len(content))

	return connect.NewResponse(&api.ExportBundleResponse{
		FileName: name,
		Content:  content,
	}), nil
}

// checkEvidence logs evidence whose stored content is missing or no longer
// matches its reference. The bundle lists evidence either way.
func (s *CaseService) checkEvidence(ctx context.Context, c *models.Case) {
	for _, ref := range c.Evidence {
		content, err := s.store.GetEvidenceBlob(ctx, ref.Digest)
		switch {
		case err != nil:
			slog.Warn("Evidence content unavailable", "case_id", c.ID, "evidence_id", ref.ID, "error", err)
		case !evidence.Verify(ref, content):
			slog.Warn("Evidence content does not match its digest", "case_id", c.ID, "evidence_id", ref.ID)
		}
	}
}
