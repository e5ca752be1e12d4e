package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/peticao/internal/calculator"
	"github.com/mmynk/peticao/internal/catalog"
	"github.com/mmynk/peticao/internal/jurisprudence"
	"github.com/mmynk/peticao/internal/metrics"
	"github.com/mmynk/peticao/pkg/api"
	"github.com/mmynk/peticao/pkg/api/apiconnect"
)

// CalculatorService implements the Connect CalculatorService. It holds no
// state: every call works on the request and the embedded catalogs.
type CalculatorService struct {
	apiconnect.UnimplementedCalculatorServiceHandler
	court string
}

// NewCalculatorService creates a CalculatorService that analyzes claims
// against court when a request names none.
func NewCalculatorService(court string) *CalculatorService {
	if court == "" {
		court = jurisprudence.DefaultCourt
	}
	return &CalculatorService{court: court}
}

// Calculate estimates the claims without storing anything.
func (s *CalculatorService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	slog.Info("Calculate request received",
		"claims_count", len(req.Msg.Claims),
		"overrides_count", len(req.Msg.Overrides),
	)

	facts := factsFromAPI(req.Msg.Facts).Calculation()
	claims := make([]calculator.Claim, len(req.Msg.Claims))
	for i, c := range claimsFromAPI(req.Msg.Claims) {
		claims[i] = c.Calculation()
	}

	sum := calculator.Compute(facts, claims, req.Msg.Overrides)
	metrics.ObserveSummary(sum)

	for _, it := range sum.Items {
		slog.Debug("Item computed",
			"id", it.ID,
			"rule", it.Rule,
			"total", it.Total,
			"confidence", it.Confidence,
		)
	}
	slog.Info("Calculate successful", "items", len(sum.Items), "total", sum.TotalOverall)

	return connect.NewResponse(&api.CalculateResponse{
		Summary:      summaryToAPI(sum),
		MonthsWorked: calculator.MonthsWorked(facts.AdmissionDate, facts.TerminationDate),
	}), nil
}

// ListClaimTypes returns the catalog, optionally restricted to one category.
func (s *CalculatorService) ListClaimTypes(ctx context.Context, req *connect.Request[api.ListClaimTypesRequest]) (*connect.Response[api.ListClaimTypesResponse], error) {
	slog.Info("ListClaimTypes request received", "category", req.Msg.Category)

	claims := catalog.All()
	if req.Msg.Category != "" {
		claims = catalog.ByCategory(req.Msg.Category)
	}

	resp := &api.ListClaimTypesResponse{
		Categories: catalog.Categories(),
		ClaimTypes: make([]api.ClaimType, len(claims)),
	}
	for i, c := range claims {
		resp.ClaimTypes[i] = claimTypeToAPI(c)
	}
	for _, e := range catalog.EventTypes() {
		resp.EventTypes = append(resp.EventTypes, api.EventType{
			Value:           e.Value,
			Label:           e.Label,
			Description:     e.Description,
			SuggestedClaims: e.Suggested,
		})
	}
	for _, d := range catalog.DismissalTypes() {
		resp.DismissalTypes = append(resp.DismissalTypes, api.DismissalType{
			Value: d.Value,
			Group: d.Group,
			Label: d.Label,
		})
	}

	slog.Info("ListClaimTypes successful", "count", len(resp.ClaimTypes))

	return connect.NewResponse(resp), nil
}

// SuggestClaims returns the claim types suggested by the given fact events.
func (s *CalculatorService) SuggestClaims(ctx context.Context, req *connect.Request[api.SuggestClaimsRequest]) (*connect.Response[api.SuggestClaimsResponse], error) {
	slog.Info("SuggestClaims request received", "events", req.Msg.Events)

	ids := catalog.SuggestClaims(req.Msg.Events)
	out := make([]api.ClaimType, 0, len(ids))
	for _, id := range ids {
		if c, ok := catalog.Resolve(id); ok {
			out = append(out, claimTypeToAPI(c))
		} else {
			out = append(out, api.ClaimType{ID: id, Title: id, Label: id})
		}
	}

	slog.Info("SuggestClaims successful", "count", len(out))

	return connect.NewResponse(&api.SuggestClaimsResponse{ClaimTypes: out}), nil
}

// AnalyzeClaims returns the jurisprudence outlook of each claim.
func (s *CalculatorService) AnalyzeClaims(ctx context.Context, req *connect.Request[api.AnalyzeClaimsRequest]) (*connect.Response[api.AnalyzeClaimsResponse], error) {
	slog.Info("AnalyzeClaims request received",
		"claims_count", len(req.Msg.Claims),
		"court", req.Msg.Court,
	)

	if len(req.Msg.Claims) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("at least one claim is required"))
	}

	court := req.Msg.Court
	if court == "" {
		court = s.court
	}

	analyses := jurisprudence.AnalyzeAll(req.Msg.Claims, court)
	out := make([]api.Analysis, len(analyses))
	for i, a := range analyses {
		out[i] = analysisToAPI(a)
	}

	slog.Info("AnalyzeClaims successful", "count", len(out), "court", court)

	return connect.NewResponse(&api.AnalyzeClaimsResponse{Analyses: out}), nil
}
