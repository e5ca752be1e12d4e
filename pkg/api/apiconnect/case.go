package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/peticao/pkg/api"
)

// CaseServiceName is the fully-qualified name of CaseService.
const CaseServiceName = "peticao.v1.CaseService"

// Procedure paths, used for routing and in interceptors.
const (
	CaseServiceCreateCaseProcedure          = "/peticao.v1.CaseService/CreateCase"
	CaseServiceGetCaseProcedure             = "/peticao.v1.CaseService/GetCase"
	CaseServiceListCasesProcedure           = "/peticao.v1.CaseService/ListCases"
	CaseServiceDeleteCaseProcedure          = "/peticao.v1.CaseService/DeleteCase"
	CaseServiceUpdateQualificationProcedure = "/peticao.v1.CaseService/UpdateQualification"
	CaseServiceUpdateFactsProcedure         = "/peticao.v1.CaseService/UpdateFacts"
	CaseServiceUpdateClaimsProcedure        = "/peticao.v1.CaseService/UpdateClaims"
	CaseServiceSetOverrideProcedure         = "/peticao.v1.CaseService/SetOverride"
	CaseServiceAttachEvidenceProcedure      = "/peticao.v1.CaseService/AttachEvidence"
	CaseServiceRemoveEvidenceProcedure      = "/peticao.v1.CaseService/RemoveEvidence"
	CaseServiceGeneratePetitionProcedure    = "/peticao.v1.CaseService/GeneratePetition"
	CaseServiceExportBundleProcedure        = "/peticao.v1.CaseService/ExportBundle"
)

// CaseServiceHandler is implemented by the server. It manages cases: lifecycle, change events, petition and bundle export.
type CaseServiceHandler interface {
	CreateCase(context.Context, *connect.Request[api.CreateCaseRequest]) (*connect.Response[api.CreateCaseResponse], error)
	GetCase(context.Context, *connect.Request[api.GetCaseRequest]) (*connect.Response[api.GetCaseResponse], error)
	ListCases(context.Context, *connect.Request[api.ListCasesRequest]) (*connect.Response[api.ListCasesResponse], error)
	DeleteCase(context.Context, *connect.Request[api.DeleteCaseRequest]) (*connect.Response[api.DeleteCaseResponse], error)
	UpdateQualification(context.Context, *connect.Request[api.UpdateQualificationRequest]) (*connect.Response[api.UpdateQualificationResponse], error)
	UpdateFacts(context.Context, *connect.Request[api.UpdateFactsRequest]) (*connect.Response[api.UpdateFactsResponse], error)
	UpdateClaims(context.Context, *connect.Request[api.UpdateClaimsRequest]) (*connect.Response[api.UpdateClaimsResponse], error)
	SetOverride(context.Context, *connect.Request[api.SetOverrideRequest]) (*connect.Response[api.SetOverrideResponse], error)
	AttachEvidence(context.Context, *connect.Request[api.AttachEvidenceRequest]) (*connect.Response[api.AttachEvidenceResponse], error)
	RemoveEvidence(context.Context, *connect.Request[api.RemoveEvidenceRequest]) (*connect.Response[api.RemoveEvidenceResponse], error)
	GeneratePetition(context.Context, *connect.Request[api.GeneratePetitionRequest]) (*connect.Response[api.GeneratePetitionResponse], error)
	ExportBundle(context.Context, *connect.Request[api.ExportBundleRequest]) (*connect.Response[api.ExportBundleResponse], error)
}

// CaseServiceClient calls a remote CaseService.
type CaseServiceClient interface {
	CreateCase(context.Context, *connect.Request[api.CreateCaseRequest]) (*connect.Response[api.CreateCaseResponse], error)
	GetCase(context.Context, *connect.Request[api.GetCaseRequest]) (*connect.Response[api.GetCaseResponse], error)
	ListCases(context.Context, *connect.Request[api.ListCasesRequest]) (*connect.Response[api.ListCasesResponse], error)
	DeleteCase(context.Context, *connect.Request[api.DeleteCaseRequest]) (*connect.Response[api.DeleteCaseResponse], error)
	UpdateQualification(context.Context, *connect.Request[api.UpdateQualificationRequest]) (*connect.Response[api.UpdateQualificationResponse], error)
	UpdateFacts(context.Context, *connect.Request[api.UpdateFactsRequest]) (*connect.Response[api.UpdateFactsResponse], error)
	UpdateClaims(context.Context, *connect.Request[api.UpdateClaimsRequest]) (*connect.Response[api.UpdateClaimsResponse], error)
	SetOverride(context.Context, *connect.Request[api.SetOverrideRequest]) (*connect.Response[api.SetOverrideResponse], error)
	AttachEvidence(context.Context, *connect.Request[api.AttachEvidenceRequest]) (*connect.Response[api.AttachEvidenceResponse], error)
	RemoveEvidence(context.Context, *connect.Request[api.RemoveEvidenceRequest]) (*connect.Response[api.RemoveEvidenceResponse], error)
	GeneratePetition(context.Context, *connect.Request[api.GeneratePetitionRequest]) (*connect.Response[api.GeneratePetitionResponse], error)
	ExportBundle(context.Context, *connect.Request[api.ExportBundleRequest]) (*connect.Response[api.ExportBundleResponse], error)
}

// NewCaseServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewCaseServiceHandler(svc CaseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(CaseServiceCreateCaseProcedure, connect.NewUnaryHandler(CaseServiceCreateCaseProcedure, svc.CreateCase, opts...))
	mux.Handle(CaseServiceGetCaseProcedure, connect.NewUnaryHandler(CaseServiceGetCaseProcedure, svc.GetCase, opts...))
	mux.Handle(CaseServiceListCasesProcedure, connect.NewUnaryHandler(CaseServiceListCasesProcedure, svc.ListCases, opts...))
	mux.Handle(CaseServiceDeleteCaseProcedure, connect.NewUnaryHandler(CaseServiceDeleteCaseProcedure, svc.DeleteCase, opts...))
	mux.Handle(CaseServiceUpdateQualificationProcedure, connect.NewUnaryHandler(CaseServiceUpdateQualificationProcedure, svc.UpdateQualification, opts...))
	mux.Handle(CaseServiceUpdateFactsProcedure, connect.NewUnaryHandler(CaseServiceUpdateFactsProcedure, svc.UpdateFacts, opts...))
	mux.Handle(CaseServiceUpdateClaimsProcedure, connect.NewUnaryHandler(CaseServiceUpdateClaimsProcedure, svc.UpdateClaims, opts...))
	mux.Handle(CaseServiceSetOverrideProcedure, connect.NewUnaryHandler(CaseServiceSetOverrideProcedure, svc.SetOverride, opts...))
	mux.Handle(CaseServiceAttachEvidenceProcedure, connect.NewUnaryHandler(CaseServiceAttachEvidenceProcedure, svc.AttachEvidence, opts...))
	mux.Handle(CaseServiceRemoveEvidenceProcedure, connect.NewUnaryHandler(CaseServiceRemoveEvidenceProcedure, svc.RemoveEvidence, opts...))
	mux.Handle(CaseServiceGeneratePetitionProcedure, connect.NewUnaryHandler(CaseServiceGeneratePetitionProcedure, svc.GeneratePetition, opts...))
	mux.Handle(CaseServiceExportBundleProcedure, connect.NewUnaryHandler(CaseServiceExportBundleProcedure, svc.ExportBundle, opts...))
	return "/" + CaseServiceName + "/", mux
}

type caseServiceClient struct {
	createCase          *connect.Client[api.CreateCaseRequest, api.CreateCaseResponse]
	getCase             *connect.Client[api.GetCaseRequest, api.GetCaseResponse]
	listCases           *connect.Client[api.ListCasesRequest, api.ListCasesResponse]
	deleteCase          *connect.Client[api.DeleteCaseRequest, api.DeleteCaseResponse]
	updateQualification *connect.Client[api.UpdateQualificationRequest, api.UpdateQualificationResponse]
	updateFacts         *connect.Client[api.UpdateFactsRequest, api.UpdateFactsResponse]
	updateClaims        *connect.Client[api.UpdateClaimsRequest, api.UpdateClaimsResponse]
	setOverride         *connect.Client[api.SetOverrideRequest, api.SetOverrideResponse]
	attachEvidence      *connect.Client[api.AttachEvidenceRequest, api.AttachEvidenceResponse]
	removeEvidence      *connect.Client[api.RemoveEvidenceRequest, api.RemoveEvidenceResponse]
	generatePetition    *connect.Client[api.GeneratePetitionRequest, api.GeneratePetitionResponse]
	exportBundle        *connect.Client[api.ExportBundleRequest, api.ExportBundleResponse]
}

// NewCaseServiceClient returns a client for the CaseService served at baseURL.
func NewCaseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CaseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &caseServiceClient{
		createCase:          connect.NewClient[api.CreateCaseRequest, api.CreateCaseResponse](httpClient, baseURL+CaseServiceCreateCaseProcedure, opts...),
		getCase:             connect.NewClient[api.GetCaseRequest, api.GetCaseResponse](httpClient, baseURL+CaseServiceGetCaseProcedure, opts...),
		listCases:           connect.NewClient[api.ListCasesRequest, api.ListCasesResponse](httpClient, baseURL+CaseServiceListCasesProcedure, opts...),
		deleteCase:          connect.NewClient[api.DeleteCaseRequest, api.DeleteCaseResponse](httpClient, baseURL+CaseServiceDeleteCaseProcedure, opts...),
		updateQualification: connect.NewClient[api.UpdateQualificationRequest, api.UpdateQualificationResponse](httpClient, baseURL+CaseServiceUpdateQualificationProcedure, opts...),
		updateFacts:         connect.NewClient[api.UpdateFactsRequest, api.UpdateFactsResponse](httpClient, baseURL+CaseServiceUpdateFactsProcedure, opts...),
		updateClaims:        connect.NewClient[api.UpdateClaimsRequest, api.UpdateClaimsResponse](httpClient, baseURL+CaseServiceUpdateClaimsProcedure, opts...),
		setOverride:         connect.NewClient[api.SetOverrideRequest, api.SetOverrideResponse](httpClient, baseURL+CaseServiceSetOverrideProcedure, opts...),
		attachEvidence:      connect.NewClient[api.AttachEvidenceRequest, api.AttachEvidenceResponse](httpClient, baseURL+CaseServiceAttachEvidenceProcedure, opts...),
		removeEvidence:      connect.NewClient[api.RemoveEvidenceRequest, api.RemoveEvidenceResponse](httpClient, baseURL+CaseServiceRemoveEvidenceProcedure, opts...),
		generatePetition:    connect.NewClient[api.GeneratePetitionRequest, api.GeneratePetitionResponse](httpClient, baseURL+CaseServiceGeneratePetitionProcedure, opts...),
		exportBundle:        connect.NewClient[api.ExportBundleRequest, api.ExportBundleResponse](httpClient, baseURL+CaseServiceExportBundleProcedure, opts...),
	}
}

func (c *caseServiceClient) CreateCase(ctx context.Context, req *connect.Request[api.CreateCaseRequest]) (*connect.Response[api.CreateCaseResponse], error) {
	return c.createCase.CallUnary(ctx, req)
}

func (c *caseServiceClient) GetCase(ctx context.Context, req *connect.Request[api.GetCaseRequest]) (*connect.Response[api.GetCaseResponse], error) {
	return c.getCase.CallUnary(ctx, req)
}

func (c *caseServiceClient) ListCases(ctx context.Context, req *connect.Request[api.ListCasesRequest]) (*connect.Response[api.ListCasesResponse], error) {
	return c.listCases.CallUnary(ctx, req)
}

func (c *caseServiceClient) DeleteCase(ctx context.Context, req *connect.Request[api.DeleteCaseRequest]) (*connect.Response[api.DeleteCaseResponse], error) {
	return c.deleteCase.CallUnary(ctx, req)
}

func (c *caseServiceClient) UpdateQualification(ctx context.Context, req *connect.Request[api.UpdateQualificationRequest]) (*connect.Response[api.UpdateQualificationResponse], error) {
	return c.updateQualification.CallUnary(ctx, req)
}

func (c *caseServiceClient) UpdateFacts(ctx context.Context, req *connect.Request[api.UpdateFactsRequest]) (*connect.Response[api.UpdateFactsResponse], error) {
	return c.updateFacts.CallUnary(ctx, req)
}

func (c *caseServiceClient) UpdateClaims(ctx context.Context, req *connect.Request[api.UpdateClaimsRequest]) (*connect.Response[api.UpdateClaimsResponse], error) {
	return c.updateClaims.CallUnary(ctx, req)
}

func (c *caseServiceClient) SetOverride(ctx context.Context, req *connect.Request[api.SetOverrideRequest]) (*connect.Response[api.SetOverrideResponse], error) {
	return c.setOverride.CallUnary(ctx, req)
}

func (c *caseServiceClient) AttachEvidence(ctx context.Context, req *connect.Request[api.AttachEvidenceRequest]) (*connect.Response[api.AttachEvidenceResponse], error) {
	return c.attachEvidence.CallUnary(ctx, req)
}

func (c *caseServiceClient) RemoveEvidence(ctx context.Context, req *connect.Request[api.RemoveEvidenceRequest]) (*connect.Response[api.RemoveEvidenceResponse], error) {
	return c.removeEvidence.CallUnary(ctx, req)
}

func (c *caseServiceClient) GeneratePetition(ctx context.Context, req *connect.Request[api.GeneratePetitionRequest]) (*connect.Response[api.GeneratePetitionResponse], error) {
	return c.generatePetition.CallUnary(ctx, req)
}

func (c *caseServiceClient) ExportBundle(ctx context.Context, req *connect.Request[api.ExportBundleRequest]) (*connect.Response[api.ExportBundleResponse], error) {
	return c.exportBundle.CallUnary(ctx, req)
}

// UnimplementedCaseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCaseServiceHandler struct{}

func (UnimplementedCaseServiceHandler) CreateCase(context.Context, *connect.Request[api.CreateCaseRequest]) (*connect.Response[api.CreateCaseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.CreateCase is not implemented"))
}

func (UnimplementedCaseServiceHandler) GetCase(context.Context, *connect.Request[api.GetCaseRequest]) (*connect.Response[api.GetCaseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.GetCase is not implemented"))
}

func (UnimplementedCaseServiceHandler) ListCases(context.Context, *connect.Request[api.ListCasesRequest]) (*connect.Response[api.ListCasesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.ListCases is not implemented"))
}

func (UnimplementedCaseServiceHandler) DeleteCase(context.Context, *connect.Request[api.DeleteCaseRequest]) (*connect.Response[api.DeleteCaseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.DeleteCase is not implemented"))
}

func (UnimplementedCaseServiceHandler) UpdateQualification(context.Context, *connect.Request[api.UpdateQualificationRequest]) (*connect.Response[api.UpdateQualificationResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.UpdateQualification is not implemented"))
}

func (UnimplementedCaseServiceHandler) UpdateFacts(context.Context, *connect.Request[api.UpdateFactsRequest]) (*connect.Response[api.UpdateFactsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.UpdateFacts is not implemented"))
}

func (UnimplementedCaseServiceHandler) UpdateClaims(context.Context, *connect.Request[api.UpdateClaimsRequest]) (*connect.Response[api.UpdateClaimsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.UpdateClaims is not implemented"))
}

func (UnimplementedCaseServiceHandler) SetOverride(context.Context, *connect.Request[api.SetOverrideRequest]) (*connect.Response[api.SetOverrideResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.SetOverride is not implemented"))
}

func (UnimplementedCaseServiceHandler) AttachEvidence(context.Context, *connect.Request[api.AttachEvidenceRequest]) (*connect.Response[api.AttachEvidenceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.AttachEvidence is not implemented"))
}

func (UnimplementedCaseServiceHandler) RemoveEvidence(context.Context, *connect.Request[api.RemoveEvidenceRequest]) (*connect.Response[api.RemoveEvidenceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.RemoveEvidence is not implemented"))
}

func (UnimplementedCaseServiceHandler) GeneratePetition(context.Context, *connect.Request[api.GeneratePetitionRequest]) (*connect.Response[api.GeneratePetitionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.GeneratePetition is not implemented"))
}

func (UnimplementedCaseServiceHandler) ExportBundle(context.Context, *connect.Request[api.ExportBundleRequest]) (*connect.Response[api.ExportBundleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CaseService.ExportBundle is not implemented"))
}
