package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/peticao/pkg/api"
)

// CalculatorServiceName is the fully-qualified name of CalculatorService.
const CalculatorServiceName = "peticao.v1.CalculatorService"

// Procedure paths, used for routing and in interceptors.
const (
	CalculatorServiceCalculateProcedure      = "/peticao.v1.CalculatorService/Calculate"
	CalculatorServiceListClaimTypesProcedure = "/peticao.v1.CalculatorService/ListClaimTypes"
	CalculatorServiceSuggestClaimsProcedure  = "/peticao.v1.CalculatorService/SuggestClaims"
	CalculatorServiceAnalyzeClaimsProcedure  = "/peticao.v1.CalculatorService/AnalyzeClaims"
)

// CalculatorServiceHandler is implemented by the server. It offers stateless calculation and catalog lookups.
type CalculatorServiceHandler interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	ListClaimTypes(context.Context, *connect.Request[api.ListClaimTypesRequest]) (*connect.Response[api.ListClaimTypesResponse], error)
	SuggestClaims(context.Context, *connect.Request[api.SuggestClaimsRequest]) (*connect.Response[api.SuggestClaimsResponse], error)
	AnalyzeClaims(context.Context, *connect.Request[api.AnalyzeClaimsRequest]) (*connect.Response[api.AnalyzeClaimsResponse], error)
}

// CalculatorServiceClient calls a remote CalculatorService.
type CalculatorServiceClient interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	ListClaimTypes(context.Context, *connect.Request[api.ListClaimTypesRequest]) (*connect.Response[api.ListClaimTypesResponse], error)
	SuggestClaims(context.Context, *connect.Request[api.SuggestClaimsRequest]) (*connect.Response[api.SuggestClaimsResponse], error)
	AnalyzeClaims(context.Context, *connect.Request[api.AnalyzeClaimsRequest]) (*connect.Response[api.AnalyzeClaimsResponse], error)
}

// NewCalculatorServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewCalculatorServiceHandler(svc CalculatorServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(CalculatorServiceCalculateProcedure, connect.NewUnaryHandler(CalculatorServiceCalculateProcedure, svc.Calculate, opts...))
	mux.Handle(CalculatorServiceListClaimTypesProcedure, connect.NewUnaryHandler(CalculatorServiceListClaimTypesProcedure, svc.ListClaimTypes, opts...))
	mux.Handle(CalculatorServiceSuggestClaimsProcedure, connect.NewUnaryHandler(CalculatorServiceSuggestClaimsProcedure, svc.SuggestClaims, opts...))
	mux.Handle(CalculatorServiceAnalyzeClaimsProcedure, connect.NewUnaryHandler(CalculatorServiceAnalyzeClaimsProcedure, svc.AnalyzeClaims, opts...))
	return "/" + CalculatorServiceName + "/", mux
}

type calculatorServiceClient struct {
	calculate      *connect.Client[api.CalculateRequest, api.CalculateResponse]
	listClaimTypes *connect.Client[api.ListClaimTypesRequest, api.ListClaimTypesResponse]
	suggestClaims  *connect.Client[api.SuggestClaimsRequest, api.SuggestClaimsResponse]
	analyzeClaims  *connect.Client[api.AnalyzeClaimsRequest, api.AnalyzeClaimsResponse]
}

// NewCalculatorServiceClient returns a client for the CalculatorService served at baseURL.
func NewCalculatorServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CalculatorServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &calculatorServiceClient{
		calculate:      connect.NewClient[api.CalculateRequest, api.CalculateResponse](httpClient, baseURL+CalculatorServiceCalculateProcedure, opts...),
		listClaimTypes: connect.NewClient[api.ListClaimTypesRequest, api.ListClaimTypesResponse](httpClient, baseURL+CalculatorServiceListClaimTypesProcedure, opts...),
		suggestClaims:  connect.NewClient[api.SuggestClaimsRequest, api.SuggestClaimsResponse](httpClient, baseURL+CalculatorServiceSuggestClaimsProcedure, opts...),
		analyzeClaims:  connect.NewClient[api.AnalyzeClaimsRequest, api.AnalyzeClaimsResponse](httpClient, baseURL+CalculatorServiceAnalyzeClaimsProcedure, opts...),
	}
}

func (c *calculatorServiceClient) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *calculatorServiceClient) ListClaimTypes(ctx context.Context, req *connect.Request[api.ListClaimTypesRequest]) (*connect.Response[api.ListClaimTypesResponse], error) {
	return c.listClaimTypes.CallUnary(ctx, req)
}

func (c *calculatorServiceClient) SuggestClaims(ctx context.Context, req *connect.Request[api.SuggestClaimsRequest]) (*connect.Response[api.SuggestClaimsResponse], error) {
	return c.suggestClaims.CallUnary(ctx, req)
}

func (c *calculatorServiceClient) AnalyzeClaims(ctx context.Context, req *connect.Request[api.AnalyzeClaimsRequest]) (*connect.Response[api.AnalyzeClaimsResponse], error) {
	return c.analyzeClaims.CallUnary(ctx, req)
}

// UnimplementedCalculatorServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCalculatorServiceHandler struct{}

func (UnimplementedCalculatorServiceHandler) Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CalculatorService.Calculate is not implemented"))
}

func (UnimplementedCalculatorServiceHandler) ListClaimTypes(context.Context, *connect.Request[api.ListClaimTypesRequest]) (*connect.Response[api.ListClaimTypesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CalculatorService.ListClaimTypes is not implemented"))
}

func (UnimplementedCalculatorServiceHandler) SuggestClaims(context.Context, *connect.Request[api.SuggestClaimsRequest]) (*connect.Response[api.SuggestClaimsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CalculatorService.SuggestClaims is not implemented"))
}

func (UnimplementedCalculatorServiceHandler) AnalyzeClaims(context.Context, *connect.Request[api.AnalyzeClaimsRequest]) (*connect.Response[api.AnalyzeClaimsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("peticao.v1.CalculatorService.AnalyzeClaims is not implemented"))
}
