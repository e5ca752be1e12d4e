package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/peticao/internal/casefile"
	"github.com/mmynk/peticao/internal/storage"
	"github.com/mmynk/peticao/internal/storage/sqlite"
	"github.com/mmynk/peticao/internal/validation"
	"github.com/mmynk/peticao/pkg/api"
	"github.com/mmynk/peticao/pkg/api/apiconnect"
)

var fixedNow = time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)

// setupTestServer creates a test server with both CaseService and CalculatorService
func setupTestServer(t *testing.T) (apiconnect.CaseServiceClient, apiconnect.CalculatorServiceClient, func()) {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	caseSvc := NewCaseService(store)
	caseSvc.now = func() time.Time { return fixedNow }
	calcSvc := NewCalculatorService("")

	casePath, caseHandler := apiconnect.NewCaseServiceHandler(caseSvc)
	calcPath, calcHandler := apiconnect.NewCalculatorServiceHandler(calcSvc)

	mux := http.NewServeMux()
	mux.Handle(casePath, caseHandler)
	mux.Handle(calcPath, calcHandler)

	server := httptest.NewServer(mux)

	caseClient := apiconnect.NewCaseServiceClient(http.DefaultClient, server.URL)
	calcClient := apiconnect.NewCalculatorServiceClient(http.DefaultClient, server.URL)

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return caseClient, calcClient, cleanup
}

func testQualification() *api.Qualification {
	return &api.Qualification{
		ClaimantName:     "Maria da Silva",
		ClaimantCpf:      "123.456.789-00",
		ClaimantAddress:  "Rua das Flores, 100, São Paulo",
		DefendantName:    "ACME Ltda",
		DefendantCnpj:    "12.345.678/0001-90",
		DefendantAddress: "Av. Paulista, 1000, São Paulo",
		City:             "São Paulo",
	}
}

// testFacts spans 25 months at R$ 3.000,00.
func testFacts() *api.Facts {
	return &api.Facts{
		AdmissionDate:   "2023-01-10",
		TerminationDate: "2025-01-31",
		Position:        "Vendedora",
		Salary:          3000,
		WorkSchedule:    "Segunda a sexta, 8h às 18h",
		Description:     strings.Repeat("Trabalhei sem receber horas extras. ", 3),
		DismissalType:   "sem_justa_causa",
	}
}

func createTestCase(t *testing.T, client apiconnect.CaseServiceClient, claims ...string) *api.Case {
	t.Helper()
	req := &api.CreateCaseRequest{
		Qualification: testQualification(),
		Facts:         testFacts(),
	}
	for _, c := range claims {
		req.Claims = append(req.Claims, api.ClaimSelection{Type: c})
	}
	resp, err := client.CreateCase(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("CreateCase failed: %v", err)
	}
	return resp.Msg.Case
}

func expectCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T", err)
	}
	if connectErr.Code() != code {
		t.Errorf("expected %v, got %v: %v", code, connectErr.Code(), err)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCreateCase(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "avisoPrevioIndenizado")

	if c.ID == "" {
		t.Error("expected non-empty case ID")
	}
	if c.Title != "Maria da Silva x ACME Ltda" {
		t.Errorf("title: expected 'Maria da Silva x ACME Ltda', got '%s'", c.Title)
	}
	if c.Status != "draft" {
		t.Errorf("status: expected draft, got %s", c.Status)
	}
	if c.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
	if len(c.Claims) != 1 || c.Claims[0].Key == "" {
		t.Fatalf("expected one keyed claim, got %+v", c.Claims)
	}
	if c.Calculations == nil || len(c.Calculations.Items) != 1 {
		t.Fatal("expected calculations with one item")
	}
	if !almostEqual(c.Value, 3888) {
		t.Errorf("value: expected 3888, got %v", c.Value)
	}
}

func TestCreateCase_Empty(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.CreateCase(context.Background(), connect.NewRequest(&api.CreateCaseRequest{}))
	if err != nil {
		t.Fatalf("CreateCase failed: %v", err)
	}
	c := resp.Msg.Case
	if !strings.HasPrefix(c.Title, "Caso - ") {
		t.Errorf("title: expected generated 'Caso - ' title, got '%s'", c.Title)
	}
	if c.Value != 0 || len(c.Calculations.Items) != 0 {
		t.Errorf("expected empty calculation, got value=%v items=%d", c.Value, len(c.Calculations.Items))
	}
}

func TestCreateCase_InvalidQualification(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	q := testQualification()
	q.ClaimantCpf = "12345678900"
	_, err := client.CreateCase(context.Background(), connect.NewRequest(&api.CreateCaseRequest{Qualification: q}))
	expectCode(t, err, connect.CodeInvalidArgument)
	if err != nil && !strings.Contains(err.Error(), "CPF inválido") {
		t.Errorf("expected CPF message, got %v", err)
	}
}

func TestGetCase(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	created := createTestCase(t, client, "fgts", "multa477")

	resp, err := client.GetCase(context.Background(), connect.NewRequest(&api.GetCaseRequest{CaseID: created.ID}))
	if err != nil {
		t.Fatalf("GetCase failed: %v", err)
	}
	c := resp.Msg.Case
	if c.ID != created.ID {
		t.Errorf("ID: expected %s, got %s", created.ID, c.ID)
	}
	if len(c.Claims) != 2 {
		t.Fatalf("claims: expected 2, got %d", len(c.Claims))
	}
	for i := range c.Claims {
		if c.Claims[i].Key != created.Claims[i].Key {
			t.Errorf("claim %d key changed: %s -> %s", i, created.Claims[i].Key, c.Claims[i].Key)
		}
	}
	if !almostEqual(c.Value, created.Value) {
		t.Errorf("value: expected %v, got %v", created.Value, c.Value)
	}
}

func TestGetCase_NotFound(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := client.GetCase(context.Background(), connect.NewRequest(&api.GetCaseRequest{CaseID: "non-existent-id"}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestListCases(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	first := createTestCase(t, client, "fgts")
	createTestCase(t, client, "multa477")

	if _, err := client.GeneratePetition(context.Background(), connect.NewRequest(&api.GeneratePetitionRequest{CaseID: first.ID})); err != nil {
		t.Fatalf("GeneratePetition failed: %v", err)
	}

	all, err := client.ListCases(context.Background(), connect.NewRequest(&api.ListCasesRequest{}))
	if err != nil {
		t.Fatalf("ListCases failed: %v", err)
	}
	if len(all.Msg.Cases) != 2 {
		t.Errorf("expected 2 cases, got %d", len(all.Msg.Cases))
	}

	generated, err := client.ListCases(context.Background(), connect.NewRequest(&api.ListCasesRequest{Status: "generated"}))
	if err != nil {
		t.Fatalf("ListCases failed: %v", err)
	}
	if len(generated.Msg.Cases) != 1 || generated.Msg.Cases[0].ID != first.ID {
		t.Errorf("expected only %s, got %+v", first.ID, generated.Msg.Cases)
	}

	_, err = client.ListCases(context.Background(), connect.NewRequest(&api.ListCasesRequest{Status: "archived"}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestDeleteCase(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client)

	if _, err := client.DeleteCase(context.Background(), connect.NewRequest(&api.DeleteCaseRequest{CaseID: c.ID})); err != nil {
		t.Fatalf("DeleteCase failed: %v", err)
	}

	_, err := client.GetCase(context.Background(), connect.NewRequest(&api.GetCaseRequest{CaseID: c.ID}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = client.DeleteCase(context.Background(), connect.NewRequest(&api.DeleteCaseRequest{CaseID: c.ID}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestUpdateQualification(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client)

	q := *testQualification()
	q.DefendantName = "Beta Comércio S.A."
	resp, err := client.UpdateQualification(context.Background(), connect.NewRequest(&api.UpdateQualificationRequest{
		CaseID:        c.ID,
		Qualification: q,
	}))
	if err != nil {
		t.Fatalf("UpdateQualification failed: %v", err)
	}
	if resp.Msg.Case.Title != "Maria da Silva x Beta Comércio S.A." {
		t.Errorf("title: got '%s'", resp.Msg.Case.Title)
	}
}

func TestUpdateFacts_Recomputes(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "avisoPrevioIndenizado")

	facts := *testFacts()
	facts.Salary = 6000
	resp, err := client.UpdateFacts(context.Background(), connect.NewRequest(&api.UpdateFactsRequest{
		CaseID: c.ID,
		Facts:  facts,
	}))
	if err != nil {
		t.Fatalf("UpdateFacts failed: %v", err)
	}
	if !almostEqual(resp.Msg.Case.Value, 2*3888) {
		t.Errorf("value: expected %v, got %v", 2*3888, resp.Msg.Case.Value)
	}
	if !almostEqual(resp.Msg.Case.Calculations.TotalOverall, resp.Msg.Case.Value) {
		t.Error("value does not mirror the calculation total")
	}
}

func TestUpdateFacts_Invalid(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client)

	facts := *testFacts()
	facts.Salary = 0
	_, err := client.UpdateFacts(context.Background(), connect.NewRequest(&api.UpdateFactsRequest{
		CaseID: c.ID,
		Facts:  facts,
	}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestUpdateFacts_NotFound(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := client.UpdateFacts(context.Background(), connect.NewRequest(&api.UpdateFactsRequest{
		CaseID: "non-existent-id",
		Facts:  *testFacts(),
	}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestUpdateClaims_Empty(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "fgts")

	_, err := client.UpdateClaims(context.Background(), connect.NewRequest(&api.UpdateClaimsRequest{CaseID: c.ID}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestSetOverride_FollowsClaim(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "avisoPrevioIndenizado")
	value := 1000.0

	resp, err := client.SetOverride(context.Background(), connect.NewRequest(&api.SetOverrideRequest{
		CaseID: c.ID,
		ItemID: "calc_0",
		Value:  &value,
	}))
	if err != nil {
		t.Fatalf("SetOverride failed: %v", err)
	}
	item := resp.Msg.Case.Calculations.Items[0]
	if !item.Overridden || !almostEqual(item.BaseValue, 1000) || !almostEqual(item.Total, 1288) {
		t.Errorf("got overridden=%v base=%v total=%v, want true/1000/1288", item.Overridden, item.BaseValue, item.Total)
	}

	// Prepend a claim: the override must stay with the notice pay, now calc_1.
	claims := []api.ClaimSelection{{Type: "saldoSalario"}, resp.Msg.Case.Claims[0]}
	upd, err := client.UpdateClaims(context.Background(), connect.NewRequest(&api.UpdateClaimsRequest{
		CaseID: c.ID,
		Claims: claims,
	}))
	if err != nil {
		t.Fatalf("UpdateClaims failed: %v", err)
	}
	items := upd.Msg.Case.Calculations.Items
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Overridden {
		t.Error("override moved onto the new claim")
	}
	if !items[1].Overridden || !almostEqual(items[1].BaseValue, 1000) {
		t.Errorf("override lost: %+v", items[1])
	}
	if v, ok := upd.Msg.Case.Overrides["calc_1"]; !ok || v != 1000 {
		t.Errorf("overrides: expected calc_1=1000, got %v", upd.Msg.Case.Overrides)
	}

	// Clear it.
	cleared, err := client.SetOverride(context.Background(), connect.NewRequest(&api.SetOverrideRequest{
		CaseID: c.ID,
		ItemID: "calc_1",
	}))
	if err != nil {
		t.Fatalf("SetOverride clear failed: %v", err)
	}
	if cleared.Msg.Case.Calculations.Items[1].Overridden {
		t.Error("override not cleared")
	}
	if len(cleared.Msg.Case.Overrides) != 0 {
		t.Errorf("expected no overrides, got %v", cleared.Msg.Case.Overrides)
	}
}

func TestSetOverride_UnknownItem(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "fgts")
	value := 10.0

	_, err := client.SetOverride(context.Background(), connect.NewRequest(&api.SetOverrideRequest{
		CaseID: c.ID,
		ItemID: "calc_9",
		Value:  &value,
	}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestAttachEvidence(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "horasExtras")

	resp, err := client.AttachEvidence(context.Background(), connect.NewRequest(&api.AttachEvidenceRequest{
		CaseID:      c.ID,
		Name:        "cartao_ponto.pdf",
		LinkedClaim: "horasExtras",
		Content:     []byte("%PDF-1.4 cartão de ponto"),
	}))
	if err != nil {
		t.Fatalf("AttachEvidence failed: %v", err)
	}
	ev := resp.Msg.Evidence
	if ev.Category != "PDF" {
		t.Errorf("category: expected PDF, got %s", ev.Category)
	}
	if len(ev.Digest) != 64 {
		t.Errorf("digest: expected 64 hex chars, got %q", ev.Digest)
	}
	if len(resp.Msg.Case.Evidence) != 1 {
		t.Errorf("expected 1 evidence on case, got %d", len(resp.Msg.Case.Evidence))
	}
}

func TestRemoveEvidence(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "horasExtras")
	att, err := client.AttachEvidence(context.Background(), connect.NewRequest(&api.AttachEvidenceRequest{
		CaseID:  c.ID,
		Name:    "holerite.txt",
		Content: []byte("holerite de janeiro"),
	}))
	if err != nil {
		t.Fatalf("AttachEvidence failed: %v", err)
	}

	resp, err := client.RemoveEvidence(context.Background(), connect.NewRequest(&api.RemoveEvidenceRequest{
		CaseID:     c.ID,
		EvidenceID: att.Msg.Evidence.ID,
	}))
	if err != nil {
		t.Fatalf("RemoveEvidence failed: %v", err)
	}
	if len(resp.Msg.Case.Evidence) != 0 {
		t.Errorf("expected no evidence, got %d", len(resp.Msg.Case.Evidence))
	}

	_, err = client.RemoveEvidence(context.Background(), connect.NewRequest(&api.RemoveEvidenceRequest{
		CaseID:     c.ID,
		EvidenceID: att.Msg.Evidence.ID,
	}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestAttachEvidence_Invalid(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "horasExtras")

	tests := []struct {
		name string
		req  *api.AttachEvidenceRequest
	}{
		{"empty content", &api.AttachEvidenceRequest{CaseID: c.ID, Name: "vazio.txt"}},
		{"unknown claim", &api.AttachEvidenceRequest{CaseID: c.ID, Name: "a.txt", LinkedClaim: "fgts", Content: []byte("x")}},
		{"no name", &api.AttachEvidenceRequest{CaseID: c.ID, Content: []byte("x")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.AttachEvidence(context.Background(), connect.NewRequest(tt.req))
			expectCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestGeneratePetition(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "avisoPrevioIndenizado")

	resp, err := client.GeneratePetition(context.Background(), connect.NewRequest(&api.GeneratePetitionRequest{CaseID: c.ID}))
	if err != nil {
		t.Fatalf("GeneratePetition failed: %v", err)
	}
	text := resp.Msg.PetitionText
	for _, want := range []string{"Maria da Silva", "ACME Ltda", "R$ 3.888,00", "17 de outubro de 2026"} {
		if !strings.Contains(text, want) {
			t.Errorf("petition missing %q", want)
		}
	}
	if len(resp.Msg.Requirements) != 0 {
		t.Errorf("expected no pending requirements, got %v", resp.Msg.Requirements)
	}
	if resp.Msg.Case.Status != "generated" {
		t.Errorf("status: expected generated, got %s", resp.Msg.Case.Status)
	}

	// Edited text is stored as is.
	edited, err := client.GeneratePetition(context.Background(), connect.NewRequest(&api.GeneratePetitionRequest{
		CaseID: c.ID,
		Text:   "Texto revisado",
	}))
	if err != nil {
		t.Fatalf("GeneratePetition failed: %v", err)
	}
	if edited.Msg.Case.PetitionText != "Texto revisado" {
		t.Errorf("petition text: got %q", edited.Msg.Case.PetitionText)
	}
}

func TestGeneratePetition_Requirements(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := client.CreateCase(context.Background(), connect.NewRequest(&api.CreateCaseRequest{}))
	if err != nil {
		t.Fatalf("CreateCase failed: %v", err)
	}

	gen, err := client.GeneratePetition(context.Background(), connect.NewRequest(&api.GeneratePetitionRequest{CaseID: resp.Msg.Case.ID}))
	if err != nil {
		t.Fatalf("GeneratePetition failed: %v", err)
	}
	if len(gen.Msg.Requirements) == 0 {
		t.Error("expected pending requirements for an empty case")
	}
	if !strings.Contains(gen.Msg.PetitionText, "[Seu nome completo]") {
		t.Error("expected placeholders in petition")
	}
}

func TestExportBundle(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "fgts")

	resp, err := client.ExportBundle(context.Background(), connect.NewRequest(&api.ExportBundleRequest{CaseID: c.ID}))
	if err != nil {
		t.Fatalf("ExportBundle failed: %v", err)
	}
	if resp.Msg.FileName != "Pacote_TRT_Maria_da_Silva_2026-10-17.zip" {
		t.Errorf("file name: got %s", resp.Msg.FileName)
	}

	zr, err := zip.NewReader(bytes.NewReader(resp.Msg.Content), int64(len(resp.Msg.Content)))
	if err != nil {
		t.Fatalf("invalid zip: %v", err)
	}
	if len(zr.File) != 4 {
		t.Errorf("expected 4 files, got %d", len(zr.File))
	}
}

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"not found", fmt.Errorf("case x: %w", storage.ErrNotFound), connect.CodeNotFound},
		{"stale write", fmt.Errorf("case x is at version 3: %w", storage.ErrConflict), connect.CodeAborted},
		{"validation", &validation.ValidationError{Fields: []validation.FieldError{{Field: "salary", Message: "m"}}}, connect.CodeInvalidArgument},
		{"unknown item", fmt.Errorf("%w: %q", casefile.ErrUnknownItem, "calc_9"), connect.CodeInvalidArgument},
		{"broken rules", errors.New("invalid validation rules: boom"), connect.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := connect.CodeOf(toConnectError("Test", tt.err)); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUpdatesAdvanceVersion(t *testing.T) {
	client, _, cleanup := setupTestServer(t)
	defer cleanup()

	c := createTestCase(t, client, "fgts")
	if c.Version != 1 {
		t.Fatalf("version: expected 1, got %d", c.Version)
	}

	resp, err := client.UpdateClaims(context.Background(), connect.NewRequest(&api.UpdateClaimsRequest{
		CaseID: c.ID,
		Claims: []api.ClaimSelection{{Type: "fgts"}, {Type: "multa477"}},
	}))
	if err != nil {
		t.Fatalf("UpdateClaims failed: %v", err)
	}
	if resp.Msg.Case.Version != 2 {
		t.Errorf("version: expected 2, got %d", resp.Msg.Case.Version)
	}
}
