package calculator

import (
	"math"
	"reflect"
	"testing"
)

const tolerance = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestMonthsWorked(t *testing.T) {
	tests := []struct {
		name        string
		admission   string
		termination string
		want        int
	}{
		{"same month", "2023-01-15", "2023-01-20", 1},
		{"exactly one year", "2022-01-01", "2023-01-01", 13},
		{"across years", "2023-01-10", "2025-01-31", 25},
		{"date-time input", "2023-01-10T08:00:00Z", "2023-03-01T18:00:00Z", 3},
		{"missing admission", "", "2023-01-01", 0},
		{"missing termination", "2023-01-01", "", 0},
		{"invalid date", "2023-13-45", "2024-01-01", 0},
		{"termination before admission", "2024-06-01", "2023-01-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthsWorked(tt.admission, tt.termination); got != tt.want {
				t.Errorf("MonthsWorked(%q, %q) = %d, want %d", tt.admission, tt.termination, got, tt.want)
			}
		})
	}
}

func TestComputeExactTypes(t *testing.T) {
	facts := Facts{GrossSalary: 3000, AdmissionDate: "2023-01-10", TerminationDate: "2025-01-31"} // 25 months

	tests := []struct {
		claimType      string
		wantBase       float64
		wantAccessory  float64
		wantConfidence Confidence
	}{
		{"saldoSalario", 1500, 0, ConfidenceHigh},
		{"avisoPrevioIndenizado", 3600, 288, ConfidenceHigh},
		{"feriasVencidas", 8000, 640, ConfidenceHigh},
		{"feriasProporcionais", 333.333, 26.667, ConfidenceHigh},
		{"decimoTerceiroProporcional", 3000, 240, ConfidenceHigh},
		{"multaFGTS40", 2400, 0, ConfidenceHigh},
		{"depositosFGTSNaoRealizados", 6000, 0, ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.claimType, func(t *testing.T) {
			s := Compute(facts, []Claim{{Type: tt.claimType}}, nil)
			if len(s.Items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(s.Items))
			}
			it := s.Items[0]
			if !almostEqual(it.BaseValue, tt.wantBase) {
				t.Errorf("base = %v, want %v", it.BaseValue, tt.wantBase)
			}
			if !almostEqual(it.AccessoryValue, tt.wantAccessory) {
				t.Errorf("accessory = %v, want %v", it.AccessoryValue, tt.wantAccessory)
			}
			if it.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %s, want %s", it.Confidence, tt.wantConfidence)
			}
			if it.Editable {
				t.Error("statutory items must not be editable")
			}
			if it.Rule != tt.claimType {
				t.Errorf("rule = %q, want %q", it.Rule, tt.claimType)
			}
		})
	}
}

func TestComputeNoticePayScenario(t *testing.T) {
	facts := Facts{GrossSalary: 3000, AdmissionDate: "2023-01-10", TerminationDate: "2025-01-31"}
	s := Compute(facts, []Claim{{Type: "avisoPrevioIndenizado"}}, nil)

	it := s.Items[0]
	if it.ID != "calc_0" {
		t.Errorf("ID = %q, want calc_0", it.ID)
	}
	if !almostEqual(it.BaseValue, 3600) || !almostEqual(it.AccessoryValue, 288) || !almostEqual(it.Total, 3888) {
		t.Errorf("got base=%v accessory=%v total=%v, want 3600/288/3888", it.BaseValue, it.AccessoryValue, it.Total)
	}
	if !almostEqual(s.TotalOverall, 3888) {
		t.Errorf("TotalOverall = %v, want 3888", s.TotalOverall)
	}
}

func TestNoticeExtraDaysCapped(t *testing.T) {
	// 30 years of service: 90 extra days capped to 60.
	facts := Facts{GrossSalary: 3000, AdmissionDate: "1990-01-01", TerminationDate: "2020-01-01"}
	s := Compute(facts, []Claim{{Type: "avisoPrevioIndenizado"}}, nil)
	if !almostEqual(s.Items[0].BaseValue, 9000) {
		t.Errorf("base = %v, want 9000", s.Items[0].BaseValue)
	}
}

func TestComputeLegacyRules(t *testing.T) {
	facts := Facts{GrossSalary: 2200, AdmissionDate: "2024-01-01", TerminationDate: "2024-10-15"} // 10 months

	tests := []struct {
		name          string
		claim         Claim
		wantRule      string
		wantBase      float64
		wantAccessory float64
	}{
		{"overtime by label", Claim{Type: "x", Label: "Horas extras habituais"}, "horasExtras", 6000, 1500},
		{"overtime by catalog label", Claim{Type: "horasExtras"}, "horasExtras", 6000, 1500},
		{"overtime with parameters", Claim{Type: "horasExtras", Parameters: map[string]any{"horasPorMes": "20", "adicional": 100.0}}, "horasExtras", 4000, 1000},
		{"fgts", Claim{Type: "FGTS não depositado"}, "fgts", 1760, 704},
		{"thirteenth", Claim{Type: "decimoTerceiro"}, "decimoTerceiro", 1833.333, 146.667},
		{"vacation", Claim{Type: "Férias atrasadas"}, "ferias", 2444.444, 195.556},
		{"fine", Claim{Type: "multa477"}, "multa477", 2200, 0},
		{"moral damages", Claim{Type: "assedioMoral"}, "danoMoral", 10000, 0},
		{"moral damages parameter", Claim{Type: "assedioMoral", Parameters: map[string]any{"valorIndenizacao": "25000"}}, "danoMoral", 25000, 0},
		{"accident", Claim{Type: "acidenteTrabalho"}, "acidenteTrabalho", 15000, 0},
		{"salary parity", Claim{Type: "equiparacaoSalarial"}, "equiparacaoSalarial", 4400, 1100},
		{"night shift", Claim{Type: "adicionalNoturno"}, "adicionalNoturno", 4400, 1100},
		{"unhealthy default grade", Claim{Type: "insalubridade"}, "insalubridade", 4400, 1100},
		{"unhealthy maximum grade", Claim{Type: "insalubridade", Parameters: map[string]any{"grau": "maximo"}}, "insalubridade", 8800, 2200},
		{"hazard", Claim{Type: "periculosidade"}, "periculosidade", 6600, 1650},
		{"notice", Claim{Type: "Aviso prévio trabalhado"}, "avisoPrevio", 2200, 176},
		{"fallback", Claim{Type: "desvioFuncao"}, "estimativa", 5000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(facts, []Claim{tt.claim}, nil)
			it := s.Items[0]
			if it.Rule != tt.wantRule {
				t.Errorf("rule = %q, want %q", it.Rule, tt.wantRule)
			}
			if !almostEqual(it.BaseValue, tt.wantBase) {
				t.Errorf("base = %v, want %v", it.BaseValue, tt.wantBase)
			}
			if !almostEqual(it.AccessoryValue, tt.wantAccessory) {
				t.Errorf("accessory = %v, want %v", it.AccessoryValue, tt.wantAccessory)
			}
			if !it.Editable {
				t.Error("non-statutory items must be editable")
			}
		})
	}
}

func TestLegacyRuleOrder(t *testing.T) {
	// "horas extras" wins over "fgts" because it is checked first.
	s := Compute(Facts{GrossSalary: 1000}, []Claim{{Type: "Reflexo de horas extras no FGTS"}}, nil)
	if s.Items[0].Rule != "horasExtras" {
		t.Errorf("rule = %q, want horasExtras", s.Items[0].Rule)
	}
}

func TestFallback(t *testing.T) {
	s := Compute(Facts{GrossSalary: 3000, AdmissionDate: "2023-01-01", TerminationDate: "2024-01-01"},
		[]Claim{{Type: "unknownClaimXYZ"}}, nil)
	it := s.Items[0]
	if it.BaseValue != 5000 || it.AccessoryValue != 0 || it.Total != 5000 {
		t.Errorf("got %v/%v/%v, want 5000/0/5000", it.BaseValue, it.AccessoryValue, it.Total)
	}
	if it.Confidence != ConfidenceLow || !it.Editable {
		t.Errorf("confidence=%s editable=%v, want low and editable", it.Confidence, it.Editable)
	}
	if it.Description != "unknownClaimXYZ" {
		t.Errorf("description = %q", it.Description)
	}
}

func TestOverrides(t *testing.T) {
	facts := Facts{GrossSalary: 1000, AdmissionDate: "2024-01-01", TerminationDate: "2024-10-01"}
	claims := []Claim{{Type: "adicionalNoturno"}} // base 2000, accessory 500

	t.Run("replaces base, keeps accessory", func(t *testing.T) {
		base := Compute(facts, claims, nil).Items[0]
		s := Compute(facts, claims, Overrides{"calc_0": 1500})
		it := s.Items[0]
		if it.BaseValue != 1500 || !it.Overridden {
			t.Errorf("base = %v overridden = %v", it.BaseValue, it.Overridden)
		}
		if it.AccessoryValue != base.AccessoryValue {
			t.Errorf("accessory changed: %v != %v", it.AccessoryValue, base.AccessoryValue)
		}
		if it.Total != 1500+base.AccessoryValue {
			t.Errorf("total = %v", it.Total)
		}
	})

	t.Run("override to zero", func(t *testing.T) {
		it := Compute(facts, claims, Overrides{"calc_0": 0}).Items[0]
		if it.BaseValue != 0 || !it.Overridden {
			t.Errorf("base = %v overridden = %v", it.BaseValue, it.Overridden)
		}
	})

	t.Run("non-finite ignored", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			it := Compute(facts, claims, Overrides{"calc_0": v}).Items[0]
			if it.Overridden || !almostEqual(it.BaseValue, 2000) {
				t.Errorf("override %v applied: base=%v", v, it.BaseValue)
			}
		}
	})

	t.Run("unknown id ignored", func(t *testing.T) {
		s := Compute(facts, claims, Overrides{"calc_7": 1})
		if s.Items[0].Overridden {
			t.Error("override for missing item applied")
		}
	})

	t.Run("applies to statutory items", func(t *testing.T) {
		it := Compute(facts, []Claim{{Type: "saldoSalario"}}, Overrides{"calc_0": 42}).Items[0]
		if it.BaseValue != 42 {
			t.Errorf("base = %v, want 42", it.BaseValue)
		}
	})
}

func TestZeroSalaryIsLowConfidence(t *testing.T) {
	facts := Facts{GrossSalary: 0, AdmissionDate: "2020-01-01", TerminationDate: "2024-01-01"}
	salaryDependent := []string{
		"saldoSalario", "avisoPrevioIndenizado", "feriasVencidas", "feriasProporcionais",
		"decimoTerceiroProporcional", "multaFGTS40", "depositosFGTSNaoRealizados",
		"horasExtras", "fgts", "decimoTerceiro", "feriasNaoPagas", "multa477",
		"equiparacaoSalarial", "adicionalNoturno", "insalubridade", "periculosidade",
	}

	claims := make([]Claim, len(salaryDependent))
	for i, c := range salaryDependent {
		claims[i] = Claim{Type: c}
	}
	for _, it := range Compute(facts, claims, nil).Items {
		if it.Confidence != ConfidenceLow {
			t.Errorf("%s: confidence = %s, want low", it.ClaimType, it.Confidence)
		}
	}
}

func TestInvalidSalaryCoerced(t *testing.T) {
	for _, salary := range []float64{-100, math.NaN(), math.Inf(1)} {
		s := Compute(Facts{GrossSalary: salary, AdmissionDate: "2024-01-01", TerminationDate: "2024-12-31"},
			[]Claim{{Type: "depositosFGTSNaoRealizados"}}, nil)
		if s.Items[0].BaseValue != 0 || s.Items[0].Confidence != ConfidenceLow {
			t.Errorf("salary %v: got %+v", salary, s.Items[0])
		}
	}
}

func TestTotalsConsistency(t *testing.T) {
	facts := Facts{GrossSalary: 4321.09, AdmissionDate: "2019-03-15", TerminationDate: "2024-08-02"}
	claims := []Claim{
		{Type: "saldoSalario"}, {Type: "avisoPrevioIndenizado"}, {Type: "horasExtras"},
		{Type: "assedioMoral"}, {Type: "whatever"}, {Type: "periculosidade"},
	}
	s := Compute(facts, claims, Overrides{"calc_2": 777.7})

	var base, acc, total float64
	for i, it := range s.Items {
		if it.ID != ItemID(i) {
			t.Errorf("item %d ID = %q", i, it.ID)
		}
		if math.Abs(it.Total-(it.BaseValue+it.AccessoryValue)) > 1e-9 {
			t.Errorf("%s: total %v != base+accessory", it.ID, it.Total)
		}
		base += it.BaseValue
		acc += it.AccessoryValue
		total += it.Total
	}
	if math.Abs(s.TotalBase-base) > 1e-6 || math.Abs(s.TotalAccessory-acc) > 1e-6 || math.Abs(s.TotalOverall-total) > 1e-6 {
		t.Errorf("summary totals %v/%v/%v do not match item sums %v/%v/%v",
			s.TotalBase, s.TotalAccessory, s.TotalOverall, base, acc, total)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	facts := Facts{GrossSalary: 2500, AdmissionDate: "2021-05-05", TerminationDate: "2024-02-20"}
	claims := []Claim{{Type: "feriasVencidas"}, {Type: "horasExtras"}, {Type: "Algo novo"}}
	ov := Overrides{"calc_1": 1234}

	a := Compute(facts, claims, ov)
	b := Compute(facts, claims, ov)
	if !reflect.DeepEqual(a, b) {
		t.Error("Compute is not deterministic")
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(Facts{GrossSalary: 3000}, nil, Overrides{"calc_0": 10})
	if s.Items == nil || len(s.Items) != 0 {
		t.Errorf("Items = %v, want empty non-nil slice", s.Items)
	}
	if s.TotalBase != 0 || s.TotalAccessory != 0 || s.TotalOverall != 0 {
		t.Errorf("non-zero totals: %+v", s)
	}
}

func TestNumberParam(t *testing.T) {
	params := map[string]any{
		"num":      12.5,
		"int":      3,
		"str":      "7",
		"comma":    "7,5",
		"negative": -1.0,
		"garbage":  "abc",
		"nan":      math.NaN(),
		"bool":     true,
	}
	tests := []struct {
		key  string
		want float64
	}{
		{"num", 12.5},
		{"int", 3},
		{"str", 7},
		{"comma", 7.5},
		{"negative", 99},
		{"garbage", 99},
		{"nan", 99},
		{"bool", 99},
		{"missing", 99},
	}
	for _, tt := range tests {
		if got := numberParam(params, tt.key, 99); got != tt.want {
			t.Errorf("numberParam(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
