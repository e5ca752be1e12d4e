package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Statutory rates shared by the formulas.
const (
	fgtsRate       = 0.08 // monthly FGTS deposit
	fgtsPenalty    = 0.40 // rescission penalty over the FGTS balance
	reflexRate     = 0.25 // combined reflex onto FGTS, 13th and vacation
	vacationFactor = 4.0 / 3.0

	monthlyHours = 220
)

// Defaults used when a claim carries no parameters.
const (
	defaultWorkingDays    = 20
	defaultDaysWorked     = 10
	defaultOvertimeHours  = 40
	defaultOvertimeExtra  = 50 // percent
	defaultMoralDamages   = 10000
	defaultAccidentAmount = 15000
	fallbackAmount        = 5000
)

type inputs struct {
	salary float64
	months int
	params map[string]any
}

type estimate struct {
	base       float64
	accessory  float64
	formula    string
	confidence Confidence
}

type rule struct {
	name     string
	editable bool
	apply    func(in inputs) estimate
}

type legacyRule struct {
	keywords []string
	rule     rule
}

// exactRules are keyed by catalog identifier. Their values come straight
// from the contract dates, so they cannot be edited.
var exactRules = map[string]rule{
	"saldoSalario":               {name: "saldoSalario", apply: salaryBalance},
	"avisoPrevioIndenizado":      {name: "avisoPrevioIndenizado", apply: indemnifiedNotice},
	"feriasVencidas":             {name: "feriasVencidas", apply: accruedVacation},
	"feriasProporcionais":        {name: "feriasProporcionais", apply: proportionalVacation},
	"decimoTerceiroProporcional": {name: "decimoTerceiroProporcional", apply: proportionalThirteenth},
	"multaFGTS40":                {name: "multaFGTS40", apply: fgtsPenaltyRule},
	"depositosFGTSNaoRealizados": {name: "depositosFGTSNaoRealizados", apply: fgtsDeposits},
}

// legacyRules match free-text labels by case-insensitive substring. Order
// matters: the first rule with a matching keyword wins.
var legacyRules = []legacyRule{
	{[]string{"horas extras", "hora extra"}, rule{name: "horasExtras", editable: true, apply: overtime}},
	{[]string{"fgts"}, rule{name: "fgts", editable: true, apply: fgtsClaim}},
	{[]string{"13", "décimo", "decimo"}, rule{name: "decimoTerceiro", editable: true, apply: thirteenth}},
	{[]string{"férias", "ferias"}, rule{name: "ferias", editable: true, apply: vacation}},
	{[]string{"477", "multa"}, rule{name: "multa477", editable: true, apply: latePaymentFine}},
	{[]string{"assédio", "assedio", "dano moral"}, rule{name: "danoMoral", editable: true, apply: moralDamages}},
	{[]string{"acidente"}, rule{name: "acidenteTrabalho", editable: true, apply: workAccident}},
	{[]string{"equiparação", "equiparacao"}, rule{name: "equiparacaoSalarial", editable: true, apply: salaryParity}},
	{[]string{"noturno"}, rule{name: "adicionalNoturno", editable: true, apply: nightShift}},
	{[]string{"insalubridade"}, rule{name: "insalubridade", editable: true, apply: unhealthy}},
	{[]string{"periculosidade"}, rule{name: "periculosidade", editable: true, apply: hazard}},
	{[]string{"aviso"}, rule{name: "avisoPrevio", editable: true, apply: priorNotice}},
}

var fallbackRule = rule{name: "estimativa", editable: true, apply: fallback}

// dispatch picks the rule for a claim: exact type first, then legacy
// keywords over the claim text, then the generic estimate.
func dispatch(claimType, text string) rule {
	if r, ok := exactRules[claimType]; ok {
		return r
	}
	lower := strings.ToLower(text)
	for _, lr := range legacyRules {
		for _, kw := range lr.keywords {
			if strings.Contains(lower, kw) {
				return lr.rule
			}
		}
	}
	return fallbackRule
}

func salaryConfidence(in inputs) Confidence {
	if in.salary > 0 {
		return ConfidenceHigh
	}
	return ConfidenceLow
}

func salaryAndMonthsConfidence(in inputs, ok Confidence) Confidence {
	if in.salary > 0 && in.months > 0 {
		return ok
	}
	return ConfidenceLow
}

// premiumConfidence is used by the percentage premiums, which are estimates
// even with complete data.
func premiumConfidence(in inputs) Confidence {
	if in.salary > 0 {
		return ConfidenceMedium
	}
	return ConfidenceLow
}

func salaryBalance(in inputs) estimate {
	days := numberParam(in.params, "diasTrabalhados", defaultDaysWorked)
	base := (in.salary / defaultWorkingDays) * days
	return estimate{
		base:       base,
		formula:    fmt.Sprintf("(Salário ÷ %d dias úteis) × %s dias trabalhados", defaultWorkingDays, formatNumber(days)),
		confidence: salaryConfidence(in),
	}
}

func indemnifiedNotice(in inputs) estimate {
	// Art. 487 CLT: 30 days plus 3 per complete year, capped at 60 extra days.
	years := in.months / 12
	extraDays := min(years*3, 60)
	totalDays := 30 + extraDays
	base := (in.salary / 30) * float64(totalDays)
	return estimate{
		base:       base,
		accessory:  base * fgtsRate,
		formula:    fmt.Sprintf("Salário × (30 dias + %d dias adicionais) / 30", extraDays),
		confidence: salaryAndMonthsConfidence(in, ConfidenceHigh),
	}
}

func accruedVacation(in inputs) estimate {
	periods := in.months / 12
	base := in.salary * vacationFactor * float64(periods)

	confidence := ConfidenceMedium
	switch {
	case in.salary <= 0:
		confidence = ConfidenceLow
	case in.months >= 12:
		confidence = ConfidenceHigh
	}
	return estimate{
		base:       base,
		accessory:  base * fgtsRate,
		formula:    fmt.Sprintf("Salário × 4/3 × %d período(s) vencido(s)", periods),
		confidence: confidence,
	}
}

func proportionalVacation(in inputs) estimate {
	months := in.months % 12
	base := (in.salary / 12) * float64(months) * vacationFactor
	return estimate{
		base:       base,
		accessory:  base * fgtsRate,
		formula:    fmt.Sprintf("(Salário ÷ 12) × %d meses × 4/3", months),
		confidence: salaryAndMonthsConfidence(in, ConfidenceHigh),
	}
}

func proportionalThirteenth(in inputs) estimate {
	months := min(in.months, 12)
	base := (in.salary / 12) * float64(months)
	return estimate{
		base:       base,
		accessory:  base * fgtsRate,
		formula:    fmt.Sprintf("(Salário ÷ 12) × %d meses", months),
		confidence: salaryConfidence(in),
	}
}

func fgtsPenaltyRule(in inputs) estimate {
	balance := in.salary * fgtsRate * float64(in.months)
	return estimate{
		base:       balance * fgtsPenalty,
		formula:    fmt.Sprintf("(FGTS total: R$ %.2f) × 40%%", balance),
		confidence: salaryAndMonthsConfidence(in, ConfidenceHigh),
	}
}

func fgtsDeposits(in inputs) estimate {
	return estimate{
		base:       in.salary * fgtsRate * float64(in.months),
		formula:    fmt.Sprintf("Salário × 8%% × %d meses", in.months),
		confidence: salaryAndMonthsConfidence(in, ConfidenceHigh),
	}
}

func overtime(in inputs) estimate {
	hours := numberParam(in.params, "horasPorMes", defaultOvertimeHours)
	extra := 1 + numberParam(in.params, "adicional", defaultOvertimeExtra)/100
	hourly := in.salary / monthlyHours
	base := hourly * hours * extra * float64(in.months)
	return estimate{
		base:       base,
		accessory:  base * reflexRate,
		formula:    fmt.Sprintf("(Salário ÷ 220) × %s horas extras × %s × %d meses", formatNumber(hours), formatNumber(extra), in.months),
		confidence: salaryAndMonthsConfidence(in, ConfidenceMedium),
	}
}

func fgtsClaim(in inputs) estimate {
	base := in.salary * fgtsRate * float64(in.months)
	return estimate{
		base:       base,
		accessory:  base * fgtsPenalty,
		formula:    "Salário × 0,08 × nº meses + multa 40%",
		confidence: salaryAndMonthsConfidence(in, ConfidenceHigh),
	}
}

func thirteenth(in inputs) estimate {
	base := (in.salary / 12) * float64(in.months)
	return estimate{
		base:       base,
		accessory:  base * fgtsRate,
		formula:    "Salário ÷ 12 × meses trabalhados",
		confidence: salaryAndMonthsConfidence(in, ConfidenceHigh),
	}
}

func vacation(in inputs) estimate {
	simple := (in.salary / 12) * float64(in.months)
	base := simple + simple/3
	return estimate{
		base:       base,
		accessory:  base * fgtsRate,
		formula:    "(Salário ÷ 12 × meses) + 1/3 constitucional",
		confidence: salaryAndMonthsConfidence(in, ConfidenceHigh),
	}
}

func latePaymentFine(in inputs) estimate {
	return estimate{
		base:       in.salary,
		formula:    "Um salário nominal",
		confidence: salaryConfidence(in),
	}
}

func moralDamages(in inputs) estimate {
	return estimate{
		base:       numberParam(in.params, "valorIndenizacao", defaultMoralDamages),
		formula:    "Valor estimado (R$ 3.000 - R$ 50.000)",
		confidence: ConfidenceLow,
	}
}

func workAccident(in inputs) estimate {
	return estimate{
		base:       numberParam(in.params, "valorIndenizacao", defaultAccidentAmount),
		formula:    "Indenização variável por tipo de lesão",
		confidence: ConfidenceLow,
	}
}

func salaryParity(in inputs) estimate {
	diff := in.salary * 0.20
	base := diff * float64(in.months)
	return estimate{
		base:       base,
		accessory:  base * reflexRate,
		formula:    "(Diferença salarial de 20%) × nº de meses",
		confidence: premiumConfidence(in),
	}
}

func nightShift(in inputs) estimate {
	base := in.salary * 0.20 * float64(in.months)
	return estimate{
		base:       base,
		accessory:  base * reflexRate,
		formula:    "Salário × 0,20 × meses",
		confidence: premiumConfidence(in),
	}
}

// unhealthyGrades maps the insalubrity grade to its rate (NR-15).
var unhealthyGrades = map[string]float64{
	"minimo": 0.10,
	"medio":  0.20,
	"maximo": 0.40,
}

func unhealthy(in inputs) estimate {
	grade := "medio"
	if g, ok := in.params["grau"].(string); ok {
		if _, known := unhealthyGrades[g]; known {
			grade = g
		}
	}
	rate := unhealthyGrades[grade]
	base := in.salary * rate * float64(in.months)
	return estimate{
		base:       base,
		accessory:  base * reflexRate,
		formula:    fmt.Sprintf("Salário × %s (grau %s) × meses", formatNumber(rate), grade),
		confidence: premiumConfidence(in),
	}
}

func hazard(in inputs) estimate {
	base := in.salary * 0.30 * float64(in.months)
	return estimate{
		base:       base,
		accessory:  base * reflexRate,
		formula:    "Salário × 0,30 × meses",
		confidence: premiumConfidence(in),
	}
}

func priorNotice(in inputs) estimate {
	return estimate{
		base:       in.salary,
		accessory:  in.salary * fgtsRate,
		formula:    "Um salário mensal",
		confidence: salaryConfidence(in),
	}
}

func fallback(inputs) estimate {
	return estimate{
		base:       fallbackAmount,
		formula:    "Valor estimado",
		confidence: ConfidenceLow,
	}
}

// numberParam reads a numeric parameter. The wizard stores form input as
// strings, so "12" and "12,5" are accepted alongside numbers. Missing,
// unparseable, negative or non-finite values yield def.
func numberParam(params map[string]any, name string, def float64) float64 {
	raw, ok := params[name]
	if !ok {
		return def
	}

	var v float64
	switch x := raw.(type) {
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int64:
		v = float64(x)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(x), ",", ".")
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		v = parsed
	default:
		return def
	}

	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return def
	}
	return v
}

// formatNumber renders a formula operand with a decimal comma.
func formatNumber(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', -1, 64), ".", ",")
}
