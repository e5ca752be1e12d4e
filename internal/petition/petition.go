// Package petition renders a case into the documents filed with the labor
// court: the initial petition, the calculation summary, the evidence list
// and the filing instructions.
package petition

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/peticao/internal/calculator"
	"github.com/mmynk/peticao/internal/catalog"
	"github.com/mmynk/peticao/internal/models"
)

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// ClaimTitle is the display title of a selected claim.
func ClaimTitle(c models.ClaimSelection) string {
	if c.Label != "" {
		return c.Label
	}
	if meta, ok := catalog.Resolve(c.Type); ok {
		return meta.Title
	}
	return c.Type
}

func dismissalLabel(value string) string {
	for _, d := range catalog.DismissalTypes() {
		if d.Value == value {
			return d.Label
		}
	}
	return orDefault(value, "dispensa sem justa causa")
}

func narrative(f models.Facts) string {
	if strings.TrimSpace(f.Description) != "" {
		return strings.TrimSpace(f.Description)
	}

	labels := make(map[string]string)
	for _, ev := range catalog.EventTypes() {
		labels[ev.Value] = ev.Description
	}
	var parts []string
	for _, ev := range f.Events {
		if d, ok := labels[ev]; ok {
			parts = append(parts, d)
		}
	}
	if len(parts) == 0 {
		return "[Descreva os fatos]"
	}
	return strings.Join(parts, ". ")
}

func summaryOf(c *models.Case) calculator.Summary {
	if c.Calculations != nil {
		return *c.Calculations
	}
	return calculator.Sum(nil)
}

// Render produces the petition text for c, dated now. Absent fields are
// rendered as bracketed placeholders for the claimant to fill in.
func Render(c *models.Case, now time.Time) string {
	q := c.Qualification
	f := c.Facts
	sum := summaryOf(c)

	var b strings.Builder
	w := func(format string, args ...any) { fmt.Fprintf(&b, format, args...) }

	w("%s:\n", orDefault(q.ClaimantName, "[Seu nome completo]"))
	w("CPF nº %s, residente e domiciliado(a) %s, vem, respeitosamente, à presença de Vossa Excelência propor a presente:\n\n",
		orDefault(q.ClaimantCPF, "[xxx]"), address(q.ClaimantAddress))

	w("Reclamação Trabalhista\n")
	w("Com fundamento no art. 840 da CLT e art. 319 do CPC, em face de:\n\n")
	w("%s\n", orDefault(q.DefendantName, "[Razão social da Empresa]"))
	w("Inscrita no CNPJ sob o nº %s, com sede %s, endereço para notificações, pelos fatos e fundamentos a seguir expostos:\n\n",
		orDefault(q.DefendantCNPJ, "[xxxxx]"), address(q.DefendantAddress))

	w("1: DA OPÇÃO PELO PROCESSO DIGITAL\n\n")
	if q.DigitalProcess {
		w("O(A) Reclamante informa que possui meios para participar de audiência virtual e prefere que o processo tramite em juízo 100%% digital, caso possível.\n\n")
	} else {
		w("O(A) Reclamante não optou pelo processo 100%% digital.\n\n")
	}

	w("2: DA RELAÇÃO DE TRABALHO\n\n")
	w("Data de admissão: %s\n", ShortDate(f.AdmissionDate))
	w("Data de saída: %s\n", ShortDate(f.TerminationDate))
	w("Motivo do desligamento: %s\n", dismissalLabel(f.DismissalType))
	w("Função exercida: %s\n", orDefault(f.Position, "[xxxxx]"))
	w("Último salário: %s\n", FormatBRL(f.Salary))
	if f.WorkSchedule != "" {
		w("Jornada de trabalho: %s\n", f.WorkSchedule)
	}
	w("\n")

	w("3: DOS FATOS\n\n%s\n\n", narrative(f))

	w("4: DOS PEDIDOS\n\n")
	w("Com base nos direitos trabalhistas e na legislação vigente, venho requerer:\n\n")
	for i, cl := range c.Claims {
		line := fmt.Sprintf("%d. %s", i+1, ClaimTitle(cl))
		if i < len(sum.Items) && sum.Items[i].Total > 0 {
			line += ": " + FormatBRL(sum.Items[i].Total)
		}
		w("%s\n", line)
	}
	w("\n")

	w("5: TOTAL DA CAUSA\n\n")
	for _, it := range sum.Items {
		w("%s: %s\n", it.Description, FormatBRL(it.Total))
	}
	w("\nTotal geral: %s\n\n", FormatBRL(sum.TotalOverall))

	w("Termos em que, pede deferimento\n\n")
	w("%s, %s\n\n", orDefault(q.City, "[Local]"), LongDate(now))
	w("_____________________________________\n")
	w("Assinatura do Reclamante\n")
	w("%s", orDefault(q.ClaimantName, "[Nome completo]"))

	return b.String()
}

func address(a string) string {
	if strings.TrimSpace(a) == "" {
		return "[endereço completo com CEP]"
	}
	return "à " + a
}

// CalculationSummary renders the calculation sheet.
func CalculationSummary(sum calculator.Summary) string {
	var b strings.Builder
	b.WriteString("RESUMO DOS CÁLCULOS\n\n")
	for _, it := range sum.Items {
		fmt.Fprintf(&b, "%s: %s\n", it.Description, FormatBRL(it.Total))
		fmt.Fprintf(&b, "  Principal: %s | Reflexos: %s\n", FormatBRL(it.BaseValue), FormatBRL(it.AccessoryValue))
		fmt.Fprintf(&b, "  Fórmula: %s\n", it.Formula)
		if it.Overridden {
			b.WriteString("  Valor ajustado manualmente\n")
		}
	}
	fmt.Fprintf(&b, "\nTOTAL PRINCIPAL: %s\n", FormatBRL(sum.TotalBase))
	fmt.Fprintf(&b, "TOTAL REFLEXOS: %s\n", FormatBRL(sum.TotalAccessory))
	fmt.Fprintf(&b, "VALOR TOTAL: %s", FormatBRL(sum.TotalOverall))
	return b.String()
}

// EvidenceList renders the numbered list of attached proofs.
func EvidenceList(refs []models.EvidenceRef) string {
	var b strings.Builder
	b.WriteString("LISTA DE PROVAS\n\n")
	if len(refs) == 0 {
		b.WriteString("Nenhuma prova anexada.\n")
		return b.String()
	}
	for i, e := range refs {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, e.Name, e.Category)
		if e.Description != "" {
			fmt.Fprintf(&b, "   %s\n", e.Description)
		}
	}
	return b.String()
}
