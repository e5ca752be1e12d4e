package petition

import (
	"strings"

	"github.com/mmynk/peticao/internal/models"
)

// Documents lists what the court expects alongside the petition.
var Documents = struct {
	Required    []string
	Recommended []string
	Optional    []string
}{
	Required: []string{
		"Folhas da CTPS com dados da empresa (se houver registro)",
		"Folha da CTPS com dados pessoais",
		"Folha da CTPS com número da carteira",
		"PIS/PASEP",
		"RG aberto e sem capa plástica",
		"CPF",
		"Comprovante de endereço atual",
		"Foto selfie segurando o RG ao lado do rosto",
	},
	Recommended: []string{
		"Últimos holerites",
		"Aviso prévio",
		"Termo de rescisão do contrato de trabalho (TRCT)",
		"Extrato analítico do FGTS",
		"Extrato previdenciário (INSS)",
	},
	Optional: []string{
		"Testemunhas",
		"Prints de mensagens",
		"E-mails",
		"Contracheques anteriores",
		"Atestados médicos",
		"CAT (Comunicação de Acidente de Trabalho)",
		"Laudos médicos",
		"Fotos",
	},
}

// DocumentChecklist renders Documents as a checklist.
func DocumentChecklist() string {
	var b strings.Builder
	section := func(title string, items []string) {
		b.WriteString(title)
		b.WriteString(":\n")
		for _, it := range items {
			b.WriteString("[ ] ")
			b.WriteString(it)
			b.WriteString("\n")
		}
	}
	section("DOCUMENTOS OBRIGATÓRIOS", Documents.Required)
	b.WriteString("\n")
	section("DOCUMENTOS RECOMENDADOS", Documents.Recommended)
	b.WriteString("\n")
	section("DOCUMENTOS OPCIONAIS", Documents.Optional)
	return b.String()
}

// CheckRequirements lists what keeps the petition from being filed. Claims
// without a value lead to dismissal under art. 852-B, I, § 1º, da CLT. An
// empty result means the petition can be filed.
func CheckRequirements(c *models.Case) []string {
	var errs []string
	f := c.Facts

	if strings.TrimSpace(f.AdmissionDate) == "" {
		errs = append(errs, "Data de início é obrigatória")
	}
	if strings.TrimSpace(f.TerminationDate) == "" {
		errs = append(errs, "Data de saída é obrigatória")
	}
	if !(f.Salary > 0) {
		errs = append(errs, "Último salário deve ser informado e maior que zero")
	}
	if len(strings.TrimSpace(f.Position)) < 2 {
		errs = append(errs, "Função deve ser informada")
	}
	if len([]rune(strings.TrimSpace(f.Description))) < 50 {
		errs = append(errs, "História resumida deve ter pelo menos 50 caracteres")
	}
	if len(c.Claims) == 0 {
		errs = append(errs, "É necessário incluir pelo menos um pedido")
	}

	sum := summaryOf(c)
	for _, it := range sum.Items {
		if !(it.Total > 0) {
			errs = append(errs, "Todos os pedidos devem ter valores especificados (art. 852-B, I, § 1º, da CLT)")
			break
		}
	}
	if !(sum.TotalOverall > 0) {
		errs = append(errs, "Valor total da causa é obrigatório (sob pena de arquivamento)")
	}
	return errs
}
