package petition

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/peticao/internal/models"
)

// Bundle file names, in reading order.
const (
	InstructionsFile = "00_LEIA_PRIMEIRO.txt"
	PetitionFile     = "01_Peticao_Inicial.txt"
	CalculationsFile = "02_Calculos.txt"
	EvidenceFile     = "03_Provas.txt"
)

// Instructions explains how to file the bundle through PJe-JT.
const Instructions = `INSTRUÇÕES PARA PROTOCOLO NO TRT

1. Acesse o site do Tribunal Regional do Trabalho da sua região
2. Realize o cadastro ou faça login no sistema PJe-JT
3. Selecione a opção "Petição Inicial"
4. Preencha os dados conforme solicitado pelo sistema
5. Anexe os seguintes documentos:
   - Petição Inicial (arquivo 01)
   - Planilha de Cálculos (arquivo 02)
   - Provas documentais (conforme lista no arquivo 03)
6. Revise todas as informações antes de protocolar
7. Após o protocolo, guarde o número do processo

IMPORTANTE:
- Você está exercendo o direito de jus postulandi (CLT, art. 791)
- Para recursos ao TST, será necessário contratar advogado
- Acompanhe o processo regularmente pelo site do TRT
- Compareça às audiências designadas

Dúvidas: Procure o atendimento do TRT da sua região.`

// Bundle builds the zip archive filed with the court. The stored petition
// text is used when present, otherwise the petition is rendered.
func Bundle(c *models.Case, now time.Time) ([]byte, error) {
	text := c.PetitionText
	if strings.TrimSpace(text) == "" {
		text = Render(c, now)
	}

	files := []struct {
		name string
		body string
	}{
		{InstructionsFile, Instructions + "\n\n" + DocumentChecklist()},
		{PetitionFile, text},
		{CalculationsFile, CalculationSummary(summaryOf(c))},
		{EvidenceFile, EvidenceList(c.Evidence)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.name,
			Method:   zip.Deflate,
			Modified: now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", f.name, err)
		}
		if _, err := w.Write([]byte(f.body)); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish bundle: %w", err)
	}
	return buf.Bytes(), nil
}

// BundleName is the download name of the bundle, e.g.
// Pacote_TRT_Maria_Silva_2026-10-17.zip.
func BundleName(c *models.Case, now time.Time) string {
	name := orDefault(c.Qualification.ClaimantName, "Reclamante")
	name = strings.Join(strings.Fields(name), "_")
	return fmt.Sprintf("Pacote_TRT_%s_%s.zip", name, now.Format("2006-01-02"))
}
