package extract

import (
	"context"
	"strings"
	"unicode"

	"mapca-proposal/logic/invoke"
	"mapca-proposal/logs"
	"mapca-proposal/types"
	"mapca-proposal/vars"
)

// maxContentRunes keeps very long transcripts inside the model's context window.
const maxContentRunes = 30000

// Extractor runs the extraction profile.
type Extractor struct {
	inv *invoke.Invoker
}

func New(inv *invoke.Invoker) *Extractor {
	return &Extractor{inv: inv}
}

// Extract turns free diagnostic text into ExtractedData.
func (e *Extractor) Extract(ctx context.Context, content string) (*types.ExtractedData, error) {
	if r := []rune(content); len(r) > maxContentRunes {
		logs.L().Warnf(">>> [Extract] texto truncado de %d para %d caracteres", len(r), maxContentRunes)
		content = string(r[:maxContentRunes])
	}

	data, err := invoke.Call[types.ExtractedData](ctx, e.inv, "extract", vars.EXTRACT, map[string]any{
		"documentContent": content,
	})
	if err != nil {
		return nil, err
	}
	Normalize(data)
	return data, nil
}

// Normalize re-applies the extraction rules the model was asked to follow:
// fixed consultant, exact-digit CNPJ/CPF, two-word names, "" for anything invalid.
func Normalize(d *types.ExtractedData) {
	d.CompanyName = atLeastTwoWords(d.CompanyName)
	d.RepresentativeName = atLeastTwoWords(d.RepresentativeName)
	d.CompanyAddress = strings.TrimSpace(d.CompanyAddress)
	d.CompanyCity = strings.TrimSpace(d.CompanyCity)
	d.DiagnosticSummary = strings.TrimSpace(d.DiagnosticSummary)

	if cnpj, ok := FormatCNPJ(d.CNPJ); ok {
		d.CNPJ = cnpj
	} else {
		if strings.TrimSpace(d.CNPJ) != "" {
			logs.L().Warnf(">>> [Extract] CNPJ descartado (dígitos != 14): %q", d.CNPJ)
		}
		d.CNPJ = ""
	}
	if cpf, ok := FormatCPF(d.RepresentativeCPF); ok {
		d.RepresentativeCPF = cpf
	} else {
		if strings.TrimSpace(d.RepresentativeCPF) != "" {
			logs.L().Warnf(">>> [Extract] CPF descartado (dígitos != 11): %q", d.RepresentativeCPF)
		}
		d.RepresentativeCPF = ""
	}

	d.ConsultantName = vars.ConsultantName
	d.ConsultantEmail = vars.ConsultantEmail
}

// FormatCNPJ formats a value holding exactly 14 digits as XX.XXX.XXX/XXXX-XX.
func FormatCNPJ(s string) (string, bool) {
	d := digits(s)
	if len(d) != 14 {
		return "", false
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14], true
}

// FormatCPF formats a value holding exactly 11 digits as XXX.XXX.XXX-XX.
func FormatCPF(s string) (string, bool) {
	d := digits(s)
	if len(d) != 11 {
		return "", false
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11], true
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func atLeastTwoWords(s string) string {
	words := strings.FieldsFunc(s, unicode.IsSpace)
	if len(words) < 2 {
		return ""
	}
	return strings.Join(words, " ")
}
