package contract

import (
	_ "embed"
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"

	"mapca-proposal/logic/proposal"
	"mapca-proposal/logs"
	"mapca-proposal/types"
	"mapca-proposal/vars"
)

//go:embed template.html
var template string

// Fallback is served when no usable proposal backs a contract request.
const Fallback = `<body><h1>Erro ao carregar o contrato.</h1><p>Os dados da proposta não foram encontrados ou estão corrompidos. Por favor, tente gerar a proposta novamente.</p></body>`

var placeholderRe = regexp.MustCompile(`\[[A-Z_]+\]`)

// Template returns the raw contract template.
func Template() string {
	return template
}

// Render fills the contract template with p. now only feeds [LOCAL_DATA].
func Render(p types.ProposalData, now time.Time) string {
	e := html.EscapeString
	r := strings.NewReplacer(
		"[CONTRATANTE_RAZAO_SOCIAL]", e(p.Cliente.NomeCompleto),
		"[CONTRATANTE_CNPJ]", e(p.Cliente.CNPJ),
		"[CONTRATANTE_ENDERECO]", e(p.Cliente.Endereco),
		"[CONTRATANTE_REPRESENTANTE_NOME]", e(p.Cliente.RepresentanteNome),
		"[CONTRATANTE_REPRESENTANTE_CPF]", e(p.Cliente.RepresentanteCPF),
		"[CONTRATADA_CONSULTOR_NOME]", e(p.Proposta.ConsultorNome),
		"[CONTRATADA_CONSULTOR_EMAIL]", e(p.Proposta.ConsultorEmail),
		"[PROJETO_VALOR_TOTAL_NUMERICO]", proposal.FormatDecimal(p.Investimento.ValorTotalNumerico),
		"[PROJETO_VALOR_TOTAL_EXTENSO]", e(p.Investimento.ValorTotalExtenso),
		"[PROJETO_FORMA_PAGAMENTO]", e(p.Investimento.FormaPagamento),
		"[PROJETO_PRAZO_TOTAL]", TotalDuration(p.PlanoDeAcao),
		"[LOCAL_DATA]", e(p.Cliente.Cidade)+", "+proposal.LongDate(now),
		"[PROJETO_ESCOPO_DETALHADO_ITEMS]", ScopeHTML(p.GanttChart),
	)
	out := r.Replace(template)

	if left := Unresolved(out); len(left) > 0 {
		logs.L().Warnf(">>> [Contract] placeholders sem substituição: %v", left)
	}
	return out
}

// TotalDuration adds up the digits of every phase duration, e.g. "2 semanas"
// and "3 semanas" give "5 semanas (estimado)". Units are taken at face value.
func TotalDuration(plan []types.ActionPlanItem) string {
	total := 0
	for _, item := range plan {
		total += durationValue(item.Duracao)
	}
	return strconv.Itoa(total) + " " + vars.DurationUnit
}

func durationValue(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		logs.L().Warnf(">>> [Contract] duração ignorada %q: %v", s, err)
		return 0
	}
	return n
}

// ScopeHTML renders one scope block per deliverable.
func ScopeHTML(gantt []types.GanttChartItem) string {
	var b strings.Builder
	for _, item := range gantt {
		b.WriteString(`<div class="scope-item"><div class="scope-item-title">`)
		b.WriteString(html.EscapeString(item.Entregavel))
		b.WriteString(`</div><div>`)
		b.WriteString(html.EscapeString(proposal.ScopeDetails(item)))
		b.WriteString(`</div></div>`)
	}
	return b.String()
}

// Unresolved lists the bracketed upper-case tokens still present in doc.
func Unresolved(doc string) []string {
	return placeholderRe.FindAllString(doc, -1)
}
