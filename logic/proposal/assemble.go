package proposal

import (
	"time"

	"mapca-proposal/types"
	"mapca-proposal/vars"
)

// Assemble combines the confirmed extraction and the analysis into the
// proposal record. It has no error branch: both inputs already passed shape
// validation, and an empty schedule simply totals zero.
func Assemble(data types.ExtractedData, res types.AnalysisResult, now time.Time) types.ProposalData {
	plan := res.ActionPlan
	if plan == nil {
		plan = []types.ActionPlanItem{}
	}
	gantt := res.GanttChart
	if gantt == nil {
		gantt = []types.GanttChartItem{}
	}

	escopo := make([]types.EscopoItem, 0, len(gantt))
	items := make([]types.InvestmentItem, 0, len(gantt))
	for _, item := range gantt {
		escopo = append(escopo, types.EscopoItem{
			Titulo:   item.Entregavel,
			Detalhes: ScopeDetails(item),
		})
		items = append(items, types.InvestmentItem{Name: item.Entregavel, Value: item.Preco})
	}

	return types.ProposalData{
		Cliente: types.Cliente{
			NomeCompleto:      data.CompanyName,
			CNPJ:              data.CNPJ,
			Endereco:          data.CompanyAddress,
			Cidade:            data.CompanyCity,
			RepresentanteNome: data.RepresentativeName,
			RepresentanteCPF:  data.RepresentativeCPF,
		},
		Proposta: types.Proposta{
			ConsultorNome:    data.ConsultantName,
			ConsultorEmail:   data.ConsultantEmail,
			DataApresentacao: LongDate2(now),
		},
		Diagnostico:     data.DiagnosticSummary,
		MapcaAnalysis:   res.MapcaAnalysis,
		PlanoDeAcao:     plan,
		GanttChart:      gantt,
		EscopoDetalhado: escopo,
		Investimento: types.Investimento{
			ValorTotalNumerico: Total(gantt),
			ValorTotalExtenso:  vars.ValorExtensoPlaceholder,
			FormaPagamento:     vars.FormaPagamento,
			Items:              items,
		},
	}
}

// Total is the sum of every deliverable price.
func Total(gantt []types.GanttChartItem) float64 {
	var sum float64
	for _, item := range gantt {
		sum += item.Preco
	}
	return sum
}

// ScopeDetails is the "Responsável: X | Prazo: Y" line shared by the proposal and the contract.
func ScopeDetails(item types.GanttChartItem) string {
	return "Responsável: " + item.Responsavel + " | Prazo: " + item.Prazo
}
