package proposal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapca-proposal/types"
)

var fixedNow = time.Date(2026, time.October, 5, 14, 30, 0, 0, time.UTC)

func confirmed() types.ExtractedData {
	return types.ExtractedData{
		CompanyName:        "Padaria Pão Dourado Ltda",
		CNPJ:               "12.345.678/0001-99",
		ConsultantName:     "Luiz Portal",
		ConsultantEmail:    "luizportal@live.com.br",
		DiagnosticSummary:  "Sem controle de caixa.",
		CompanyAddress:     "Rua 1, 100, Centro, Goiânia/GO",
		CompanyCity:        "Goiânia/GO",
		RepresentativeName: "João da Silva",
		RepresentativeCPF:  "123.456.789-01",
	}
}

func analysis() types.AnalysisResult {
	return types.AnalysisResult{
		MapcaAnalysis: "Foco em Quick Wins.",
		ActionPlan: []types.ActionPlanItem{
			{Etapa: "1", Titulo: "Discovery", Descricao: "d", Duracao: "2 semanas"},
			{Etapa: "2", Titulo: "Controles", Descricao: "d", Duracao: "3 semanas"},
		},
		GanttChart: []types.GanttChartItem{
			{Etapa: "1", Entregavel: "Relatório", Responsavel: "Consultor Líder", Prazo: "5 dias", Preco: 5000},
			{Etapa: "2", Entregavel: "Fluxo de Caixa", Responsavel: "Especialista Financeiro", Prazo: "10 dias", Preco: 2500},
		},
	}
}

func TestAssemble(t *testing.T) {
	p := Assemble(confirmed(), analysis(), fixedNow)

	assert.Equal(t, 7500.0, p.Investimento.ValorTotalNumerico)
	assert.Equal(t, "A ser preenchido", p.Investimento.ValorTotalExtenso)
	assert.Equal(t, "50% na assinatura do contrato e 50% na entrega final.", p.Investimento.FormaPagamento)
	assert.Equal(t, "05 de outubro de 2026", p.Proposta.DataApresentacao)

	require.Len(t, p.EscopoDetalhado, 2)
	assert.Equal(t, types.EscopoItem{Titulo: "Fluxo de Caixa", Detalhes: "Responsável: Especialista Financeiro | Prazo: 10 dias"}, p.EscopoDetalhado[1])

	require.Len(t, p.Investimento.Items, 2)
	assert.Equal(t, types.InvestmentItem{Name: "Relatório", Value: 5000}, p.Investimento.Items[0])
	assert.Equal(t, types.InvestmentItem{Name: "Fluxo de Caixa", Value: 2500}, p.Investimento.Items[1])

	assert.Equal(t, "Goiânia/GO", p.Cliente.Cidade)
	assert.Equal(t, "Luiz Portal", p.Proposta.ConsultorNome)
	assert.Equal(t, "Sem controle de caixa.", p.Diagnostico)
}

func TestAssemble_TotalMatchesSum(t *testing.T) {
	prices := []float64{3000, 8000.5, 1500.25, 0, 12000}
	var gantt []types.GanttChartItem
	var want float64
	for _, price := range prices {
		gantt = append(gantt, types.GanttChartItem{Entregavel: "x", Preco: price})
		want += price
	}
	p := Assemble(confirmed(), types.AnalysisResult{GanttChart: gantt}, fixedNow)
	assert.Equal(t, want, p.Investimento.ValorTotalNumerico)
}

func TestAssemble_EmptySchedule(t *testing.T) {
	p := Assemble(confirmed(), types.AnalysisResult{MapcaAnalysis: "x"}, fixedNow)
	assert.Zero(t, p.Investimento.ValorTotalNumerico)
	assert.NotNil(t, p.EscopoDetalhado)
	assert.Empty(t, p.EscopoDetalhado)
	assert.Empty(t, p.Investimento.Items)
	assert.NotNil(t, p.GanttChart)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "R$ 5.000,00", FormatBRL(5000))
	assert.Equal(t, "R$ 2.500,00", FormatBRL(2500))
	assert.Equal(t, "7.500,00", FormatDecimal(7500))
	assert.Equal(t, "0,00", FormatDecimal(0))
	assert.Equal(t, "1.234.567,89", FormatDecimal(1234567.891))
	assert.Equal(t, "5 de outubro de 2026", LongDate(fixedNow))
	assert.Equal(t, "05 de outubro de 2026", LongDate2(fixedNow))
	assert.Equal(t, "31 de março de 2027", LongDate(time.Date(2027, time.March, 31, 0, 0, 0, 0, time.UTC)))
}
