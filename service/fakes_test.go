package service

import (
	"context"
	"sync/atomic"

	"mapca-proposal/types"
)

type fakeExtractor struct {
	data  *types.ExtractedData
	err   error
	block chan struct{}
	calls atomic.Int32
}

func (f *fakeExtractor) Extract(ctx context.Context, _ string) (*types.ExtractedData, error) {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.data == nil {
		return nil, nil
	}
	d := *f.data
	return &d, nil
}

type fakeAnalyzer struct {
	res   *types.AnalysisResult
	err   error
	calls atomic.Int32
	last  types.AnalysisInput
}

func (f *fakeAnalyzer) Analyze(_ context.Context, in types.AnalysisInput) (*types.AnalysisResult, error) {
	f.calls.Add(1)
	f.last = in
	return f.res, f.err
}

func (f *fakeAnalyzer) Summarize(_ context.Context, diagnosis string) (*types.SummaryResult, error) {
	return &types.SummaryResult{Summary: "resumo: " + diagnosis}, nil
}

func extracted() *types.ExtractedData {
	return &types.ExtractedData{
		CompanyName:       "Padaria Pão Dourado Ltda",
		CNPJ:              "12.345.678/0001-99",
		ConsultantName:    "Luiz Portal",
		ConsultantEmail:   "luizportal@live.com.br",
		DiagnosticSummary: "Sem controle de caixa.",
		CompanyCity:       "Goiânia/GO",
	}
}

func analyzed() *types.AnalysisResult {
	return &types.AnalysisResult{
		MapcaAnalysis: "Quick wins.",
		ActionPlan: []types.ActionPlanItem{
			{Etapa: "1", Titulo: "Discovery", Descricao: "d", Duracao: "2 semanas"},
			{Etapa: "2", Titulo: "Controles", Descricao: "d", Duracao: "3 semanas"},
		},
		GanttChart: []types.GanttChartItem{
			{Etapa: "1", Entregavel: "Relatório", Responsavel: "Consultor Líder", Prazo: "5 dias", Preco: 5000},
			{Etapa: "2", Entregavel: "Fluxo de Caixa", Responsavel: "Consultor Líder", Prazo: "10 dias", Preco: 2500},
		},
	}
}
