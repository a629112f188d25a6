package types

// ExtractedData is the output of the extraction profile. Every field is a
// string; a field the model could not find is "".
type ExtractedData struct {
	CompanyName        string `json:"companyName" form:"companyName" jsonschema:"description=Razão social da empresa (mínimo de 2 palavras) ou string vazia"`
	CNPJ               string `json:"cnpj" form:"cnpj" jsonschema:"description=CNPJ no formato XX.XXX.XXX/XXXX-XX (14 dígitos) ou string vazia"`
	ConsultantName     string `json:"consultantName" form:"consultantName" jsonschema:"description=Nome do consultor (valor fixo)"`
	ConsultantEmail    string `json:"consultantEmail" form:"consultantEmail" jsonschema:"description=Email do consultor (valor fixo)"`
	DiagnosticSummary  string `json:"diagnosticSummary" form:"diagnosticSummary" jsonschema:"description=Resumo sintetizado do diagnóstico em português do Brasil"`
	CompanyAddress     string `json:"companyAddress" form:"companyAddress" jsonschema:"description=Endereço completo da empresa ou string vazia"`
	CompanyCity        string `json:"companyCity" form:"companyCity" jsonschema:"description=Cidade/UF da empresa, ex: Goiânia/GO, ou string vazia"`
	RepresentativeName string `json:"representativeName" form:"representativeName" jsonschema:"description=Nome completo do representante legal (mínimo de 2 palavras) ou string vazia"`
	RepresentativeCPF  string `json:"representativeCpf" form:"representativeCpf" jsonschema:"description=CPF do representante no formato XXX.XXX.XXX-XX (11 dígitos) ou string vazia"`
}

// ActionPlanItem is one macro phase of the project.
type ActionPlanItem struct {
	Etapa     string `json:"etapa" jsonschema:"description=Número da etapa, ex: 1"`
	Titulo    string `json:"titulo" jsonschema:"description=Título da fase"`
	Descricao string `json:"descricao" jsonschema:"description=Descrição da fase"`
	Duracao   string `json:"duracao" jsonschema:"description=Duração estimada, ex: 2 semanas"`
}

// GanttChartItem is one priced deliverable. Etapa should name an
// ActionPlanItem.Etapa; the model is trusted on that.
type GanttChartItem struct {
	Etapa       string  `json:"etapa" jsonschema:"description=Etapa do plano macro à qual o entregável pertence"`
	Entregavel  string  `json:"entregavel" jsonschema:"description=Nome do entregável"`
	Responsavel string  `json:"responsavel" jsonschema:"description=Responsável pelo entregável"`
	Prazo       string  `json:"prazo" jsonschema:"description=Prazo do entregável, ex: 5 dias"`
	Preco       float64 `json:"preco" jsonschema:"description=Preço em reais, número sem formatação de moeda"`
}

type AnalysisInput struct {
	CompanyName string `json:"companyName"`
	CNPJ        string `json:"cnpj"`
	Diagnostics string `json:"diagnostics"`
}

// AnalysisResult is the output of the analysis profile.
type AnalysisResult struct {
	MapcaAnalysis string           `json:"mapcaAnalysis" jsonschema:"description=Parágrafo estratégico classificando Quick Wins, Projetos Estruturais e Melhorias Incrementais"`
	ActionPlan    []ActionPlanItem `json:"actionPlan" jsonschema:"description=Fases macro do projeto"`
	GanttChart    []GanttChartItem `json:"ganttChart" jsonschema:"description=Cronograma de entregáveis precificados"`
}

type SummaryResult struct {
	Summary string `json:"summary" jsonschema:"description=Resumo conciso do diagnóstico"`
}

// ProposalData is the assembled, denormalized proposal record. It is also the
// payload of the contract hand-off.
type ProposalData struct {
	Cliente         Cliente          `json:"cliente"`
	Proposta        Proposta         `json:"proposta"`
	Diagnostico     string           `json:"diagnostico"`
	MapcaAnalysis   string           `json:"mapcaAnalysis"`
	PlanoDeAcao     []ActionPlanItem `json:"planoDeAcao"`
	GanttChart      []GanttChartItem `json:"ganttChart"`
	EscopoDetalhado []EscopoItem     `json:"escopoDetalhado"`
	Investimento    Investimento     `json:"investimento"`
}

type Cliente struct {
	NomeCompleto      string `json:"nomeCompleto"`
	CNPJ              string `json:"cnpj"`
	Endereco          string `json:"endereco"`
	Cidade            string `json:"cidade"`
	RepresentanteNome string `json:"representanteNome"`
	RepresentanteCPF  string `json:"representanteCpf"`
}

type Proposta struct {
	ConsultorNome    string `json:"consultorNome"`
	ConsultorEmail   string `json:"consultorEmail"`
	DataApresentacao string `json:"dataApresentacao"`
}

type EscopoItem struct {
	Titulo   string `json:"titulo"`
	Detalhes string `json:"detalhes"`
}

type Investimento struct {
	ValorTotalNumerico float64          `json:"valorTotalNumerico"`
	ValorTotalExtenso  string           `json:"valorTotalExtenso"`
	FormaPagamento     string           `json:"formaPagamento"`
	Items              []InvestmentItem `json:"items"`
}

type InvestmentItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
