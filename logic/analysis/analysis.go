package analysis

import (
	"context"

	"mapca-proposal/logic/invoke"
	"mapca-proposal/types"
	"mapca-proposal/vars"
)

// Analyzer runs the M.A.P.C.A. analysis profile and the diagnosis summary profile.
type Analyzer struct {
	inv *invoke.Invoker
}

func New(inv *invoke.Invoker) *Analyzer {
	return &Analyzer{inv: inv}
}

// Analyze produces the strategic paragraph, macro plan and priced deliverables.
func (a *Analyzer) Analyze(ctx context.Context, in types.AnalysisInput) (*types.AnalysisResult, error) {
	res, err := invoke.Call[types.AnalysisResult](ctx, a.inv, "analysis", vars.ANALYSIS, map[string]any{
		"companyName": in.CompanyName,
		"cnpj":        in.CNPJ,
		"diagnostics": in.Diagnostics,
	})
	if err != nil {
		return nil, err
	}
	if res.ActionPlan == nil {
		res.ActionPlan = []types.ActionPlanItem{}
	}
	if res.GanttChart == nil {
		res.GanttChart = []types.GanttChartItem{}
	}
	return res, nil
}

// Summarize condenses a raw diagnosis.
func (a *Analyzer) Summarize(ctx context.Context, diagnosis string) (*types.SummaryResult, error) {
	return invoke.Call[types.SummaryResult](ctx, a.inv, "summary", vars.SUMMARY, map[string]any{
		"diagnosis": diagnosis,
	})
}
