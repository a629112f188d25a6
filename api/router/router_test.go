package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapca-proposal/api/handler"
	"mapca-proposal/api/response"
	"mapca-proposal/logic/analysis"
	"mapca-proposal/logic/contract"
	"mapca-proposal/logic/extract"
	"mapca-proposal/logic/invoke"
	"mapca-proposal/logic/invoke/invoketest"
	"mapca-proposal/logic/view"
	"mapca-proposal/service"
	"mapca-proposal/storage/memory"
	"mapca-proposal/types"
	"mapca-proposal/vars"
)

const extractionReply = `{"companyName":"Padaria Pão Dourado Ltda","cnpj":"12.345.678/0001-99",
"consultantName":"Luiz Portal","consultantEmail":"luizportal@live.com.br",
"diagnosticSummary":"Sem controle de caixa.","companyAddress":"","companyCity":"Goiânia/GO",
"representativeName":"João da Silva","representativeCpf":"123.456.789-01"}`

const analysisReply = `{"mapcaAnalysis":"Quick wins.",
"actionPlan":[{"etapa":"1","titulo":"Discovery","descricao":"d","duracao":"2 semanas"},
{"etapa":"2","titulo":"Controles","descricao":"d","duracao":"3 semanas"}],
"ganttChart":[{"etapa":"1","entregavel":"Relatório","responsavel":"Consultor Líder","prazo":"5 dias","preco":5000},
{"etapa":"2","entregavel":"Fluxo de Caixa","responsavel":"Consultor Líder","prazo":"10 dias","preco":2500}]}`

type stubParser struct{ text string }

func (p stubParser) Text(_ context.Context, r io.Reader, _ string) (string, error) {
	_, _ = io.ReadAll(r)
	return p.text, nil
}

func newEngine(t *testing.T, m *invoketest.Model) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	inv := invoke.New(m, time.Minute)
	an := analysis.New(inv)
	svc, err := service.NewProposalService(extract.New(inv), an, an, memory.NewHandOffStore(16, time.Hour), 16, time.Hour)
	require.NoError(t, err)

	tmpl, err := view.Templates()
	require.NoError(t, err)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	RegisterRoutes(r, handler.NewProposalHandler(svc, stubParser{text: "diagnóstico em PDF"}, 1))
	return r
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func snapshotOf(t *testing.T, env envelope) types.WorkflowSnapshot {
	t.Helper()
	var s types.WorkflowSnapshot
	require.NoError(t, json.Unmarshal(env.Data, &s))
	return s
}

func TestAPI_FullFlow(t *testing.T) {
	m := &invoketest.Model{Replies: []string{extractionReply, analysisReply}}
	r := newEngine(t, m)

	_, env := call(t, r, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, 0, env.Code)
	id := snapshotOf(t, env).SessionID
	require.NotEmpty(t, id)

	_, env = call(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/extract", types.ExtractRequest{Text: "A Padaria Pão Dourado Ltda não controla o caixa."})
	require.Equal(t, 0, env.Code, env.Msg)
	snap := snapshotOf(t, env)
	require.Equal(t, types.StepConfirming, snap.Step)
	require.NotNil(t, snap.Extracted)
	assert.Equal(t, "12.345.678/0001-99", snap.Extracted.CNPJ)

	_, env = call(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/confirm", snap.Extracted)
	require.Equal(t, 0, env.Code, env.Msg)
	snap = snapshotOf(t, env)
	require.Equal(t, types.StepViewing, snap.Step)
	assert.Equal(t, 7500.0, snap.Proposal.Investimento.ValorTotalNumerico)

	_, env = call(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/handoff", nil)
	require.Equal(t, 0, env.Code, env.Msg)
	var ho types.HandOffResponse
	require.NoError(t, json.Unmarshal(env.Data, &ho))

	w, _ := call(t, r, http.MethodGet, ho.ContractURL, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	html := w.Body.String()
	assert.Contains(t, html, "5 semanas (estimado)")
	assert.Contains(t, html, "R$ 7.500,00")
	assert.Empty(t, contract.Unresolved(html))
	assert.Equal(t, 2, m.Calls())
}

func TestAPI_WhitespaceInput(t *testing.T) {
	m := &invoketest.Model{Replies: []string{extractionReply}}
	r := newEngine(t, m)
	_, env := call(t, r, http.MethodPost, "/api/v1/sessions", nil)
	id := snapshotOf(t, env).SessionID

	w, env := call(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/extract", types.ExtractRequest{Text: "   "})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -1, env.Code)
	assert.Equal(t, service.ErrEmptyInput.Error(), env.Msg)
	assert.Zero(t, m.Calls())
}

func TestAPI_ExtractionFailure(t *testing.T) {
	m := &invoketest.Model{Replies: []string{`{"companyName": 42}`}}
	r := newEngine(t, m)
	_, env := call(t, r, http.MethodPost, "/api/v1/sessions", nil)
	id := snapshotOf(t, env).SessionID

	_, env = call(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/extract", types.ExtractRequest{Text: "texto"})
	require.Equal(t, 0, env.Code)
	snap := snapshotOf(t, env)
	assert.Equal(t, types.StepError, snap.Step)
	assert.True(t, strings.HasPrefix(snap.Error, vars.ExtractionFailedPrefix))

	_, env = call(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/retry", nil)
	assert.Equal(t, types.StepInput, snapshotOf(t, env).Step)
}

func TestAPI_UnknownSession(t *testing.T) {
	r := newEngine(t, &invoketest.Model{})
	w, env := call(t, r, http.MethodGet, "/api/v1/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, -1, env.Code)
}

func TestAPI_BusyWhileGenerating(t *testing.T) {
	m := &invoketest.Model{Replies: []string{extractionReply}, Block: make(chan struct{})}
	r := newEngine(t, m)
	_, env := call(t, r, http.MethodPost, "/api/v1/sessions", nil)
	id := snapshotOf(t, env).SessionID

	done := make(chan struct{})
	go func() {
		defer close(done)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/extract", strings.NewReader(`{"text":"texto"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(httptest.NewRecorder(), req)
	}()
	require.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+id, nil))
		return strings.Contains(rec.Body.String(), `"step":"generating"`)
	}, time.Second, 5*time.Millisecond)

	w, env := call(t, r, http.MethodPost, "/api/v1/sessions/"+id+"/reset", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, -1, env.Code)

	close(m.Block)
	<-done
}

func TestAPI_ContractFallback(t *testing.T) {
	r := newEngine(t, &invoketest.Model{})
	w, _ := call(t, r, http.MethodGet, "/api/v1/contracts/unknown", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contract.Fallback, w.Body.String())
}

func TestAPI_Summarize(t *testing.T) {
	r := newEngine(t, &invoketest.Model{Replies: []string{`{"summary":"Caixa sem controle."}`}})
	_, env := call(t, r, http.MethodPost, "/api/v1/summarize", types.SummarizeRequest{Diagnosis: "longo texto"})
	require.Equal(t, 0, env.Code)
	var res types.SummaryResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "Caixa sem controle.", res.Summary)
}

func TestAPI_Upload(t *testing.T) {
	m := &invoketest.Model{Replies: []string{extractionReply}}
	r := newEngine(t, m)
	_, env := call(t, r, http.MethodPost, "/api/v1/sessions", nil)
	id := snapshotOf(t, env).SessionID

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "diagnostico.pdf")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("%PDF-1.4"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+id+"/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, 0, got.Code, got.Msg)
	assert.Contains(t, m.LastPrompt(), "diagnóstico em PDF")
}

func TestWeb_Flow(t *testing.T) {
	m := &invoketest.Model{Replies: []string{extractionReply, analysisReply}}
	r := newEngine(t, m)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/extract"`)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	cookie := cookies[0]
	assert.Equal(t, vars.SessionCookie, cookie.Name)

	post := func(path, form string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}
	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := post("/extract", "text=A+padaria+n%C3%A3o+controla+o+caixa")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, get("/").Body.String(), `value="12.345.678/0001-99"`)

	rec = post("/confirm", "companyName=Padaria+P%C3%A3o+Dourado+Ltda&cnpj=12.345.678%2F0001-99&companyCity=Goi%C3%A2nia%2FGO&diagnosticSummary=Sem+controle")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, get("/").Body.String(), "R$ 7.500,00")

	rec = post("/contract", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, "/contract/"))
	html := get(loc).Body.String()
	assert.Contains(t, html, "Goiânia/GO, ")
	assert.Empty(t, contract.Unresolved(html))

	rec = post("/reset", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, get("/").Body.String(), `action="/extract"`)
}

func TestWeb_EmptyTextRedrawsWithNotice(t *testing.T) {
	m := &invoketest.Model{}
	r := newEngine(t, m)
	req := httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader("text=+++"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), service.ErrEmptyInput.Error())
	assert.Zero(t, m.Calls())
}
