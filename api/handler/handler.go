package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"mapca-proposal/api/response"
	"mapca-proposal/logs"
	"mapca-proposal/service"
	"mapca-proposal/types"
)

// DocumentParser turns an uploaded file into diagnostic text.
type DocumentParser interface {
	Text(ctx context.Context, r io.Reader, name string) (string, error)
}

type ProposalHandler struct {
	svc         *service.ProposalService
	parser      DocumentParser
	maxUploadMB int
}

func NewProposalHandler(svc *service.ProposalService, parser DocumentParser, maxUploadMB int) *ProposalHandler {
	return &ProposalHandler{
		svc:         svc,
		parser:      parser,
		maxUploadMB: maxUploadMB,
	}
}

// statusOf maps workflow errors onto HTTP statuses. Everything else stays 200
// with code -1.
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	}
	return http.StatusOK
}

var errNoFile = errors.New("nenhum arquivo recebido, verifique se o campo se chama 'file'")

// readUpload extracts the text of the "file" form field.
func (h *ProposalHandler) readUpload(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	if h.maxUploadMB > 0 && fh.Size > int64(h.maxUploadMB)<<20 {
		return "", errors.New("arquivo maior que o limite permitido")
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return "", errors.New("apenas arquivos PDF são aceitos")
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	logs.L().Debugf(">>> [Upload] %s (%d bytes)", fh.Filename, fh.Size)
	return h.parser.Text(c.Request.Context(), f, fh.Filename)
}

// ---------- JSON API ----------

func (h *ProposalHandler) session(c *gin.Context) (*service.Workflow, bool) {
	w, err := h.svc.Session(c.Param("id"))
	if err != nil {
		response.FailWithStatus(c, statusOf(err), err.Error(), nil)
		return nil, false
	}
	return w, true
}

func reply(c *gin.Context, snap types.WorkflowSnapshot, err error) {
	if err != nil {
		response.FailWithStatus(c, statusOf(err), err.Error(), snap)
		return
	}
	response.Success(c, snap)
}

func (h *ProposalHandler) CreateSession(c *gin.Context) {
	response.Success(c, h.svc.NewSession().Snapshot())
}

func (h *ProposalHandler) GetSession(c *gin.Context) {
	if w, ok := h.session(c); ok {
		response.Success(c, w.Snapshot())
	}
}

func (h *ProposalHandler) Extract(c *gin.Context) {
	var req types.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "parâmetro inválido: text é obrigatório")
		return
	}
	w, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := w.SubmitText(c.Request.Context(), req.Text)
	reply(c, snap, err)
}

func (h *ProposalHandler) Upload(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, errNoFile.Error())
		return
	}
	text, err := h.readUpload(c, fh)
	if err != nil {
		logs.L().Warnf(">>> [Upload] %s: %v", fh.Filename, err)
		response.Fail(c, err.Error())
		return
	}
	snap, err := w.SubmitText(c.Request.Context(), text)
	reply(c, snap, err)
}

func (h *ProposalHandler) Confirm(c *gin.Context) {
	var data types.ExtractedData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.Fail(c, "parâmetro inválido: "+err.Error())
		return
	}
	w, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := w.Confirm(c.Request.Context(), data)
	reply(c, snap, err)
}

func (h *ProposalHandler) Back(c *gin.Context) {
	if w, ok := h.session(c); ok {
		snap, err := w.Back()
		reply(c, snap, err)
	}
}

func (h *ProposalHandler) Retry(c *gin.Context) {
	if w, ok := h.session(c); ok {
		snap, err := w.Retry()
		reply(c, snap, err)
	}
}

func (h *ProposalHandler) Reset(c *gin.Context) {
	if w, ok := h.session(c); ok {
		snap, err := w.Reset()
		reply(c, snap, err)
	}
}

func (h *ProposalHandler) HandOff(c *gin.Context) {
	rec, err := h.svc.PublishHandOff(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FailWithStatus(c, statusOf(err), err.Error(), nil)
		return
	}
	response.Success(c, types.HandOffResponse{
		HandOffID:   rec.ID,
		ContractURL: "/api/v1/contracts/" + rec.ID,
		ExpiresAt:   rec.ExpiresAt,
	})
}

// Contract always answers 200 with a document; a bad id gets the fallback page.
func (h *ProposalHandler) Contract(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.svc.ContractHTML(c.Request.Context(), c.Param("id"))))
}

func (h *ProposalHandler) Summarize(c *gin.Context) {
	var req types.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "parâmetro inválido: diagnosis é obrigatório")
		return
	}
	res, err := h.svc.Summarize(c.Request.Context(), req.Diagnosis)
	if err != nil {
		response.Fail(c, err.Error())
		return
	}
	response.Success(c, res)
}
