package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mapca-proposal/logic/view"
	"mapca-proposal/logs"
	"mapca-proposal/service"
	"mapca-proposal/types"
	"mapca-proposal/vars"
)

// webSession resolves the cookie session, starting a new one when needed.
func (h *ProposalHandler) webSession(c *gin.Context) *service.Workflow {
	id, _ := c.Cookie(vars.SessionCookie)
	w := h.svc.SessionOrNew(id)
	if sid := w.Snapshot().SessionID; sid != id {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(vars.SessionCookie, sid, 0, "/", "", false, true)
	}
	return w
}

func (h *ProposalHandler) page(c *gin.Context, status int, snap types.WorkflowSnapshot, notice string) {
	p := view.NewPage(snap)
	p.Notice = notice
	p.MaxUpload = h.maxUploadMB
	c.HTML(status, "index.html", p)
}

// settle sends the browser back to / after a transition, or redraws the
// current step with the error.
func (h *ProposalHandler) settle(c *gin.Context, snap types.WorkflowSnapshot, err error) {
	if err != nil {
		status := statusOf(err)
		if status == http.StatusOK {
			status = http.StatusBadRequest
		}
		h.page(c, status, snap, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *ProposalHandler) Index(c *gin.Context) {
	h.page(c, http.StatusOK, h.webSession(c).Snapshot(), "")
}

func (h *ProposalHandler) WebExtract(c *gin.Context) {
	w := h.webSession(c)
	text := c.PostForm("text")
	if fh, err := c.FormFile("file"); err == nil {
		parsed, err := h.readUpload(c, fh)
		if err != nil {
			logs.L().Warnf(">>> [Upload] %s: %v", fh.Filename, err)
			h.page(c, http.StatusBadRequest, w.Snapshot(), err.Error())
			return
		}
		text = parsed
	}
	snap, err := w.SubmitText(c.Request.Context(), text)
	h.settle(c, snap, err)
}

func (h *ProposalHandler) WebConfirm(c *gin.Context) {
	w := h.webSession(c)
	var data types.ExtractedData
	if err := c.ShouldBind(&data); err != nil {
		h.page(c, http.StatusBadRequest, w.Snapshot(), err.Error())
		return
	}
	snap, err := w.Confirm(c.Request.Context(), data)
	h.settle(c, snap, err)
}

func (h *ProposalHandler) WebBack(c *gin.Context) {
	snap, err := h.webSession(c).Back()
	h.settle(c, snap, err)
}

func (h *ProposalHandler) WebRetry(c *gin.Context) {
	snap, err := h.webSession(c).Retry()
	h.settle(c, snap, err)
}

func (h *ProposalHandler) WebReset(c *gin.Context) {
	snap, err := h.webSession(c).Reset()
	h.settle(c, snap, err)
}

// WebContract publishes the hand-off and opens the contract page.
func (h *ProposalHandler) WebContract(c *gin.Context) {
	w := h.webSession(c)
	rec, err := h.svc.PublishHandOff(c.Request.Context(), w.Snapshot().SessionID)
	if err != nil {
		h.settle(c, w.Snapshot(), err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/contract/"+rec.ID)
}
