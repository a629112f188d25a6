package router

import (
	"github.com/gin-gonic/gin"

	"mapca-proposal/api/handler"
)

func RegisterRoutes(r *gin.Engine, h *handler.ProposalHandler) {
	r.GET("/", h.Index)
	r.POST("/extract", h.WebExtract)
	r.POST("/confirm", h.WebConfirm)
	r.POST("/back", h.WebBack)
	r.POST("/retry", h.WebRetry)
	r.POST("/reset", h.WebReset)
	r.POST("/contract", h.WebContract)
	r.GET("/contract/:id", h.Contract)

	api := r.Group("/api/v1")
	{
		sessions := api.Group("/sessions")
		{
			sessions.POST("", h.CreateSession)
			sessions.GET("/:id", h.GetSession)
			sessions.POST("/:id/extract", h.Extract)
			sessions.POST("/:id/upload", h.Upload)
			sessions.POST("/:id/confirm", h.Confirm)
			sessions.POST("/:id/back", h.Back)
			sessions.POST("/:id/retry", h.Retry)
			sessions.POST("/:id/reset", h.Reset)
			sessions.POST("/:id/handoff", h.HandOff)
		}
		api.GET("/contracts/:id", h.Contract)
		api.POST("/summarize", h.Summarize)
	}
}
