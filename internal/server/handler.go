package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/sip-digest-auth-poc/internal/auth"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/hss"
	"github.com/oyaguma3/sip-digest-auth-poc/internal/httputil"
)

// AuthHandler は認証判定APIのハンドラー。
type AuthHandler struct {
	processor *auth.Processor
}

// NewAuthHandler は新しいAuthHandlerを生成する。
func NewAuthHandler(p *auth.Processor) *AuthHandler {
	return &AuthHandler{processor: p}
}

// HandleAuthenticate はPOST /api/v1/authenticate のハンドラー。
func (h *AuthHandler) HandleAuthenticate(c *gin.Context) {
	traceID, _ := c.Get(TraceIDKey)
	ctx := hss.WithTraceID(c.Request.Context(), fmt.Sprint(traceID))

	var req authenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid request body",
			"event_id", "HTTP_BAD_REQUEST",
			"trace_id", traceID,
			"error", err.Error(),
		)
		c.JSON(http.StatusBadRequest, httputil.BadRequest("invalid request body"))
		return
	}

	result := h.processor.Process(ctx, req.toSIPRequest())

	c.JSON(http.StatusOK, toResponse(result))
}

// healthResponse はヘルスチェックレスポンスを表す。
type healthResponse struct {
	Status string `json:"status"`
}

// HandleHealth はGET /healthz のハンドラー。
func (h *AuthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
