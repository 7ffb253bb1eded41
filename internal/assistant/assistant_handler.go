package assistant

import (
	"net/http"

	"hr-assistant/internal/shared/apperror"
	"hr-assistant/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("assistant.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assistant.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http chat validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	h.logger.Debug("http chat", zap.String("session_id", sessionID))

	reply, err := h.service.HandleUtterance(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("chat request failed",
			zap.String("session_id", sessionID),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, ChatResponse{
		SessionID: sessionID,
		Reply:     reply,
	})
}
