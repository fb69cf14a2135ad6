package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tiresomefanatic/FindPRO-Backend/logger"
	"github.com/tiresomefanatic/FindPRO-Backend/utils"
	"go.uber.org/zap"
)

// respondError writes {error: message} with the AppError status.
// Causes of internal errors are logged and never sent to the client.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	appErr := utils.AsAppError(err)
	reqLog := logger.From(c.Request.Context(), log)

	if appErr.Status >= http.StatusInternalServerError {
		reqLog.Error(appErr.Message, zap.String("code", appErr.Code), zap.Error(appErr.Err))
	} else {
		reqLog.Debug(appErr.Message, zap.String("code", appErr.Code), zap.Int("status", appErr.Status))
	}

	c.AbortWithStatusJSON(appErr.Status, gin.H{"error": appErr.Message})
}
