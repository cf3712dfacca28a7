package handlers

import (
	"errors"
	"net/http"

	"advisory_faq/logger"
	"advisory_faq/models"
	"advisory_faq/ranking"
	"advisory_faq/services"
	"advisory_faq/utils"
)

// errorCode 将服务层错误映射为响应码
func errorCode(err error) int {
	switch {
	case errors.Is(err, ranking.ErrInvalidArgument):
		return models.CodeInvalidParams
	case errors.Is(err, services.ErrPostNotFound):
		return models.CodePostNotFound
	default:
		return models.CodeServerError
	}
}

// handleServiceError 处理服务层错误的通用函数
func handleServiceError(w http.ResponseWriter, err error) {
	code := errorCode(err)
	if code == models.CodeServerError {
		logger.Error("Unhandled service error", "error", err)
	}
	utils.WriteCustomErrorResponse(w, code, err.Error(), map[string]interface{}{})
}
