package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	"advisory_faq/models"
)

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, "application/json", status, data)
}

// WriteJSONLD 输出 JSON-LD 结构化数据
func WriteJSONLD(w http.ResponseWriter, data interface{}) {
	writeJSON(w, "application/ld+json", http.StatusOK, data)
}

func writeJSON(w http.ResponseWriter, contentType string, status int, data interface{}) {
	w.Header().Set("Content-Type", contentType+"; charset=utf-8")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 使用4个空格缩进
	encoder.Encode(data)
}

// WriteSuccessResponse 写入成功响应
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, http.StatusOK, models.NewSuccessResponse(data))
}

// WriteErrorResponse 写入错误响应
func WriteErrorResponse(w http.ResponseWriter, code int, data interface{}) {
	WriteFormattedJSON(w, HTTPStatus(code), models.NewErrorResponse(code, data))
}

// WriteCustomErrorResponse 写入自定义错误消息的响应
func WriteCustomErrorResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	WriteFormattedJSON(w, HTTPStatus(code), models.NewCustomErrorResponse(code, message, data))
}

// HTTPStatus 响应码对应的HTTP状态码
func HTTPStatus(code int) int {
	switch code {
	case models.CodeSuccess:
		return http.StatusOK
	case models.CodeInvalidParams, models.CodeMissingParams:
		return http.StatusBadRequest
	case models.CodePostNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ValidateSlug 验证slug参数
func ValidateSlug(w http.ResponseWriter, slug string) bool {
	if slug == "" {
		WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": "slug",
		})
		return false
	}
	return true
}

// ParseLimit 解析limit查询参数：缺省时使用 def，超过 max 时截断为 max
// 负数原样返回，由排序器拒绝；非整数返回 false 并写入错误响应
func ParseLimit(w http.ResponseWriter, raw string, def, max int) (int, bool) {
	if raw == "" {
		return Min(def, max), true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		WriteCustomErrorResponse(w, models.CodeInvalidParams, "limit must be an integer", map[string]interface{}{
			"param": "limit",
			"value": raw,
		})
		return 0, false
	}
	return Min(limit, max), true
}
