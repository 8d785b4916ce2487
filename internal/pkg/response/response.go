package response

import (
	"Quill/internal/api/dto"
	"Quill/internal/service"
	stdjson "encoding/json"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = http.StatusOK
	BadRequest          = http.StatusBadRequest
	InternalServerError = http.StatusInternalServerError
)

// StatusOf 根据错误类型得到 HTTP 状态码，未知错误视为 500
func StatusOf(err error) int {
	if err == nil {
		return Ok
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return BadRequest
	}

	// gin 默认用 encoding/json 绑定，go_json 构建标签下换成 goccy/go-json
	var stdTypeError *stdjson.UnmarshalTypeError
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &stdTypeError) || errors.As(err, &typeError) {
		return BadRequest
	}

	for kind, code := range service.ErrorMap {
		if errors.Is(err, kind) {
			return code
		}
	}
	return InternalServerError
}

// JSON 以指定状态码返回成功结构
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.Response{
		Code:    status,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, dto.Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	code := StatusOf(err)
	if code >= InternalServerError {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		// 不向客户端暴露底层存储细节
		if errors.Is(err, service.ErrStorage) {
			Fail(c, code, service.ErrStorage.Error())
			return
		}
	}
	Fail(c, code, err.Error())
}
