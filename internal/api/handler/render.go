package handler

import (
	"Quill/internal/api/view"
	"Quill/internal/pkg/response"
	"Quill/internal/pkg/util"
	"Quill/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// bindForm 绑定表单（或 JSON）请求，失败时统一为参数错误
func bindForm(c *gin.Context, req any) error {
	if err := c.ShouldBind(req); err != nil {
		return service.Invalid(util.BindError(err))
	}
	return nil
}

// serve 成功时正常渲染；创建失败时带着最新列表与错误提示重新渲染
func serve(c *gin.Context, r view.Renderer, page view.Page, err error) {
	if err == nil {
		r.Render(c, http.StatusOK, page)
		return
	}
	r.Fail(c, response.StatusOf(err), err, page)
}

// errorMessage 页面上展示的错误提示，不暴露存储细节
func errorMessage(err error) string {
	if errors.Is(err, service.ErrStorage) {
		return service.ErrStorage.Error()
	}
	return err.Error()
}
