// Package view 把 handler 产出的视图模型渲染为 HTML 或 JSON
package view

import (
	"Quill/internal/pkg/response"
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates 解析内置模板，交给 gin.Engine.SetHTMLTemplate
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

// Page 视图模型，Template 为对应的模板名
type Page interface {
	Template() string
}

// Renderer 渲染引擎，可随意替换
type Renderer interface {
	Render(c *gin.Context, status int, page Page)
	Fail(c *gin.Context, status int, err error, page Page)
}

// Negotiator 按 Accept 头在 HTML 与 JSON 之间选择，默认 HTML
type Negotiator struct{}

func NewRenderer() Renderer {
	return Negotiator{}
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func (Negotiator) Render(c *gin.Context, status int, page Page) {
	if wantsJSON(c) {
		response.JSON(c, status, page)
		return
	}
	c.HTML(status, page.Template(), page)
}

// Fail HTML 下带着错误提示重新渲染当前页，JSON 下返回错误结构
func (n Negotiator) Fail(c *gin.Context, status int, err error, page Page) {
	if wantsJSON(c) || page == nil {
		response.Error(c, err)
		return
	}
	c.HTML(status, page.Template(), page)
}
