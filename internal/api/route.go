package api

import (
	"Quill/internal/api/middleware"
	"Quill/internal/api/view"
	"Quill/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1"})
	// 已注册路径上的其它方法返回 405
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(view.Templates())

	// TraceId & Logger & Audit
	r.Use(middleware.TraceMiddleware())
	logger.SetupGin(r)
	r.Use(middleware.AuditMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"code":    200,
			"message": "pong",
			"data":    nil,
		})
	})

	r.GET("/categories", group.CategoryHandler.List)
	r.POST("/categories", group.CategoryHandler.Create)

	r.GET("/tags", group.TagHandler.List)
	r.POST("/tags", group.TagHandler.Create)

	r.GET("/posts", group.PostHandler.List)
	r.POST("/posts", group.PostHandler.Create)

	return r
}
