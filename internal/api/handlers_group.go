package api

import "Quill/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	CategoryHandler *handler.CategoryHandler
	TagHandler      *handler.TagHandler
	PostHandler     *handler.PostHandler
}
