package dto

// 列表页视图模型，交给 view.Renderer 渲染；Error 为创建失败时的提示

type CategoriesPage struct {
	Categories []*CategoryDTO `json:"categories"`
	Error      string         `json:"error,omitempty"`
}

func (CategoriesPage) Template() string { return "categories.html" }

type TagsPage struct {
	Tags  []*TagDTO `json:"tags"`
	Error string    `json:"error,omitempty"`
}

func (TagsPage) Template() string { return "tags.html" }

type PostsPage struct {
	Posts      []*PostDTO     `json:"posts"`
	Tags       []*TagDTO      `json:"tags"`
	Categories []*CategoryDTO `json:"categories"`
	Error      string         `json:"error,omitempty"`
}

func (PostsPage) Template() string { return "posts.html" }
