package view

import (
	"Quill/internal/api/dto"
	"Quill/internal/service"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Execute(t *testing.T) {
	tmpl := Templates()

	var buf bytes.Buffer
	page := &dto.PostsPage{
		Posts: []*dto.PostDTO{{
			ID: 1, Title: "Hi", Body: "<b>World</b>", CategoryName: "Tech",
			Tags: []*dto.TagDTO{{ID: 1, Name: "rust"}},
		}},
		Categories: []*dto.CategoryDTO{{ID: 1, Name: "Tech"}},
		Tags:       []*dto.TagDTO{{ID: 1, Name: "rust"}},
	}
	require.NoError(t, tmpl.ExecuteTemplate(&buf, page.Template(), page))

	out := buf.String()
	assert.Contains(t, out, "<h2>Hi</h2>")
	assert.Contains(t, out, "&lt;b&gt;World&lt;/b&gt;")
	assert.Contains(t, out, `<option value="1">Tech</option>`)
	assert.Contains(t, out, "<li>rust</li>")

	for _, p := range []Page{&dto.CategoriesPage{}, &dto.TagsPage{Error: "boom"}} {
		buf.Reset()
		require.NoError(t, tmpl.ExecuteTemplate(&buf, p.Template(), p))
	}
	assert.Contains(t, buf.String(), "boom")
}

func newContext(accept string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)
	r.SetHTMLTemplate(Templates())
	c.Request = httptest.NewRequest(http.MethodGet, "/tags", nil)
	if accept != "" {
		c.Request.Header.Set("Accept", accept)
	}
	return c, w
}

func TestNegotiator_Render(t *testing.T) {
	page := &dto.TagsPage{Tags: []*dto.TagDTO{{ID: 7, Name: "go"}}}

	c, w := newContext("")
	NewRenderer().Render(c, http.StatusOK, page)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `<li data-id="7">go</li>`)

	c, w = newContext("application/json")
	NewRenderer().Render(c, http.StatusOK, page)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), `"name":"go"`)
}

func TestNegotiator_Fail(t *testing.T) {
	page := &dto.TagsPage{Error: "名称不能为空"}

	c, w := newContext("text/html")
	NewRenderer().Fail(c, http.StatusBadRequest, errors.New("名称不能为空"), page)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "名称不能为空")
	assert.Contains(t, w.Body.String(), "<form")

	c, w = newContext("application/json")
	NewRenderer().Fail(c, http.StatusBadRequest, service.ErrNameRequired, page)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}
