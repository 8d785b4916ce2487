package response

import (
	"Quill/internal/service"
	stdjson "encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusOf(nil))
	assert.Equal(t, http.StatusBadRequest, StatusOf(service.ErrTagNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusOf(service.Invalid(errors.New("bad"))))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(&service.StorageError{Op: "x", Err: errors.New("down")}))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("unknown")))
}

func TestStatusOf_JSONTypeErrors(t *testing.T) {
	var req struct {
		TagID uint64 `json:"tag_id"`
	}

	// gin 的 JSON 绑定使用 encoding/json
	err := stdjson.Unmarshal([]byte(`{"tag_id":"abc"}`), &req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))

	err = json.Unmarshal([]byte(`{"tag_id":"abc"}`), &req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
}

func TestJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSON(c, http.StatusOK, gin.H{"k": "v"})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "success", body["message"])
	assert.Equal(t, map[string]any{"k": "v"}, body["data"])
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestError_HidesStorageDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, &service.StorageError{Op: "create tag", Err: errors.New("dial tcp 10.0.0.1:3306")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, service.ErrStorage.Error(), body["message"])
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestError_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	Error(c, service.ErrNameRequired)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(400), body["code"])
	assert.Contains(t, body["message"], "name")
}
