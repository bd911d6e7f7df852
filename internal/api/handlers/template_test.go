package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTemplateRouter() *gin.Engine {
	r := gin.New()
	h := NewTemplateHandler()
	r.GET("/templates", h.List)
	r.GET("/templates/:id", h.Get)
	r.GET("/templates/:id/form", h.Form)
	r.POST("/templates/:id/form", h.ApplyChange)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestListTemplates(t *testing.T) {
	r := newTemplateRouter()
	w, body := doJSON(t, r, http.MethodGet, "/templates", nil)

	require.Equal(t, http.StatusOK, w.Code)
	templates, ok := body["templates"].([]interface{})
	require.True(t, ok)
	assert.Len(t, templates, 5)

	first, ok := templates[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "TextReveal", first["id"])

	categories, ok := body["categories"].([]interface{})
	require.True(t, ok)
	assert.Len(t, categories, 5)
}

func TestGetTemplate(t *testing.T) {
	r := newTemplateRouter()
	w, body := doJSON(t, r, http.MethodGet, "/templates/WordSlam", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "WordSlam", body["id"])
	assert.Equal(t, "Word Slam", body["display_name"])
}

func TestGetTemplateNotFound(t *testing.T) {
	r := newTemplateRouter()
	w, _ := doJSON(t, r, http.MethodGet, "/templates/NoSuchComposition", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFormDefaults(t *testing.T) {
	r := newTemplateRouter()
	w, body := doJSON(t, r, http.MethodGet, "/templates/TextReveal/form", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "TextReveal", body["template"])

	fields, ok := body["fields"].([]interface{})
	require.True(t, ok)
	require.Len(t, fields, 7)

	first, ok := fields[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "text", first["name"])
	assert.Equal(t, "MotionCut", first["value"])
}

func TestFormWithParams(t *testing.T) {
	r := newTemplateRouter()
	params := url.QueryEscape(`{"text":"Hallo","fontSize":120}`)
	w, body := doJSON(t, r, http.MethodGet, "/templates/TextReveal/form?params="+params, nil)

	require.Equal(t, http.StatusOK, w.Code)
	fields := body["fields"].([]interface{})
	first := fields[0].(map[string]interface{})
	assert.Equal(t, "Hallo", first["value"])

	// Keys missing from the given params fall back to the defaults.
	second := fields[1].(map[string]interface{})
	require.Equal(t, "fontSize", second["name"])
	assert.Equal(t, float64(120), second["value"])
	third := fields[2].(map[string]interface{})
	require.Equal(t, "textColor", third["name"])
	assert.Equal(t, "#e4e4e7", third["value"])
}

func TestFormBadParamsJSON(t *testing.T) {
	r := newTemplateRouter()
	w, _ := doJSON(t, r, http.MethodGet, "/templates/TextReveal/form?params=%7Bnope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyChangeClampsRange(t *testing.T) {
	r := newTemplateRouter()
	w, body := doJSON(t, r, http.MethodPost, "/templates/TextReveal/form", map[string]interface{}{
		"params": map[string]interface{}{"fontSize": 80},
		"field":  "fontSize",
		"value":  9999,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["applied"])
	params := body["params"].(map[string]interface{})
	assert.Equal(t, float64(200), params["fontSize"])
}

func TestApplyChangeRejectedKeepsParams(t *testing.T) {
	r := newTemplateRouter()
	w, body := doJSON(t, r, http.MethodPost, "/templates/TextReveal/form", map[string]interface{}{
		"params": map[string]interface{}{"animationStyle": "slide"},
		"field":  "animationStyle",
		"value":  "wobble",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["applied"])
	params := body["params"].(map[string]interface{})
	assert.Equal(t, "slide", params["animationStyle"])
}

func TestApplyChangeMissingField(t *testing.T) {
	r := newTemplateRouter()
	w, _ := doJSON(t, r, http.MethodPost, "/templates/TextReveal/form", map[string]interface{}{
		"params": map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyChangeUnknownTemplate(t *testing.T) {
	r := newTemplateRouter()
	w, _ := doJSON(t, r, http.MethodPost, "/templates/Nope/form", map[string]interface{}{
		"params": map[string]interface{}{},
		"field":  "x",
		"value":  1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
