package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paintover/inpaint-proxy-api/pkg/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	calls    int
	lastSeen *models.InpaintRequest
	image    string
	err      error
}

func (f *fakeGenerator) GenerateImage(_ context.Context, request *models.InpaintRequest) (string, error) {
	f.calls++
	f.lastSeen = request
	if f.err != nil {
		return "", f.err
	}
	return f.image, nil
}

func newTestRouter(f *fakeGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterHandlers(router, NewProxyHandler(f))
	return router
}

func doProcessImage(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/process-image", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestGetLiveness(t *testing.T) {
	router := newTestRouter(&fakeGenerator{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.LivenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestProcessImageMissingParams(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"prompt":"a red bicycle"}`,
		`{"uploadedImage":"aW1hZ2U="}`,
		`{"uploadedImage":"","prompt":""}`,
	}
	for _, body := range bodies {
		f := &fakeGenerator{image: "data:image/png;base64,AAAA"}
		w := doProcessImage(newTestRouter(f), body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp models.InpaintResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Missing required parameters", resp.Error)
		// the external client must never be invoked
		assert.Equal(t, 0, f.calls)
	}
}

func TestProcessImageSuccess(t *testing.T) {
	f := &fakeGenerator{image: "data:image/png;base64,AAAA"}
	w := doProcessImage(newTestRouter(f), `{"uploadedImage":"aW1hZ2U=","prompt":"a red bicycle"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.InpaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "data:image/png;base64,AAAA", resp.GeneratedImage)
	assert.Equal(t, 1, f.calls)
}

func TestProcessImageAppliesDefaults(t *testing.T) {
	f := &fakeGenerator{image: "data:image/png;base64,AAAA"}
	w := doProcessImage(newTestRouter(f), `{"uploadedImage":"aW1hZ2U=","prompt":"a red bicycle","steps":0}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, f.lastSeen)
	// explicit zero survives, omitted fields take defaults
	assert.Equal(t, 0, *f.lastSeen.Steps)
	assert.Equal(t, 5.0, *f.lastSeen.Cfg)
	assert.Equal(t, "euler_ancestral", f.lastSeen.Sampler)
	assert.Equal(t, "aW1hZ2U=", f.lastSeen.Selection)
}

func TestProcessImageUpstreamError(t *testing.T) {
	f := &fakeGenerator{err: errors.New("unexpected image format")}
	w := doProcessImage(newTestRouter(f), `{"uploadedImage":"aW1hZ2U=","prompt":"a red bicycle"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp models.InpaintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "unexpected image format")
	assert.NotNil(t, resp.Details)
}

func TestProcessImageBadBody(t *testing.T) {
	f := &fakeGenerator{}
	w := doProcessImage(newTestRouter(f), `{"uploadedImage":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, f.calls)
}
