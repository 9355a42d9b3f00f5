package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ced-it/promptforge/internal/config"
	"github.com/ced-it/promptforge/internal/llm"
	"github.com/ced-it/promptforge/internal/prompt"
)

type stubProvider struct {
	reply string
	err   error
}

func (p *stubProvider) Name() string                   { return "stub" }
func (p *stubProvider) Ping(ctx context.Context) error { return nil }
func (p *stubProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{Content: p.reply}, nil
}

func newTestService(t *testing.T, provider llm.Provider) *Service {
	t.Helper()
	cfg := &config.ServerConfig{Port: "0", StaticDir: filepath.Join(t.TempDir(), "missing")}
	return New(cfg, prompt.NewGenerator(provider, "test-model", 100))
}

func postGenerate(t *testing.T, s *Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestGenerateRejectsBlankKeywords(t *testing.T) {
	s := newTestService(t, nil)

	for _, body := range []string{`{}`, `{"keywords":""}`, `{"keywords":"   "}`} {
		rec := postGenerate(t, s, body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["error"])
	}
}

func TestGenerateTemplateMode(t *testing.T) {
	s := newTestService(t, nil)

	rec := postGenerate(t, s, `{"keywords":"un chat","type":"image","enrichmentTags":["Cyberpunk","Neon"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res prompt.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Prompt, "Cyberpunk, Neon")
	assert.Len(t, res.Tips, 3)
	assert.Len(t, res.Variations, 2)
}

func TestGenerateLiveModeRelaysNormalizedReply(t *testing.T) {
	s := newTestService(t, &stubProvider{reply: `noise {"prompt":"P","tips":["T1"],"variations":[]} noise`})

	rec := postGenerate(t, s, `{"keywords":"un chat"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res prompt.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "P", res.Prompt)
	assert.Equal(t, []string{"T1"}, res.Tips)
	assert.Empty(t, res.Variations)
}

func TestGenerateUpstreamFailureStillReturns200(t *testing.T) {
	s := newTestService(t, &stubProvider{err: errors.New("completion service down")})

	rec := postGenerate(t, s, `{"keywords":"un chat","type":"image"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res prompt.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Prompt)
	require.NotEmpty(t, res.Tips)
	assert.Equal(t, prompt.OfflineTip, res.Tips[len(res.Tips)-1])
}

func TestHealthReportsMode(t *testing.T) {
	tests := []struct {
		name     string
		provider llm.Provider
		want     string
	}{
		{"template mode", nil, "template"},
		{"api mode", &stubProvider{}, "api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t, tt.provider)

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "ok", resp["status"])
			assert.Equal(t, tt.want, resp["mode"])

			_, err := time.Parse(time.RFC3339, resp["timestamp"])
			assert.NoError(t, err, "timestamp must be RFC3339")
		})
	}
}

func TestUnmatchedRoutesServeSPA(t *testing.T) {
	dist := t.TempDir()
	index := "<html>promptforge</html>"
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte(index), 0644))

	cfg := &config.ServerConfig{Port: "0", StaticDir: dist}
	s := New(cfg, prompt.NewGenerator(nil, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/some/client/route", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, index, rec.Body.String())
}

func TestAPIRoutesNotShadowedByStatic(t *testing.T) {
	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html></html>"), 0644))

	cfg := &config.ServerConfig{Port: "0", StaticDir: dist}
	s := New(cfg, prompt.NewGenerator(nil, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode"`)
}
