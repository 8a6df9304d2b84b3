package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/frokost/lunchbot/internal/config"
	collyfetcher "github.com/frokost/lunchbot/internal/fetcher/colly"
	"github.com/frokost/lunchbot/internal/lunch"
)

type stubFetcher struct {
	body  []byte
	err   error
	calls int
}

func (f *stubFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func fixtureBytes(t *testing.T) []byte {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("..", "lunch", "testdata", "aastvej.html"))
	require.NoError(t, err)
	return body
}

func newTestServer(fetcher lunch.Fetcher) *Server {
	svc := lunch.NewService(fetcher, "http://menu.local", zap.NewNop())
	return NewServer(svc, config.Config{}, zap.NewNop())
}

func TestGetLunch_Succeeds(t *testing.T) {
	t.Parallel()

	server := newTestServer(&stubFetcher{body: fixtureBytes(t)})
	req := httptest.NewRequest(http.MethodGet, "/api/aastvej/lunch", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Text         string `json:"text"`
		ResponseType string `json:"response_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "in_channel", payload.ResponseType)
	require.Equal(t,
		"##### Varm ret\n  Braiseret svinekæber med rodfrugter\n"+
			"##### Vegetar\n  Gnocchi med ratatouille.\n"+
			"##### Salat\n  Romaine salat med bagte blommer, hvedekerner, løg og salatost.",
		payload.Text,
	)
}

func TestGetLunch_CaseInsensitiveBuilding(t *testing.T) {
	t.Parallel()

	server := newTestServer(&stubFetcher{body: fixtureBytes(t)})
	req := httptest.NewRequest(http.MethodGet, "/api/AASTVEJ/lunch", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetLunch_UnknownBuilding(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{body: fixtureBytes(t)}
	server := newTestServer(fetcher)
	req := httptest.NewRequest(http.MethodGet, "/api/atlantis/lunch", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Zero(t, fetcher.calls, "unknown building must be rejected before any fetch")
}

func TestGetLunch_FetchError(t *testing.T) {
	t.Parallel()

	server := newTestServer(&stubFetcher{err: errors.New("upstream down")})
	req := httptest.NewRequest(http.MethodGet, "/api/midtown/lunch", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "internal server error")
	require.NotContains(t, rec.Body.String(), "upstream down")
}

func TestGetLunch_ExtractionError(t *testing.T) {
	t.Parallel()

	// A structurally changed page collapses into the same opaque 500
	// as a fetch failure.
	server := newTestServer(&stubFetcher{body: []byte("<html><body>redesigned</body></html>")})
	req := httptest.NewRequest(http.MethodGet, "/api/kornmarken/lunch", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "internal server error")
}

func TestListBuildings(t *testing.T) {
	t.Parallel()

	server := newTestServer(&stubFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/api/buildings", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Buildings []string `json:"buildings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, []string{
		"aastvej", "multihuset", "havremarken", "kirkbi",
		"midtown", "kornmarken", "oestergade",
	}, payload.Buildings)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	server := newTestServer(&stubFetcher{})
	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGetLunch_EndToEnd(t *testing.T) {
	t.Parallel()

	fixture := fixtureBytes(t)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/aastvej" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(fixture)
	}))
	defer upstream.Close()

	fetcher := collyfetcher.New(collyfetcher.Config{Timeout: 5 * time.Second})
	svc := lunch.NewService(fetcher, upstream.URL, zap.NewNop())
	server := NewServer(svc, config.Config{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/aastvej/lunch", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Text         string `json:"text"`
		ResponseType string `json:"response_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "in_channel", payload.ResponseType)
	require.Contains(t, payload.Text, "##### Varm ret\n  Braiseret svinekæber med rodfrugter")
}
