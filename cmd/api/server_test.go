package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articles-api/internal/config"
	hhttp "articles-api/internal/handler/http"
	"articles-api/internal/handler/http/requestid"
	"articles-api/internal/repository/repotest"
	statsUC "articles-api/internal/usecase/stats"
)

func newTestServer(t *testing.T, limiter *hhttp.RateLimiter) (*httptest.Server, *repotest.Store) {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Default()
	cfg.CORS.AllowedOrigins = []string{"https://app.example.com"}

	store := repotest.NewStore()
	mux := setupRoutes(serverDeps{Store: store, DB: db, RateLimiter: limiter, Version: "test"})
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	srv := httptest.NewServer(applyMiddleware(logger, &cfg, mux, limiter))
	t.Cleanup(srv.Close)
	return srv, store
}

func TestServer_ArticleRoundTrip(t *testing.T) {
	srv, store := newTestServer(t, nil)

	body := `{"title":"Fake Article 3","content":"To be or not to be",` +
		`"regions":[{"code":"US","name":"United States of America"},{"code":"AU","name":"Austria"}],"authors":[]}`
	resp, err := http.Post(srv.URL+"/articles", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.RequestIDHeader))

	regions, err := store.Regions().List(t.Context())
	require.NoError(t, err)
	assert.Len(t, regions, 2)
}

func TestServer_Routes(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"regions list", http.MethodGet, "/regions", http.StatusOK},
		{"authors list", http.MethodGet, "/authors", http.StatusOK},
		{"articles list", http.MethodGet, "/articles", http.StatusOK},
		{"unknown article", http.MethodGet, "/articles/42", http.StatusNotFound},
		{"bad id", http.MethodGet, "/regions/abc", http.StatusBadRequest},
		{"liveness", http.MethodGet, "/live", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"wrong method", http.MethodPatch, "/authors/1", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/articles", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_RateLimit(t *testing.T) {
	srv, _ := newTestServer(t, hhttp.NewRateLimiter(1, 2))

	codes := make([]int, 0, 3)
	for range 3 {
		resp, err := http.Get(srv.URL + "/regions")
		require.NoError(t, err)
		_ = resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestStartStatsJob(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := &statsUC.Service{Store: repotest.NewStore()}

	// 異常系: 不正なスケジュール
	_, err = startStatsJob(t.Context(), logger, "not a schedule", svc, db)
	assert.Error(t, err)

	// 正常系
	c, err := startStatsJob(t.Context(), logger, "@every 1h", svc, db)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	up, _, err := root.Find([]string{"migrate", "up"})
	require.NoError(t, err)
	assert.Equal(t, "up", up.Name())

	down, _, err := root.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	assert.Equal(t, "down", down.Name())

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}
