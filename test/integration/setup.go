package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"befach-store/internal/config"
	"befach-store/internal/handler"
	"befach-store/internal/ingest"
	"befach-store/internal/repository"
	"befach-store/internal/router"
	"befach-store/internal/service"
	"befach-store/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "secret123"
)

// TestEnv wires the full HTTP stack against a temp-dir record store.
type TestEnv struct {
	Server  *httptest.Server
	Client  *http.Client
	DataDir string
}

// SetupTestEnv builds the whole application the way cmd/api does, backed
// by a throwaway data directory, and serves it over httptest.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	logger := zerolog.Nop()
	dataDir := t.TempDir()

	recordStore, err := store.New(dataDir, logger, store.CollectionProducts, store.CollectionSlider)
	require.NoError(t, err)

	productRepo := repository.NewProductRepository(recordStore, logger)
	slideRepo := repository.NewSlideRepository(recordStore, logger)

	productService := service.NewProductService(productRepo, logger)
	slideService := service.NewSlideService(slideRepo, logger)
	catalogService := service.NewCatalogService(productRepo, ingest.NewFileLoader(logger), "", logger)

	productHandler := handler.NewProductHandler(productService, catalogService, logger)
	slideHandler := handler.NewSlideHandler(slideService, logger)
	authHandler := handler.NewAuthHandler(config.AuthConfig{
		Username:        testAdminUsername,
		Password:        testAdminPassword,
		SessionTTLHours: 1,
	}, logger)

	mux := router.New(productHandler, slideHandler, authHandler, logger)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &TestEnv{
		Server:  server,
		Client:  &http.Client{Jar: jar},
		DataDir: dataDir,
	}
}

// Login authenticates the client; the session cookie sticks in the jar.
func (e *TestEnv) Login(t *testing.T) {
	t.Helper()

	status, _ := e.Do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": testAdminUsername,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, status)
}

// Do sends a JSON request and returns the status code and decoded body.
func (e *TestEnv) Do(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.Server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		// Some endpoints return arrays; callers needing those decode
		// themselves via DoRaw.
		_ = json.Unmarshal(raw, &decoded)
	}

	return resp.StatusCode, decoded
}

// DoRaw sends a JSON request and returns the status code and raw body.
func (e *TestEnv) DoRaw(t *testing.T, method, path string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.Server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, raw
}
