package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	novena "github.com/ninefold/novena"
	"github.com/ninefold/novena/internal/logging"
	"github.com/ninefold/novena/internal/observability"
)

func newTestHandler() http.Handler {
	return NewHandler(novena.New(), logging.NewNop(), observability.New())
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestAnalyzeEndpoint(t *testing.T) {
	rec := postJSON(t, newTestHandler(), "/v1/analyze", map[string]string{"text": "ABC"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Document struct {
			Total  int `json:"total"`
			Energy int `json:"energy"`
		} `json:"document"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Document.Total)
	assert.Equal(t, 6, body.Document.Energy)
}

func TestPlanInsertionEndpoint(t *testing.T) {
	rec := postJSON(t, newTestHandler(), "/v1/plan/insertion", map[string]any{
		"text":   "ABC",
		"target": 6,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Target int `json:"target"`
		Steps  []struct {
			Symbol string `json:"symbol"`
			Count  int    `json:"count"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Target)
	assert.Empty(t, body.Steps, "text already at target needs no insertions")
}

func TestPlanInsertionRejectsBadTarget(t *testing.T) {
	rec := postJSON(t, newTestHandler(), "/v1/plan/insertion", map[string]any{
		"text":   "ABC",
		"target": 12,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanInsertionUnreachableIsUnprocessable(t *testing.T) {
	// "i" has energy 9, so inserting it can never change the residue.
	rec := postJSON(t, newTestHandler(), "/v1/plan/insertion", map[string]any{
		"text":            "ABC",
		"target":          1,
		"allowed_symbols": "i",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPlanEditEndpoint(t *testing.T) {
	rec := postJSON(t, newTestHandler(), "/v1/plan/edit", map[string]any{
		"text":   "X",
		"target": 1,
		"subs":   map[string][]string{"X": {"A"}},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Ops []struct {
			Kind string `json:"kind"`
			Pos  int    `json:"pos"`
			Char string `json:"char"`
		} `json:"ops"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Ops, 1)
	assert.Equal(t, "substitute", body.Ops[0].Kind)
	assert.Equal(t, "A", body.Ops[0].Char)
}

func TestApplyEndpoint(t *testing.T) {
	handler := newTestHandler()
	planRec := postJSON(t, handler, "/v1/plan/edit", map[string]any{
		"text":   "X",
		"target": 1,
		"subs":   map[string][]string{"X": {"A"}},
	})
	require.Equal(t, http.StatusOK, planRec.Code)

	var plan json.RawMessage = planRec.Body.Bytes()
	rec := postJSON(t, handler, "/v1/apply", map[string]any{
		"text": "X",
		"plan": plan,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var body applyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "A", body.Text)
	assert.Equal(t, 1, body.Root)
}

func TestApplyRequiresPlan(t *testing.T) {
	rec := postJSON(t, newTestHandler(), "/v1/apply", map[string]any{"text": "X"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidJSONIsBadRequest(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
