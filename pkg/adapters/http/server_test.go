package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/dfasim/internal/runtime"
	httpAdapter "github.com/aretw0/dfasim/pkg/adapters/http"
	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/aretw0/dfasim/pkg/observability"
	"github.com/aretw0/dfasim/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binary() domain.Definition {
	return domain.Definition{
		Name:      "ends-in-1",
		States:    []string{"S0", "S1"},
		Alphabet:  []string{"0", "1"},
		Start:     "S0",
		Accepting: []string{"S1"},
		Transitions: map[string]map[string]string{
			"S0": {"0": "S0", "1": "S1"},
			"S1": {"0": "S0", "1": "S1"},
		},
	}
}

func newHandler(t *testing.T, opts ...httpAdapter.Option) http.Handler {
	t.Helper()
	engine, err := runtime.NewEngine(binary())
	require.NoError(t, err)
	return httpAdapter.NewHandler(engine, opts...)
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestEvaluate(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		body   string
		result domain.Result
		reason domain.RejectReason
	}{
		{`{"input":""}`, domain.Rejected, domain.ReasonNonAccepting},
		{`{"input":"1"}`, domain.Accepted, ""},
		{`{"input":"10"}`, domain.Rejected, domain.ReasonNonAccepting},
		{`{"input":"101"}`, domain.Accepted, ""},
		{`{"input":"2"}`, domain.Rejected, domain.ReasonUnknownSymbol},
		{`{"symbols":["1","0","1"]}`, domain.Accepted, ""},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			w := post(t, h, tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp runner.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.result, resp.Result)
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}

func TestEvaluate_UnknownSymbolPosition(t *testing.T) {
	w := post(t, newHandler(t), `{"input":"1x1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp runner.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "x", resp.Symbol)
	require.NotNil(t, resp.Position)
	assert.Equal(t, 1, *resp.Position)
	assert.Equal(t, []string{"S0", "S1"}, resp.Path)
}

func TestEvaluate_ControlCharactersAreSymbols(t *testing.T) {
	h := newHandler(t)

	for _, body := range []string{`{"input":"1\u0007"}`, `{"input":"1\n"}`, `{"input":"\u001b1"}`} {
		t.Run(body, func(t *testing.T) {
			w := post(t, h, body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp runner.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, domain.Rejected, resp.Result)
			assert.Equal(t, domain.ReasonUnknownSymbol, resp.Reason)
		})
	}

	w := post(t, h, `{"input":"1\u0007"}`)
	var resp runner.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1\a", resp.Input)
	assert.Equal(t, "\a", resp.Symbol)
	require.NotNil(t, resp.Position)
	assert.Equal(t, 1, *resp.Position)
}

func TestEvaluate_TraceGoesToTraceWriter(t *testing.T) {
	var trace bytes.Buffer
	engine, err := runtime.NewEngine(binary(), runtime.WithTraceWriter(&trace))
	require.NoError(t, err)
	h := httpAdapter.NewHandler(engine)

	w := post(t, h, `{"input":"1","trace":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, trace.String(), "q0 (Start State): S0")
	assert.NotContains(t, w.Body.String(), "Start State")

	var resp runner.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.Accepted, resp.Result)
}

func TestEvaluate_BadBody(t *testing.T) {
	w := post(t, newHandler(t), `{"input":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluate_InputTooLarge(t *testing.T) {
	t.Setenv(runner.EnvMaxInputSize, "2")
	w := post(t, newHandler(t), `{"input":"101"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDefinition(t *testing.T) {
	h := newHandler(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/definition", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var def domain.Definition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &def))
	assert.Equal(t, "ends-in-1", def.Name)
	assert.Equal(t, "S1", def.Transitions["S0"]["1"])
}

func TestGetGraph(t *testing.T) {
	h := newHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graph", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "graph LR"))
	assert.NotContains(t, w.Body.String(), "classDef current")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/graph?input=1", nil))
	assert.Contains(t, w.Body.String(), "current;")
}

func TestHealthAndInfo(t *testing.T) {
	h := newHandler(t, httpAdapter.WithVersion("1.2.3"))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/info", nil))
	var info map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info["version"])
	assert.Equal(t, "ends-in-1", info["definition"])
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	engine, err := runtime.NewEngine(binary(), runtime.WithLifecycleHooks(metrics.Hooks()))
	require.NoError(t, err)
	h := httpAdapter.NewHandler(engine, httpAdapter.WithMetrics(reg))

	post(t, h, `{"input":"101"}`)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `dfasim_evaluations_total{definition="ends-in-1",result="Accepted"} 1`)
}

func TestMetricsEndpoint_AbsentByDefault(t *testing.T) {
	w := httptest.NewRecorder()
	newHandler(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	w := httptest.NewRecorder()
	newHandler(t).ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/evaluate", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
