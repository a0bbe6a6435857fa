package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/internal/logging"
	"github.com/katalvlaran/lvlsearch/metrics"
	"github.com/katalvlaran/lvlsearch/scenario"
)

const diamond = `
name: diamond
directed: true
heuristic: zero
start: A
goals: [D]
edges:
  - {from: A, to: B, cost: 1}
  - {from: A, to: C, cost: 4}
  - {from: B, to: C, cost: 1}
  - {from: B, to: D, cost: 5}
  - {from: C, to: D, cost: 1}
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	c := metrics.New("lvlsearch")
	require.NoError(t, reg.Register(c))
	srv := httptest.NewServer(NewHandler(logging.NewNop(), c, reg))
	t.Cleanup(srv.Close)

	return srv
}

func TestSearch_Success(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/search", "application/yaml", strings.NewReader(diamond))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var rep scenario.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	assert.Equal(t, "diamond", rep.Name)
	assert.Equal(t, "success", rep.Status)
	assert.Equal(t, 3.0, rep.Cost)
	assert.Equal(t, []string{"A", "B", "C", "D"}, rep.Path)
}

func TestSearch_Errors(t *testing.T) {
	srv := newTestServer(t)
	cases := []struct {
		name string
		body string
		code int
	}{
		{"Garbage", "[unterminated", http.StatusBadRequest},
		{"Invalid", "start: A\nedges: [{from: A, to: B}]", http.StatusBadRequest},
		{"UnknownGoal", "start: A\ngoals: [Z]\nedges: [{from: A, to: B}]", http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/search", "application/yaml", strings.NewReader(tc.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.code, resp.StatusCode)

			var body errorBody
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestSearch_BodyTooLarge(t *testing.T) {
	s := &Server{Logger: logging.NewNop(), MaxBody: 16}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(diamond))
	rec := httptest.NewRecorder()

	s.Search(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSearch_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/search")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetrics_ReflectSearches(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/search", "application/yaml", strings.NewReader(diamond))
	require.NoError(t, err)
	resp.Body.Close()

	mresp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer mresp.Body.Close()
	buf := new(strings.Builder)
	_, err = io.Copy(buf, mresp.Body)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `lvlsearch_searches_total{status="success"} 1`)
	assert.Contains(t, out, "lvlsearch_expansions_total 4")
}
