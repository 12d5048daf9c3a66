package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/httputil"
	"github.com/matzehuels/graphcanvas/pkg/observability"
	"github.com/matzehuels/graphcanvas/pkg/ops"
	"github.com/matzehuels/graphcanvas/pkg/store"
)

const triangle = `{
	"a": {"neighbors": ["b", "c"], "position": [0, 0]},
	"b": {"neighbors": ["a", "c"], "position": [10, 0]},
	"c": {"neighbors": ["a", "b"], "position": [0, 10]}
}`

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	logger := log.New(io.Discard)
	runner := ops.NewRunner(nil, nil, logger)
	runner.IDFunc = graph.SequentialIDs("v")
	return New(runner, store.NewMemoryStore(), WithLogger(logger)).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"status":"healthy"`) || !strings.Contains(body, `"version"`) {
		t.Errorf("body = %s", body)
	}
}

func TestListTransforms(t *testing.T) {
	h := newTestServer(t)
	tests := []struct {
		path   string
		status int
		want   []string
	}{
		{"/transform/class", http.StatusOK, ops.Classes().Names()},
		{"/transform/function", http.StatusOK, []string{"complement", "line"}},
		{"/transform/shape", http.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.path, "")
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if tt.want == nil {
				return
			}
			got := decode[transformList](t, rec)
			if strings.Join(got.Available, ",") != strings.Join(tt.want, ",") {
				t.Errorf("available = %v, want %v", got.Available, tt.want)
			}
		})
	}
}

func TestRunTransform(t *testing.T) {
	h := newTestServer(t)

	t.Run("class ignores graph data", func(t *testing.T) {
		body := `{"graphData": ` + triangle + `, "transformName": "complete", "params": [4]}`
		rec := do(t, h, http.MethodPost, "/transform/class", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		d := decode[graph.Data](t, rec)
		if len(d) != 4 {
			t.Fatalf("vertices = %d, want 4", len(d))
		}
		for id, v := range d {
			if v.Degree() != 3 {
				t.Errorf("degree(%s) = %d, want 3", id, v.Degree())
			}
		}
		if rec.Header().Get("X-Cache") != "miss" {
			t.Errorf("X-Cache = %q, want miss", rec.Header().Get("X-Cache"))
		}
	})

	t.Run("list parameter", func(t *testing.T) {
		body := `{"transformName": "circulant", "params": [8, [1, 2]]}`
		rec := do(t, h, http.MethodPost, "/transform/class", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		d := decode[graph.Data](t, rec)
		if len(d) != 8 || d.EdgeCount() != 16 {
			t.Errorf("got %d vertices %d edges, want 8 and 16", len(d), d.EdgeCount())
		}
	})

	t.Run("function", func(t *testing.T) {
		body := `{"graphData": ` + triangle + `, "transformName": "line", "params": []}`
		rec := do(t, h, http.MethodPost, "/transform/function", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		d := decode[graph.Data](t, rec)
		if len(d) != 3 || d.EdgeCount() != 3 {
			t.Errorf("line graph of a triangle: %d vertices %d edges", len(d), d.EdgeCount())
		}
	})
}

func TestRunTransformErrors(t *testing.T) {
	h := newTestServer(t)
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"unknown set", "/transform/shape", `{"transformName": "complete"}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"missing name", "/transform/class", `{"params": [3]}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown op", "/transform/class", `{"transformName": "hypercube", "params": [3]}`, http.StatusNotFound, "OPERATION_NOT_FOUND"},
		{"bad argument", "/transform/class", `{"transformName": "cyclic", "params": [0]}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"missing argument", "/transform/class", `{"transformName": "cyclic", "params": []}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"too many edges", "/transform/class", `{"transformName": "complete", "params": [3000]}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"too many vertices", "/transform/class", `{"transformName": "cyclic", "params": [2e9]}`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"invalid graph", "/transform/function", `{"graphData": {"a": {"neighbors": ["z"], "position": [0, 0]}}, "transformName": "line"}`, http.StatusBadRequest, "INVALID_GRAPH"},
		{"malformed", "/transform/class", `{"transformName": `, http.StatusBadRequest, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			body := decode[httputil.ErrorBody](t, rec)
			if body.Error != tt.code {
				t.Errorf("error = %q, want %q (%s)", body.Error, tt.code, body.Message)
			}
		})
	}
}

func TestMissingFieldMessage(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/transform/class", `{"params": [3]}`)
	body := decode[httputil.ErrorBody](t, rec)
	if body.Message != "transformName is required" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestGraphLifecycle(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/graphs/create",
		`{"name": "triangle", "description": "K3", "graphData": `+triangle+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[graphCreated](t, rec)
	if created.Message != "Graph created successfully" {
		t.Errorf("message = %q", created.Message)
	}
	id := created.Graph.ID
	if id == "" || len(created.Graph.GraphData) != 3 {
		t.Fatalf("graph = %+v", created.Graph)
	}

	rec = do(t, h, http.MethodGet, "/graphs/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if got := decode[store.Record](t, rec); got.Name != "triangle" {
		t.Errorf("name = %q", got.Name)
	}

	rec = do(t, h, http.MethodGet, "/graphs", "")
	if got := decode[[]store.Record](t, rec); len(got) != 1 {
		t.Errorf("list = %d records, want 1", len(got))
	}

	rec = do(t, h, http.MethodPut, "/graphs/"+id,
		`{"name": "renamed", "graphData": `+triangle+`}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := decode[store.Record](t, rec); got.Name != "renamed" || got.ID != id {
		t.Errorf("updated = %+v", got)
	}

	rec = do(t, h, http.MethodDelete, "/graphs/"+id, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = do(t, h, http.MethodGet, "/graphs/"+id, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", rec.Code)
	}
}

func TestGraphErrors(t *testing.T) {
	h := newTestServer(t)
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown id", http.MethodGet, "/graphs/missing", "", http.StatusNotFound},
		{"bad id", http.MethodGet, "/graphs/a.b", "", http.StatusBadRequest},
		{"missing name", http.MethodPost, "/graphs/create", `{"graphData": {}}`, http.StatusBadRequest},
		{"missing data", http.MethodPost, "/graphs/create", `{"name": "x"}`, http.StatusBadRequest},
		{"blank name", http.MethodPost, "/graphs/create", `{"name": "  ", "graphData": {}}`, http.StatusBadRequest},
		{"asymmetric data", http.MethodPost, "/graphs/create",
			`{"name": "x", "graphData": {"a": {"neighbors": ["b"], "position": [0, 0]}, "b": {"neighbors": [], "position": [1, 1]}}}`,
			http.StatusBadRequest},
		{"update unknown", http.MethodPut, "/graphs/missing", `{"name": "x", "graphData": {}}`, http.StatusNotFound},
		{"delete unknown", http.MethodDelete, "/graphs/missing", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestSaveRejectsInvalidGraph(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodPost, "/graphs/create", `{"name": "k3", "graphData": `+triangle+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	id := decode[graphCreated](t, rec).Graph.ID

	dangling := `{"name": "x", "graphData": {"a": {"neighbors": ["z"], "position": [0, 0]}}}`
	for _, tt := range []struct{ method, path string }{
		{http.MethodPost, "/graphs/create"},
		{http.MethodPut, "/graphs/" + id},
	} {
		rec := do(t, h, tt.method, tt.path, dangling)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s %s status = %d, want 400", tt.method, tt.path, rec.Code)
		}
		if body := decode[httputil.ErrorBody](t, rec); body.Error != "INVALID_GRAPH" {
			t.Errorf("%s %s error = %q, want INVALID_GRAPH", tt.method, tt.path, body.Error)
		}
	}
}

func TestListGraphsEmpty(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/graphs", "")
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %s, want []", rec.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	h := New(nil, store.NewMemoryStore(),
		WithLogger(log.New(io.Discard)),
		WithCORSOrigins("http://localhost:3000")).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/transform/class", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow origin = %q", got)
	}
}

type routeHooks struct {
	mu     sync.Mutex
	routes []string
}

func (h *routeHooks) OnResponse(_ context.Context, method, route string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes = append(h.routes, method+" "+route)
}

func TestRequestHooksSeeRoutePattern(t *testing.T) {
	hooks := &routeHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	do(t, newTestServer(t), http.MethodGet, "/graphs/abc", "")

	if len(hooks.routes) != 1 || hooks.routes[0] != "GET /graphs/{id}" {
		t.Errorf("routes = %v", hooks.routes)
	}
}

func TestListenAndServeStops(t *testing.T) {
	s := New(nil, store.NewMemoryStore(), WithLogger(log.New(io.Discard)))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v", err)
		}
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}
