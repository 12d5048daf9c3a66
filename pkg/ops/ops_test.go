package ops

import (
	"context"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcanvas/pkg/cache"
	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/observability"
)

func newTestRunner(t *testing.T, c cache.Cache) *Runner {
	t.Helper()
	r := NewRunner(c, nil, log.New(io.Discard))
	r.IDFunc = graph.SequentialIDs("v")
	return r
}

func TestRegistryNames(t *testing.T) {
	tests := []struct {
		set  string
		want []string
	}{
		{"class", []string{"circulant", "complete", "cyclic", "generalizedPetersen", "wheel"}},
		{"function", []string{"complement", "line"}},
	}
	for _, tt := range tests {
		reg, err := SetByName(tt.set)
		if err != nil {
			t.Fatal(err)
		}
		if got := reg.Names(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s names = %v, want %v", tt.set, got, tt.want)
		}
		if len(reg.Operations()) != len(tt.want) {
			t.Errorf("%s operations = %d", tt.set, len(reg.Operations()))
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Classes().Lookup("hypercube")
	if !errors.Is(err, errors.ErrCodeOperationNotFound) {
		t.Fatalf("err = %v, want OPERATION_NOT_FOUND", err)
	}
	if msg := errors.UserMessage(err); !strings.Contains(msg, "hypercube") {
		t.Errorf("message %q does not name the operation", msg)
	}

	// Transforms are not reachable through the generator set.
	if _, err := Classes().Lookup("line"); err == nil {
		t.Error("line resolved in the class set")
	}
}

func TestSetByNameUnknown(t *testing.T) {
	if _, err := SetByName("method"); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("err = %v, want INVALID_ARGUMENT", err)
	}
}

func TestInvokeClass(t *testing.T) {
	r := newTestRunner(t, nil)
	input := graph.Data{"keep": {Position: graph.Position{1, 1}}}

	out, err := r.Invoke(context.Background(), "class", "wheel", Args{Number(6)}, input)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 7 {
		t.Errorf("wheel(6) vertices = %d, want 7", len(out))
	}
	if _, ok := out["keep"]; ok {
		t.Error("generator kept input vertices")
	}
	if err := out.Validate(); err != nil {
		t.Error(err)
	}
}

func TestInvokeFunctionLeavesInputUntouched(t *testing.T) {
	r := newTestRunner(t, nil)
	input, err := r.Invoke(context.Background(), "class", "cyclic", Args{Number(4)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	before := input.Clone()

	out, err := r.Invoke(context.Background(), "function", "complement", nil, input)
	if err != nil {
		t.Fatal(err)
	}
	if out.EdgeCount() != 2 {
		t.Errorf("complement of C4 has %d edges, want 2", out.EdgeCount())
	}
	if !reflect.DeepEqual(input, before) {
		t.Error("input graph was modified")
	}
}

func TestInvokeErrors(t *testing.T) {
	r := newTestRunner(t, nil)
	ctx := context.Background()
	tests := []struct {
		name  string
		set   string
		op    string
		args  Args
		input graph.Data
		code  errors.Code
	}{
		{"unknown op", "class", "hypercube", nil, nil, errors.ErrCodeOperationNotFound},
		{"unknown set", "method", "wheel", nil, nil, errors.ErrCodeInvalidArgument},
		{"missing n", "class", "wheel", nil, nil, errors.ErrCodeInvalidArgument},
		{"zero n", "class", "cyclic", Args{Number(0)}, nil, errors.ErrCodeInvalidArgument},
		{"list for n", "class", "complete", Args{List(3)}, nil, errors.ErrCodeInvalidArgument},
		{"missing offsets", "class", "circulant", Args{Number(6)}, nil, errors.ErrCodeInvalidArgument},
		{"asymmetric input", "function", "line", nil, graph.Data{
			"a": {Neighbors: []string{"b"}},
			"b": {},
		}, errors.ErrCodeInvalidGraph},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Invoke(ctx, tt.set, tt.op, tt.args, tt.input)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestInvokeCachesResults(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := newTestRunner(t, c)
	ctx := context.Background()
	args := Args{Number(6), List(1, 2)}

	first, err := r.InvokeWithCacheInfo(ctx, "class", "circulant", args, nil)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Error("first call reported a cache hit")
	}

	second, err := r.InvokeWithCacheInfo(ctx, "class", "circulant", args, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second call missed the cache")
	}
	if !reflect.DeepEqual(first.Data, second.Data) {
		t.Error("cached result differs")
	}

	third, err := r.InvokeWithCacheInfo(ctx, "class", "circulant", Args{Number(6), List(1)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("different arguments hit the cache")
	}
}

func TestInvokeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestRunner(t, nil).Invoke(ctx, "class", "wheel", Args{Number(3)}, nil); err == nil {
		t.Error("cancelled context did not fail")
	}
}

func TestApplyIsAtomic(t *testing.T) {
	g := graph.New(graph.WithIDFunc(graph.SequentialIDs("v")))
	a := g.AddVertex(&graph.Vertex{})
	b := g.AddVertex(&graph.Vertex{})
	g.AddEdge(a, b)

	if err := Apply(g, "class", "cyclic", Args{Number(-1)}); err == nil {
		t.Fatal("expected error")
	}
	if g.Len() != 2 || g.EdgeCount() != 1 {
		t.Errorf("failed Apply changed the graph: %d vertices %d edges", g.Len(), g.EdgeCount())
	}

	if err := Apply(g, "function", "line", nil); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 1 || g.EdgeCount() != 0 {
		t.Errorf("line of K2: %d vertices %d edges", g.Len(), g.EdgeCount())
	}

	if err := Apply(g, "class", "complete", Args{Number(4)}, graph.WithIDFunc(graph.SequentialIDs("k"))); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 4 || g.EdgeCount() != 6 {
		t.Errorf("complete(4): %d vertices %d edges", g.Len(), g.EdgeCount())
	}
}

type recordingHooks struct {
	observability.NoopOperationHooks
	observability.NoopCacheHooks
	completed []string
	hits      int
	misses    int
}

func (h *recordingHooks) OnOperationComplete(_ context.Context, set, name string, vertices int, _ time.Duration, err error) {
	if err == nil {
		h.completed = append(h.completed, set+"/"+name)
	}
}

func (h *recordingHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *recordingHooks) OnCacheMiss(context.Context, string) { h.misses++ }

func TestInvokeReportsHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetOperationHooks(h)
	observability.SetCacheHooks(h)
	defer observability.Reset()

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := newTestRunner(t, c)
	ctx := context.Background()
	for range 2 {
		if _, err := r.Invoke(ctx, "class", "cyclic", Args{Number(5)}, nil); err != nil {
			t.Fatal(err)
		}
	}

	if !reflect.DeepEqual(h.completed, []string{"class/cyclic"}) {
		t.Errorf("completed = %v, want one cyclic run", h.completed)
	}
	if h.hits != 1 || h.misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/1", h.hits, h.misses)
	}
}
