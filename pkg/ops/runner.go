package ops

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcanvas/pkg/cache"
	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/observability"
)

// Result is the outcome of a single invocation.
type Result struct {
	Data     graph.Data
	CacheHit bool
	Duration time.Duration
}

// Runner invokes operations with result caching. It holds no per-call
// state and may be shared by concurrent callers.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// IDFunc overrides vertex ID generation for the graphs the runner seeds.
	IDFunc func() string

	// TTL is the lifetime of cached results. Zero means cache.TTLOperation.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Invoke runs the named operation from set and returns the resulting vertex
// map. Generators ("class") ignore input and build on an empty graph;
// transforms ("function") run on a copy of input.
func (r *Runner) Invoke(ctx context.Context, set, name string, args Args, input graph.Data) (graph.Data, error) {
	res, err := r.InvokeWithCacheInfo(ctx, set, name, args, input)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// InvokeWithCacheInfo is Invoke with cache and timing details.
func (r *Runner) InvokeWithCacheInfo(ctx context.Context, set, name string, args Args, input graph.Data) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reg, err := SetByName(set)
	if err != nil {
		return nil, err
	}
	op, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}

	var inputHash string
	if reg.Set() == SetFunction {
		if err := input.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "invalid input graph")
		}
		raw, err := graph.MarshalData(input)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode input graph")
		}
		inputHash = cache.Hash(raw)
	}
	argData, err := json.Marshal(args)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode arguments")
	}
	key := r.keyer().OperationKey(string(reg.Set()), op.Name, argData, inputHash)

	setName := string(reg.Set())
	start := time.Now()
	if data, hit, err := r.cache().Get(ctx, key); err == nil && hit {
		if out, err := graph.ReadData(bytes.NewReader(data)); err == nil {
			observability.Cache().OnCacheHit(ctx, setName)
			r.logger().Debug("operation cache hit", "set", reg.Set(), "op", op.Name)
			return &Result{Data: out, CacheHit: true, Duration: time.Since(start)}, nil
		}
	} else if err != nil {
		r.logger().Warn("cache read failed", "err", err)
	}
	observability.Cache().OnCacheMiss(ctx, setName)

	observability.Operation().OnOperationStart(ctx, setName, op.Name)
	out, err := r.apply(reg.Set(), op, args, input)
	observability.Operation().OnOperationComplete(ctx, setName, op.Name, len(out), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	res := &Result{Data: out, Duration: time.Since(start)}

	if raw, err := graph.MarshalData(out); err == nil {
		if err := r.cache().Set(ctx, key, raw, r.ttl()); err != nil {
			r.logger().Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, setName, len(raw))
		}
	}

	r.logger().Info("applied operation",
		"set", reg.Set(),
		"op", op.Name,
		"args", len(args),
		"vertices", len(out),
		"edges", out.EdgeCount(),
		"duration", res.Duration)
	return res, nil
}

// Apply runs the named operation against the live graph g without caching.
// The operation works on a scratch graph that replaces g's vertex set only
// on success, so a failing call leaves g untouched. opts configure the
// scratch graph (for example its ID generator).
func Apply(g *graph.Graph, set, name string, args Args, opts ...graph.Option) error {
	reg, err := SetByName(set)
	if err != nil {
		return err
	}
	op, err := reg.Lookup(name)
	if err != nil {
		return err
	}

	opts = append([]graph.Option{graph.WithCenter(g.Center())}, opts...)
	work := graph.New(opts...)
	if reg.Set() == SetFunction {
		work = graph.FromData(g.Data(), opts...)
	}
	if err := run(op, work, args); err != nil {
		return err
	}
	g.Replace(work.Vertices())
	return nil
}

func (r *Runner) apply(set Set, op Operation, args Args, input graph.Data) (graph.Data, error) {
	var opts []graph.Option
	if r.IDFunc != nil {
		opts = append(opts, graph.WithIDFunc(r.IDFunc))
	}
	g := graph.New(opts...)
	if set == SetFunction {
		g = graph.FromData(input.Clone(), opts...)
	}
	if err := run(op, g, args); err != nil {
		return nil, err
	}
	return g.Data(), nil
}

// run applies op and tags untyped errors as internal failures.
func run(op Operation, g *graph.Graph, args Args) error {
	err := op.Run(g, args)
	if err != nil && errors.GetCode(err) == "" {
		return errors.Wrap(errors.ErrCodeInternal, err, "%s", op.Name)
	}
	return err
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLOperation
}

func (r *Runner) cache() cache.Cache {
	if r.Cache == nil {
		return cache.NewNullCache()
	}
	return r.Cache
}

func (r *Runner) keyer() cache.Keyer {
	if r.Keyer == nil {
		return cache.NewDefaultKeyer()
	}
	return r.Keyer
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
