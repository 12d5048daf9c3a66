package ops

import (
	"maps"
	"slices"

	"github.com/matzehuels/graphcanvas/pkg/errors"
	"github.com/matzehuels/graphcanvas/pkg/graph"
)

// Set names an operation set.
type Set string

const (
	// SetClass holds generators that build a graph from scratch.
	SetClass Set = "class"
	// SetFunction holds transforms that rewrite an input graph.
	SetFunction Set = "function"
)

// Sets lists the known operation sets.
var Sets = []Set{SetClass, SetFunction}

// Operation is a named graph operation.
type Operation struct {
	Name string
	// Usage describes the positional parameters, e.g. "n [offsets] [r=100]".
	Usage string
	Run   func(g *graph.Graph, args Args) error
}

// Registry maps operation names to operations.
type Registry struct {
	set Set
	ops map[string]Operation
}

// NewRegistry builds a registry for set from ops. Later entries replace
// earlier ones with the same name.
func NewRegistry(set Set, ops ...Operation) *Registry {
	r := &Registry{set: set, ops: make(map[string]Operation, len(ops))}
	for _, op := range ops {
		r.ops[op.Name] = op
	}
	return r
}

// Set returns the set this registry serves.
func (r *Registry) Set() Set { return r.set }

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Operation, error) {
	op, ok := r.ops[name]
	if !ok {
		return Operation{}, errors.New(errors.ErrCodeOperationNotFound,
			"operation %q does not exist in set %q", name, r.set)
	}
	return op, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.ops))
}

// Operations returns the registered operations sorted by name.
func (r *Registry) Operations() []Operation {
	out := make([]Operation, 0, len(r.ops))
	for _, name := range r.Names() {
		out = append(out, r.ops[name])
	}
	return out
}

var (
	classes   = NewRegistry(SetClass, classOps()...)
	functions = NewRegistry(SetFunction, functionOps()...)
)

// Classes returns the generator registry.
func Classes() *Registry { return classes }

// Functions returns the transform registry.
func Functions() *Registry { return functions }

// SetByName resolves a set name such as "class" or "function".
func SetByName(name string) (*Registry, error) {
	switch Set(name) {
	case SetClass:
		return classes, nil
	case SetFunction:
		return functions, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidArgument,
		"unknown operation set %q (want %q or %q)", name, SetClass, SetFunction)
}
