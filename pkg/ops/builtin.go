package ops

import (
	"github.com/matzehuels/graphcanvas/pkg/families"
	"github.com/matzehuels/graphcanvas/pkg/graph"
	"github.com/matzehuels/graphcanvas/pkg/transform"
)

func classOps() []Operation {
	return []Operation{
		{
			Name:  "complete",
			Usage: "n [r=100]",
			Run: func(g *graph.Graph, args Args) error {
				n, r, err := countAndRadius(args, 1)
				if err != nil {
					return err
				}
				_, err = families.Complete(g, n, r)
				return err
			},
		},
		{
			Name:  "cyclic",
			Usage: "n [r=100]",
			Run: func(g *graph.Graph, args Args) error {
				n, r, err := countAndRadius(args, 1)
				if err != nil {
					return err
				}
				_, err = families.Cyclic(g, n, r)
				return err
			},
		},
		{
			Name:  "generalizedPetersen",
			Usage: "n k [outer=200] [inner=75]",
			Run: func(g *graph.Graph, args Args) error {
				n, err := args.Int(0, "n")
				if err != nil {
					return err
				}
				k, err := args.Int(1, "k")
				if err != nil {
					return err
				}
				outer, err := args.Float(2, "outer", families.DefaultOuterRadius)
				if err != nil {
					return err
				}
				inner, err := args.Float(3, "inner", families.DefaultInnerRadius)
				if err != nil {
					return err
				}
				return families.GeneralizedPetersen(g, n, k, outer, inner)
			},
		},
		{
			Name:  "wheel",
			Usage: "n [r=100]",
			Run: func(g *graph.Graph, args Args) error {
				n, r, err := countAndRadius(args, 1)
				if err != nil {
					return err
				}
				_, err = families.Wheel(g, n, r)
				return err
			},
		},
		{
			Name:  "circulant",
			Usage: "n offsets [r=100]",
			Run: func(g *graph.Graph, args Args) error {
				n, err := args.Int(0, "n")
				if err != nil {
					return err
				}
				offsets, err := args.Ints(1, "offsets")
				if err != nil {
					return err
				}
				r, err := args.Float(2, "r", families.DefaultRadius)
				if err != nil {
					return err
				}
				_, err = families.Circulant(g, n, offsets, r)
				return err
			},
		},
	}
}

func functionOps() []Operation {
	return []Operation{
		{
			Name: "line",
			Run: func(g *graph.Graph, _ Args) error {
				transform.LineGraph(g)
				return nil
			},
		},
		{
			Name: "complement",
			Run: func(g *graph.Graph, _ Args) error {
				transform.Complement(g)
				return nil
			},
		},
	}
}

// countAndRadius reads an integer count at 0 and an optional radius at ri.
func countAndRadius(args Args, ri int) (int, float64, error) {
	n, err := args.Int(0, "n")
	if err != nil {
		return 0, 0, err
	}
	r, err := args.Float(ri, "r", families.DefaultRadius)
	if err != nil {
		return 0, 0, err
	}
	return n, r, nil
}
