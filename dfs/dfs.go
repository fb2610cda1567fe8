package dfs

import (
	"fmt"

	"github.com/SarvikIIT/algokit/core"
)

// walker encapsulates mutable DFS state for one run.
type walker struct {
	graph   *core.Graph
	opts    Options
	visited map[string]bool
	res     *Result
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers all disconnected components (startID is ignored); otherwise it
// starts from startID only.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, or ErrOptionViolation for
// invalid input, a context error on cancellation, or any error raised by the
// OnVisit/OnExit hooks.
// Complexity: O(V + E)
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	// 1) Validate graph and build options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Single-source mode requires an existing start vertex.
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 3) Initialize state with capacity hints.
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// 4) Traverse: whole forest in sorted root order, or a single tree.
	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if w.visited[v] {
				continue
			}
			if err := w.visit(v, "", 0); err != nil {
				return nil, err
			}
		}

		return w.res, nil
	}

	return w.res, w.visit(startID, "", 0)
}

// visit explores id recursively at the given depth, firing pre- and
// post-order hooks.
func (w *walker) visit(id, parent string, depth int) error {
	// Cancellation check on every entry.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[id] = true
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}

	if err := w.opts.OnVisit(id, depth); err != nil {
		return err
	}

	// Depth limit: do not recurse past MaxDepth (0 = unlimited).
	if w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth {
		edges, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		for _, e := range edges {
			if w.visited[e.To] {
				continue
			}
			if !w.opts.FilterNeighbor(id, e.To) {
				continue
			}
			if err = w.visit(e.To, id, depth+1); err != nil {
				return err
			}
		}
	}

	return w.opts.OnExit(id, depth)
}
