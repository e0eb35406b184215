// Package trace records a search tree and renders it as Graphviz DOT.
package trace

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"github.com/chessmixer/game"
)

const (
	graphName = "search"
	rootID    = "root"
)

type node struct {
	id, parent string
	move       string
	value      float64
	pruned     bool
}

// Graph implements search.Tracer. Nodes arrive children first; they are kept
// until Render so edges can be added once every endpoint exists.
type Graph struct {
	// Limit caps the number of recorded nodes. Zero means no limit.
	Limit int

	nodes   []node
	dropped int
}

func New(limit int) *Graph { return &Graph{Limit: limit} }

func nodeID(line []game.Move) string {
	if len(line) == 0 {
		return rootID
	}
	parts := make([]string, len(line))
	for i, m := range line {
		parts[i] = m.String()
	}
	return "n_" + strings.Join(parts, "_")
}

func (g *Graph) Visit(line []game.Move, value float64, pruned bool) {
	if g.Limit > 0 && len(g.nodes) >= g.Limit {
		g.dropped++
		return
	}
	n := node{id: nodeID(line), value: value, pruned: pruned}
	if len(line) > 0 {
		n.parent = nodeID(line[:len(line)-1])
		n.move = line[len(line)-1].String()
	}
	g.nodes = append(g.nodes, n)
}

// Len is the number of recorded nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Dropped is the number of nodes skipped because of Limit.
func (g *Graph) Dropped() int { return g.dropped }

// Render builds the DOT graph. Edges to parents that were dropped are omitted.
func (g *Graph) Render() (string, error) {
	out := gographviz.NewGraph()
	if err := out.SetName(graphName); err != nil {
		return "", errors.WithStack(err)
	}
	if err := out.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	seen := make(map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		label := n.move
		if n.id == rootID {
			label = rootID
		}
		attrs := map[string]string{
			"label": fmt.Sprintf("%q", fmt.Sprintf("%s\n%.2f", label, n.value)),
		}
		if n.pruned {
			attrs["style"] = "dashed"
		}
		if err := out.AddNode(graphName, n.id, attrs); err != nil {
			return "", errors.WithMessagef(err, "node %s", n.id)
		}
		seen[n.id] = true
	}
	for _, n := range g.nodes {
		if n.parent == "" || !seen[n.parent] {
			continue
		}
		if err := out.AddEdge(n.parent, n.id, true, nil); err != nil {
			return "", errors.WithMessagef(err, "edge %s -> %s", n.parent, n.id)
		}
	}
	return out.String(), nil
}
