/*
 * Filename: /Users/bao/code/uniflip/graph.go
 * Path: /Users/bao/code/uniflip
 * Created Date: Sunday, March 7th 2021, 10:02:13 am
 * Author: bao
 *
 * Copyright (c) 2021 Haibao Tang
 */

package uniflip

import "fmt"

// Orientation is the strand a unitig is read in. Forward keeps the unitig as
// given, Reverse replaces it by its reverse complement.
type Orientation uint8

// Forward and Reverse are the two possible orientations
const (
	Forward Orientation = iota
	Reverse
)

// Flip returns the opposite orientation
func (o Orientation) Flip() Orientation {
	if o == Forward {
		return Reverse
	}
	return Forward
}

// String returns the strand sign, + for Forward and - for Reverse
func (o Orientation) String() string {
	if o == Forward {
		return "+"
	}
	return "-"
}

// position marks which end of a unitig produced a boundary (k-1)-mer
type position uint8

const (
	posStart position = iota
	posEnd
)

// marker records one occurrence of a boundary (k-1)-mer
type marker struct {
	id  int
	pos position
}

// Edge records that the last k-1 bases of From, read in FromOrientation,
// equal the first k-1 bases of To, read in ToOrientation. Whenever
// (u, v, ou, ov) is an edge, (v, u, flip(ov), flip(ou)) is an edge too, so
// the edge set forms a bidirected graph. Self-loops are legal.
type Edge struct {
	From            int
	To              int
	FromOrientation Orientation
	ToOrientation   Orientation
}

// Graph is the bidirected overlap graph among unitigs, one node per unitig
// id, with orientations carried on the edges
type Graph struct {
	db    *SeqDB
	edges [][]Edge
}

// BuildGraph hashes the boundary (k-1)-mers of every unitig, then resolves
// the four orientation-tagged lookup rules per unitig into edges
func BuildGraph(db *SeqDB, k int) (*Graph, error) {
	if k < 2 {
		return nil, fmt.Errorf("k must be at least 2, got %d", k)
	}
	n := db.Len()
	for i := 0; i < n; i++ {
		if len(db.Seq(i)) < k-1 {
			return nil, fmt.Errorf("sequence %d (%s) has length %d, shorter than k-1 = %d",
				i, db.Name(i), len(db.Seq(i)), k-1)
		}
	}

	log.Noticef("Hashing border %d-mers of %d unitigs", k-1, n)
	borders := make(map[string][]marker)
	for i := 0; i < n; i++ {
		s := db.Seq(i)
		prefix := string(s[:k-1])
		suffix := string(s[len(s)-(k-1):])
		borders[prefix] = append(borders[prefix], marker{i, posStart})
		borders[suffix] = append(borders[suffix], marker{i, posEnd})
	}

	log.Notice("Finding overlaps")
	g := &Graph{db: db, edges: make([][]Edge, n)}
	for i := 0; i < n; i++ {
		s, rc := db.Seq(i), db.RC(i)
		prefix := string(s[:k-1])
		suffix := string(s[len(s)-(k-1):])
		// The prefix of the reverse complement is the reverse complement of
		// the suffix, and vice versa
		rcOfSuffix := string(rc[:k-1])
		rcOfPrefix := string(rc[len(rc)-(k-1):])

		g.addEdges(i, suffix, posStart, Forward, Forward, borders)
		g.addEdges(i, rcOfSuffix, posEnd, Forward, Reverse, borders)
		g.addEdges(i, rcOfPrefix, posStart, Reverse, Forward, borders)
		g.addEdges(i, prefix, posEnd, Reverse, Reverse, borders)
	}
	log.Noticef("Graph contains %d nodes and %d edges", g.N(), g.NumEdges())

	return g, nil
}

// addEdges emits one edge from unitig i to every occurrence under key that
// carries the required end marker
func (g *Graph) addEdges(i int, key string, pos position, fromO, toO Orientation, borders map[string][]marker) {
	for _, m := range borders[key] {
		if m.pos == pos {
			g.edges[i] = append(g.edges[i], Edge{i, m.id, fromO, toO})
		}
	}
}

// N returns the number of unitigs in the graph
func (g *Graph) N() int {
	return len(g.edges)
}

// NumEdges returns the total count of directed edges
func (g *Graph) NumEdges() int {
	total := 0
	for _, edges := range g.edges {
		total += len(edges)
	}
	return total
}

// Outgoing returns the outgoing edges of unitig i
func (g *Graph) Outgoing(i int) []Edge {
	return g.edges[i]
}

// Terminal reports whether unitig i never has to act as a source in both
// orientations, self-loops excluded. For a terminal unitig it also returns
// the single orientation its edges leave in, which is the safe orientation
// to root a propagation at; a unitig with no edges besides self-loops is
// terminal and roots at Forward.
func (g *Graph) Terminal(i int) (Orientation, bool) {
	var hasForward, hasReverse bool
	for _, e := range g.edges[i] {
		if e.To == e.From {
			continue
		}
		if e.FromOrientation == Forward {
			hasForward = true
		} else {
			hasReverse = true
		}
	}
	switch {
	case hasForward && hasReverse:
		return Forward, false
	case hasReverse:
		return Reverse, true
	default:
		return Forward, true
	}
}
