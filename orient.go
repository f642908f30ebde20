/*
 * Filename: /Users/bao/code/uniflip/orient.go
 * Path: /Users/bao/code/uniflip
 * Created Date: Sunday, March 7th 2021, 11:47:29 am
 * Author: bao
 *
 * Copyright (c) 2021 Haibao Tang
 */

package uniflip

// step is one pending commitment in the propagation queue
type step struct {
	id          int
	orientation Orientation
}

// Orient assigns every unitig a Forward/Reverse orientation so that as many
// unitigs as possible keep a valid incoming overlap. Each edge is read as a
// constraint: once a unitig is committed to an orientation, every outgoing
// edge leaving in that orientation forces the orientation of its target.
// Unitigs are swept in ascending id order, terminal unitigs first so that
// each overlap chain is entered from one of its ends; whatever remains after
// that is purely cyclic and is rooted at Forward arbitrarily. The first
// commitment to a unitig wins and is never revisited.
func Orient(g *Graph) []Orientation {
	n := g.N()
	assignment := make([]Orientation, n)
	visited := make([]bool, n)
	var queue []step // Reused BFS queue between roots

	terminals := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		if o, ok := g.Terminal(i); ok {
			queue = propagate(g, step{i, o}, assignment, visited, queue)
			terminals++
		}
	}

	cyclic := 0
	for i := 0; i < n; i++ {
		if !visited[i] {
			queue = propagate(g, step{i, Forward}, assignment, visited, queue)
			cyclic++
		}
	}
	log.Noticef("Propagated from %d terminal roots and %d cyclic remainders",
		terminals, cyclic)

	return assignment
}

// propagate runs a breadth-first traversal from root, committing every
// unitig reachable through orientation-matching edges. The visited guard at
// dequeue time keeps cycles and self-loops from re-entering.
func propagate(g *Graph, root step, assignment []Orientation, visited []bool, queue []step) []step {
	queue = append(queue[:0], root)
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if visited[s.id] {
			continue
		}
		visited[s.id] = true
		assignment[s.id] = s.orientation

		for _, e := range g.Outgoing(s.id) {
			if e.FromOrientation != s.orientation || visited[e.To] {
				continue
			}
			queue = append(queue, step{e.To, e.ToOrientation})
		}
	}
	return queue[:0]
}
