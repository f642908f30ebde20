/**
 * Filename: /Users/bao/code/uniflip/evaluate.go
 * Path: /Users/bao/code/uniflip
 * Created Date: Sunday, March 7th 2021, 2:19:54 pm
 * Author: bao
 *
 * Copyright (c) 2021 Haibao Tang
 */

package uniflip

// Score counts the unitigs that, under the given assignment, keep at least
// one live incoming overlap: an edge whose endpoints are both oriented the
// way the edge requires gives its target a predecessor. Score is pure and
// mutates neither argument.
func Score(g *Graph, assignment []Orientation) int {
	hasPredecessor := make([]bool, g.N())
	for i := 0; i < g.N(); i++ {
		for _, e := range g.Outgoing(i) {
			if assignment[e.From] == e.FromOrientation && assignment[e.To] == e.ToOrientation {
				hasPredecessor[e.To] = true
			}
		}
	}

	score := 0
	for _, ok := range hasPredecessor {
		if ok {
			score++
		}
	}
	return score
}

// Dummies returns the number of unitigs left without a predecessor, the
// quantity Orient tries to minimize
func Dummies(g *Graph, assignment []Orientation) int {
	return g.N() - Score(g, assignment)
}
