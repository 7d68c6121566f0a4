package ladder

import "math"

// predecessor addresses the vertex a shortest-path relaxation arrived
// from, by (rung, vertex) position.
type predecessor struct {
	rung, vertex int
	valid        bool
}

// ShortestPath runs a layered, Bellman-style forward relaxation over g
// and returns the minimum cost to any vertex in the last rung, plus the
// sequence of vertex indices (one per rung) realizing that cost. It is
// pure over g: it takes no locks and makes no mutations. If the graph is
// infeasible, cost is +Inf and path is empty.
func ShortestPath(g *Graph) (float64, []int) {
	n := g.Size()
	if n == 0 {
		return math.Inf(1), nil
	}

	dist := make([][]float64, n)
	pred := make([][]predecessor, n)
	for i := 0; i < n; i++ {
		nv := g.rungs[i].VertexCount(g.dof)
		dist[i] = make([]float64, nv)
		pred[i] = make([]predecessor, nv)
		for v := range dist[i] {
			dist[i][v] = math.Inf(1)
		}
	}
	for v := range dist[0] {
		dist[0][v] = 0
	}

	for i := 0; i < n-1; i++ {
		block := g.edges[i]
		for v, d := range dist[i] {
			if math.IsInf(d, 1) {
				continue
			}
			if v >= len(block) {
				continue
			}
			for _, e := range block[v] {
				cand := d + e.Cost
				if cand < dist[i+1][e.ToIndex] {
					dist[i+1][e.ToIndex] = cand
					pred[i+1][e.ToIndex] = predecessor{rung: i, vertex: v, valid: true}
				}
			}
		}
	}

	last := n - 1
	bestV := -1
	bestDist := math.Inf(1)
	for v, d := range dist[last] {
		if d < bestDist {
			bestDist = d
			bestV = v
		}
	}
	if bestV == -1 || math.IsInf(bestDist, 1) {
		return math.Inf(1), nil
	}

	path := make([]int, n)
	rung, vertex := last, bestV
	for {
		path[rung] = vertex
		p := pred[rung][vertex]
		if !p.valid {
			break
		}
		rung, vertex = p.rung, p.vertex
	}
	return bestDist, path
}
