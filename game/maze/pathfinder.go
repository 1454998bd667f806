package maze

// ReachableFrom returns every open coordinate connected to origin through
// axis-adjacent open cells, origin included. A blocked origin reaches nothing.
// The grid is only read.
func ReachableFrom(g *Grid, origin Coordinate) map[Coordinate]struct{} {
	visited := make(map[Coordinate]struct{})
	if !g.IsOpen(origin) {
		return visited
	}

	stack := []Coordinate{origin}
	visited[origin] = struct{}{}

	for len(stack) > 0 {
		cell := pop(&stack)
		for _, nbr := range cell.Neighbors() {
			if _, seen := visited[nbr]; seen || !g.IsOpen(nbr) {
				continue
			}
			visited[nbr] = struct{}{}
			stack = append(stack, nbr)
		}
	}

	return visited
}

// HasPath reports whether to can be reached from from over open cells.
func HasPath(g *Grid, from, to Coordinate) bool {
	if !g.IsOpen(from) || !g.IsOpen(to) {
		return false
	}
	if from == to {
		return true
	}
	_, ok := ReachableFrom(g, from)[to]
	return ok
}

// AllOpenReachableFrom reports whether every open cell of the grid is connected to origin.
func AllOpenReachableFrom(g *Grid, origin Coordinate) bool {
	reachable := ReachableFrom(g, origin)
	for _, c := range g.OpenCells() {
		if _, ok := reachable[c]; !ok {
			return false
		}
	}
	return true
}

// pop removes and returns the last element of a stack of coordinates.
func pop(s *[]Coordinate) Coordinate {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
