package prereq

import (
	"slices"

	"courseplan/internal/catalog"

	"github.com/samber/lo"
)

type requiresGraph struct {
	requires   map[string][]string // course -> codes it directly requires
	dependents map[string][]string // course -> codes that directly require it
}

func newRequiresGraph(plan StudyPlan) *requiresGraph {
	graph := &requiresGraph{
		requires:   make(map[string][]string),
		dependents: make(map[string][]string),
	}

	for _, course := range plan.AllCourses() {
		code := catalog.NormalizeCode(course.Code)
		if code == "" {
			continue
		}
		for _, raw := range course.Prerequisites {
			prerequisite := catalog.NormalizeCode(raw)
			if prerequisite == "" {
				continue
			}
			graph.requires[code] = append(graph.requires[code], prerequisite)
			graph.dependents[prerequisite] = append(graph.dependents[prerequisite], code)
		}
	}

	// Sorted, duplicate-free adjacency keeps every query deterministic.
	for _, adjacency := range []map[string][]string{graph.requires, graph.dependents} {
		for code, neighbors := range adjacency {
			slices.Sort(neighbors)
			adjacency[code] = slices.Compact(neighbors)
		}
	}
	return graph
}

func (g *requiresGraph) DirectPrerequisites(code string) []string {
	return slices.Clone(g.requires[catalog.NormalizeCode(code)])
}

func (g *requiresGraph) AllPrerequisites(code string) []string {
	return reach(g.requires, catalog.NormalizeCode(code))
}

func (g *requiresGraph) IndirectPrerequisites(code string) []string {
	normalized := catalog.NormalizeCode(code)
	return lo.Without(reach(g.requires, normalized), g.requires[normalized]...)
}

func (g *requiresGraph) DirectDependents(code string) []string {
	return slices.Clone(g.dependents[catalog.NormalizeCode(code)])
}

func (g *requiresGraph) AllDependents(code string) []string {
	return reach(g.dependents, catalog.NormalizeCode(code))
}

func (g *requiresGraph) IndirectDependents(code string) []string {
	normalized := catalog.NormalizeCode(code)
	return lo.Without(reach(g.dependents, normalized), g.dependents[normalized]...)
}

// reach collects every node reachable from code's direct neighbors by walking
// adjacency iteratively. The visited set admits each node once, so cyclic
// input terminates; a course on a cycle through itself appears in its own
// result.
func reach(adjacency map[string][]string, code string) []string {
	visited := make(map[string]bool)
	frontier := slices.Clone(adjacency[code])
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		frontier = append(frontier, adjacency[current]...)
	}

	result := lo.Keys(visited)
	slices.Sort(result)
	return result
}
