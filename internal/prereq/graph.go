package prereq

// Graph answers prerequisite and dependent queries over one study plan's
// requires-graph. An edge from u to v means v requires u. The graph is built
// once per active plan and read-only afterward; it is not assumed acyclic, so
// every traversal terminates on cyclic input. Query results are sorted for
// deterministic output.
type Graph interface {
	// DirectPrerequisites returns the codes the queried course directly
	// requires. Empty when it requires nothing or is unknown.
	DirectPrerequisites(code string) []string
	// AllPrerequisites returns every code reachable upward from the queried
	// course's prerequisites, transitively.
	AllPrerequisites(code string) []string
	// IndirectPrerequisites is AllPrerequisites minus DirectPrerequisites.
	IndirectPrerequisites(code string) []string
	// DirectDependents returns the codes that directly require the queried
	// course.
	DirectDependents(code string) []string
	// AllDependents returns every code reachable downward from the queried
	// course's dependents, transitively.
	AllDependents(code string) []string
	// IndirectDependents is AllDependents minus DirectDependents.
	IndirectDependents(code string) []string
}

func NewGraph(plan StudyPlan) Graph {
	return newRequiresGraph(plan)
}
