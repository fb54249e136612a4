package stepflow

import "sort"

// Snippets returns the code stubs the backends suggest for the undefined steps. The steps are ordered by keyword,
// then by name; for each step the backends are asked in registration order. A snippet is only listed the first
// time it occurs. Keywords are compared as written, so "And " steps sort separately from "Given " steps.
//
// Snippets is meant to be called once all scenarios have run.
func (r *Runtime) Snippets() []string {
	steps := r.UndefinedSteps()
	sort.SliceStable(steps, func(i, j int) bool {
		if steps[i].Keyword != steps[j].Keyword {
			return steps[i].Keyword < steps[j].Keyword
		}
		return steps[i].Name < steps[j].Name
	})

	var snippets []string
	seen := map[string]struct{}{}
	for _, step := range steps {
		for _, b := range r.backends {
			snippet := b.Snippet(step)
			if snippet == "" {
				continue
			}
			if _, ok := seen[snippet]; ok {
				continue
			}
			seen[snippet] = struct{}{}
			snippets = append(snippets, snippet)
		}
	}
	return snippets
}
