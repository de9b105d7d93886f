package candidate

import (
	"sort"

	"github.com/viant/javaimports/info"
)

// Filter narrows candidates, selectors are kept while their lists may shrink
type Filter func(candidates *Candidates) (*Candidates, error)

var javaUtil = info.MustParseSelector("java.util")

// Chain composes filters left to right
func Chain(filters ...Filter) Filter {
	return func(candidates *Candidates) (*Candidates, error) {
		var err error
		for _, filter := range filters {
			if candidates, err = filter(candidates); err != nil {
				return nil, err
			}
		}
		return candidates, nil
	}
}

// BySource keeps only candidates from source
func BySource(source Source) Filter {
	return perSelector(func(_ info.Selector, list []Candidate) ([]Candidate, error) {
		return withSource(list, source), nil
	})
}

// BestSource keeps, per selector, candidates of the highest priority source present
func BestSource(candidates *Candidates) (*Candidates, error) {
	return perSelector(func(_ info.Selector, list []Candidate) ([]Candidate, error) {
		if len(list) == 0 {
			return list, nil
		}
		best := list[0].Source
		for _, c := range list[1:] {
			if c.Source > best {
				best = c.Source
			}
		}
		return withSource(list, best), nil
	})(candidates)
}

// CommonScope keeps, for ambiguous selectors, the candidates whose scope is the most frequent among
// unambiguous selectors. All candidates sharing the top count are kept, ordered by scope.
func CommonScope(candidates *Candidates) (*Candidates, error) {
	frequency := scopeFrequency(candidates)
	return perSelector(func(_ info.Selector, list []Candidate) ([]Candidate, error) {
		if len(list) < 2 {
			return list, nil
		}
		top := 0
		for _, c := range list {
			if n := frequency[scopeKey(c)]; n > top {
				top = n
			}
		}
		var ret []Candidate
		for _, c := range list {
			if frequency[scopeKey(c)] == top {
				ret = append(ret, c)
			}
		}
		sort.SliceStable(ret, func(i, j int) bool { return scopeKey(ret[i]) < scopeKey(ret[j]) })
		return ret, nil
	})(candidates)
}

func scopeFrequency(candidates *Candidates) map[string]int {
	ret := map[string]int{}
	for _, s := range candidates.Selectors() {
		if list := candidates.For(s); len(list) == 1 {
			ret[scopeKey(list[0])]++
		}
	}
	return ret
}

func scopeKey(c Candidate) string {
	if scope, ok := c.Import.Selector.Scope(); ok {
		return scope.String()
	}
	return ""
}

// ExternalFilter keeps external candidates closest to pkg, any other source is a contract error
func ExternalFilter(pkg info.Selector) Filter {
	return perSelector(func(selector info.Selector, list []Candidate) ([]Candidate, error) {
		if err := requireSource("external", selector, list, External); err != nil {
			return nil, err
		}
		return minimal(list, func(c Candidate) int {
			if pkg.IsZero() {
				return c.Import.Selector.Size()
			}
			return info.Distance(pkg, c.Import.Selector)
		}), nil
	})
}

// StdlibFilter keeps the shortest stdlib candidates, preferring java.util among them
func StdlibFilter(candidates *Candidates) (*Candidates, error) {
	return perSelector(func(selector info.Selector, list []Candidate) ([]Candidate, error) {
		if err := requireSource("stdlib", selector, list, Stdlib); err != nil {
			return nil, err
		}
		shortest := minimal(list, func(c Candidate) int { return c.Import.Selector.Size() })
		var inUtil []Candidate
		for _, c := range shortest {
			if c.Import.Selector.StartsWith(javaUtil) {
				inUtil = append(inUtil, c)
			}
		}
		if len(inUtil) > 0 {
			return inUtil, nil
		}
		return shortest, nil
	})(candidates)
}

// SourceSpecific applies the stdlib or external rules depending on the source of each selector candidates
func SourceSpecific(pkg info.Selector) Filter {
	external := ExternalFilter(pkg)
	return perSelector(func(selector info.Selector, list []Candidate) ([]Candidate, error) {
		if len(list) == 0 {
			return list, nil
		}
		source := list[0].Source
		single := New()
		single.Add(selector, list...)
		var filtered *Candidates
		var err error
		switch source {
		case Stdlib:
			filtered, err = StdlibFilter(single)
		case External:
			filtered, err = external(single)
		default:
			return list, nil
		}
		if err != nil {
			return nil, err
		}
		return filtered.For(selector), nil
	})
}

func perSelector(fn func(selector info.Selector, list []Candidate) ([]Candidate, error)) Filter {
	return func(candidates *Candidates) (*Candidates, error) {
		return candidates.Map(fn)
	}
}

func withSource(list []Candidate, source Source) []Candidate {
	var ret []Candidate
	for _, c := range list {
		if c.Source == source {
			ret = append(ret, c)
		}
	}
	return ret
}

func requireSource(filter string, selector info.Selector, list []Candidate, source Source) error {
	for _, c := range list {
		if c.Source != source {
			return newContractError(filter, selector.String(), c)
		}
	}
	return nil
}

func minimal(list []Candidate, measure func(c Candidate) int) []Candidate {
	if len(list) == 0 {
		return list
	}
	low := measure(list[0])
	for _, c := range list[1:] {
		if m := measure(c); m < low {
			low = m
		}
	}
	var ret []Candidate
	for _, c := range list {
		if measure(c) == low {
			ret = append(ret, c)
		}
	}
	return ret
}
