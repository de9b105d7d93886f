package candidate

import (
	"github.com/viant/javaimports/info"
)

// Strategy picks at most one import per selector
type Strategy interface {
	SelectBest(candidates *Candidates) (*BestCandidates, error)
}

// StrategyFunc adapts a function to Strategy
type StrategyFunc func(candidates *Candidates) (*BestCandidates, error)

// SelectBest calls fn
func (fn StrategyFunc) SelectBest(candidates *Candidates) (*BestCandidates, error) {
	return fn(candidates)
}

// Basic selects by source priority, then the most common scope, then source specific rules
// relative to pkg, taking the first remaining candidate
func Basic(pkg info.Selector) Strategy {
	pipeline := Chain(BestSource, CommonScope, SourceSpecific(pkg))
	return StrategyFunc(func(candidates *Candidates) (*BestCandidates, error) {
		filtered, err := pipeline(candidates)
		if err != nil {
			return nil, err
		}
		return takeFirst(filtered), nil
	})
}

// TakeFirst selects the first candidate found for each selector
func TakeFirst() Strategy {
	return StrategyFunc(func(candidates *Candidates) (*BestCandidates, error) {
		return takeFirst(candidates), nil
	})
}

func takeFirst(candidates *Candidates) *BestCandidates {
	ret := newBest()
	for _, s := range candidates.Selectors() {
		if list := candidates.For(s); len(list) > 0 {
			ret.put(s, list[0].Import)
		}
	}
	return ret
}
