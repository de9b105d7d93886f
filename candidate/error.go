package candidate

import (
	"fmt"
	"time"
)

// ContractError reports candidates violating a filter precondition, it denotes a pipeline wiring bug
type ContractError struct {
	Filter    string
	Selector  string
	Candidate Candidate
	Timestamp time.Time
}

func newContractError(filter, selector string, c Candidate) *ContractError {
	return &ContractError{Filter: filter, Selector: selector, Candidate: c, Timestamp: time.Now()}
}

// Error implements the error interface
func (e *ContractError) Error() string {
	return fmt.Sprintf("candidate: %s filter received %v candidate %v for %s", e.Filter, e.Candidate.Source, e.Candidate.Import, e.Selector)
}
