package info

// Kind tells whether a file or dependency is directly declared or pulled in by another dependency
type Kind int

const (
	Direct Kind = iota
	Transitive
)

// String returns kind name
func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Transitive:
		return "transitive"
	}
	return "unknown"
}
