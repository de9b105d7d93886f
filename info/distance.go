package info

// Distance returns the length of the relative path between two packages.
// com.a.b and com.a are 1 apart, com.test.package and net.different.package are 6 apart.
func Distance(from, to Selector) int {
	common := 0
	for common < from.Size() && common < to.Size() && from.ids[common] == to.ids[common] {
		common++
	}
	return (from.Size() - common) + (to.Size() - common)
}
