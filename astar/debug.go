package astar

import "fmt"

// invariant panics with a formatted message when cond is false. Call sites
// guard it with the debug constant so release builds compile the checks away.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("astar: invariant violated: "+format, args...))
	}
}
