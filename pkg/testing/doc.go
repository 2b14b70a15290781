// Package testing provides a deterministic harness for exercising the
// expandable text widget without a real host: a fake clock, a hand-pumped
// frame scheduler, and recording implementations of the widget's view
// interfaces.
//
// Import it as exptest to avoid clashing with the standard library:
//
//	import exptest "github.com/go-drift/expandtext/pkg/testing"
package testing
