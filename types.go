// Package ccl defines the connectivity modes and sentinel errors for
// connected-component labelling.
package ccl

import "errors"

// Sentinel errors for labelling operations.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("ccl: all rows must have the same length")
	// ErrBadConnectivity indicates a connectivity other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("ccl: connectivity must be Conn4 or Conn8")
)

// Connectivity selects neighbor adjacency: orthogonal only (Conn4) or
// including diagonals (Conn8). Fixed per labelling run.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String implements fmt.Stringer for log and error output.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4-connectivity"
	case Conn8:
		return "8-connectivity"
	default:
		return "unknown connectivity"
	}
}
