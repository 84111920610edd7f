// Package crud holds the list screen and form dialog shared by every
// resource page.
package crud

// OpState tracks one operation of a screen or dialog.
type OpState int

const (
	// Idle means nothing is running and the last run, if any, succeeded.
	Idle OpState = iota
	// InFlight means a request is outstanding.
	InFlight
	// Errored means the last run failed.
	Errored
)

func (s OpState) String() string {
	switch s {
	case InFlight:
		return "in_flight"
	case Errored:
		return "errored"
	default:
		return "idle"
	}
}

// Busy reports whether a request is outstanding.
func (s OpState) Busy() bool {
	return s == InFlight
}

// Ops is the per-operation status of a screen.
type Ops struct {
	List   OpState
	Delete OpState
	Import OpState
}
