package engine

// ControlFlow is the loop-continuation decision produced at the end of
// every pipeline iteration. It tells the host loop how to obtain the
// next batch of events.
type ControlFlow int

const (
	// Wait suspends the loop until a host event or a proxy wake
	// arrives.
	Wait ControlFlow = iota
	// Poll runs the next iteration immediately, draining whatever
	// events are already pending.
	Poll
	// Exit terminates the loop.
	Exit
)

func (c ControlFlow) String() string {
	switch c {
	case Wait:
		return "wait"
	case Poll:
		return "poll"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}
