package demostate

import "net/url"

// Navigation query parameters understood by the demo-state controller.
// Both are consumed (stripped from the visible location) as soon as they
// are seen, so a shared demo link survives later navigations that drop
// the query string.
const (
	ParamEnter = "demo"
	ParamExit  = "exitDemo"

	truthy = "true"
)

// Mode is the outcome of inspecting the navigation context.
type Mode int

const (
	// ModeNone: no relevant parameters, the durable flag decides.
	ModeNone Mode = iota
	// ModeEnter: demo=true present, flag must be set.
	ModeEnter
	// ModeExit: exitDemo=true present, flag must be cleared.
	// Exit always wins over enter, even when both are present.
	ModeExit
)

// Decision 纯函数决策结果：flag 如何变、哪些参数需要从地址栏剥离
type Decision struct {
	Mode  Mode
	Strip []string
}

// Decide inspects the query parameters and returns what should happen to the
// durable flag. It is pure: applying the decision (store write, location
// rewrite) is the controller's job.
//
// Exit is checked first so a stale demo=true in the same navigation cannot
// resurrect demo mode.
func Decide(q url.Values) Decision {
	exit := q.Get(ParamExit) == truthy
	enter := q.Get(ParamEnter) == truthy

	switch {
	case exit:
		strip := []string{ParamExit}
		if q.Has(ParamEnter) {
			strip = append(strip, ParamEnter)
		}
		return Decision{Mode: ModeExit, Strip: strip}
	case enter:
		return Decision{Mode: ModeEnter, Strip: []string{ParamEnter}}
	default:
		return Decision{Mode: ModeNone}
	}
}
