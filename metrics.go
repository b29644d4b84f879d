package fsm

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric definitions with appropriate labels.
var (
	// transitionsTotal tracks committed transitions.
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_transitions_total",
		Help: "Total number of committed transitions by machine, from_state, to_state, and event",
	}, []string{"machine", "from_state", "to_state", "event"})

	// dispatchFailuresTotal tracks failed dispatches by reason.
	dispatchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_dispatch_failures_total",
		Help: "Total number of failed dispatches by machine and reason",
	}, []string{"machine", "reason"})
)

// Failure reason label values.
const (
	reasonDone              = "done"
	reasonInvalidTransition = "invalid_transition"
	reasonGuardRejected     = "guard_rejected"
	reasonActionError       = "action_error"
	reasonHookError         = "hook_error"
)

// metricLabel renders an opaque state or event value as a label.
func metricLabel(v any) string {
	s := fmt.Sprintf("%v", v)
	if s == "" {
		return "none"
	}

	return s
}
