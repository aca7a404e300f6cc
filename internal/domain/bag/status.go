package bag

import "errors"

var ErrInvalidStatus = errors.New("invalid bag status")

// Status is one node of the linear fulfillment pipeline. Transitions advance
// exactly one step at a time; re-posting the current status is allowed so
// field operators can re-scan a bag and attach a note.
type Status string

const (
	StatusCreated        Status = "created"
	StatusDropped        Status = "dropped"
	StatusPickedUp       Status = "picked_up"
	StatusWashing        Status = "washing"
	StatusDrying         Status = "drying"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
)

// statusOrder is the canonical pipeline order. Index positions drive the
// single-step transition rule.
var statusOrder = []Status{
	StatusCreated,
	StatusDropped,
	StatusPickedUp,
	StatusWashing,
	StatusDrying,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s.index() >= 0
}

func (s Status) index() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether no further transitions are defined.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// Next returns the following pipeline stage, or false from the terminal one.
func (s Status) Next() (Status, bool) {
	i := s.index()
	if i < 0 || i == len(statusOrder)-1 {
		return "", false
	}
	return statusOrder[i+1], true
}

// CanTransitionTo allows exactly one forward step or an idempotent re-post of
// the current status. Backward moves and skips are rejected.
func (s Status) CanTransitionTo(target Status) bool {
	from, to := s.index(), target.index()
	if from < 0 || to < 0 {
		return false
	}
	return to == from || to == from+1
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// AllStatuses returns the pipeline in canonical order.
func AllStatuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}
