package reservation

var allowedTransitions = map[Status][]Status{
	StatusPending:     {StatusApproved, StatusCancelled},
	StatusApproved:    {StatusForDelivery, StatusForPickup, StatusCompleted, StatusCancelled},
	StatusForDelivery: {StatusCompleted},
	StatusForPickup:   {StatusCompleted},
}

// CanTransition reports whether to is reachable from from in one step.
// Completed and cancelled have no outgoing edges.
func CanTransition(from, to Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses reachable from s.
func NextStatuses(s Status) []Status {
	next := allowedTransitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}
