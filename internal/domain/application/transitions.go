package application

// legalMoves is the single source of truth for the application lifecycle.
// approved <-> deactivated is the only backward edge (reactivation).
var legalMoves = map[Status][]Status{
	StatusDraft:       {StatusSubmitted, StatusWithdrawn},
	StatusSubmitted:   {StatusUnderReview, StatusApproved, StatusRejected, StatusWithdrawn},
	StatusUnderReview: {StatusApproved, StatusRejected, StatusWithdrawn},
	StatusApproved:    {StatusDeactivated},
	StatusDeactivated: {StatusApproved},
	StatusRejected:    nil,
	StatusWithdrawn:   nil,
}

// CanTransition reports whether from -> to is a legal lifecycle move.
func CanTransition(from, to Status) bool {
	for _, s := range legalMoves[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further moves are possible from s.
func Terminal(s Status) bool { return len(legalMoves[s]) == 0 }
