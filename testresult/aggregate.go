package testresult

// AggregateStepStatuses folds per-step statuses into an overall case
// status suggestion. Precedence: any fail wins, then any block, then any
// retest. When every remaining step is pass or na (with at least one
// pass), the case passes. Untested steps otherwise keep the case
// untested; an empty or all-na list is also untested.
func AggregateStepStatuses(steps StepResults) Status {
	if len(steps) == 0 {
		return StatusUntested
	}

	var hasRetest, hasUntested, hasPass bool
	for _, sr := range steps {
		switch sr.Status {
		case StatusFail:
			return StatusFail
		case StatusBlock:
			return StatusBlock
		case StatusRetest:
			hasRetest = true
		case StatusUntested:
			hasUntested = true
		case StatusPass:
			hasPass = true
		}
	}

	switch {
	case hasRetest:
		return StatusRetest
	case hasUntested:
		return StatusUntested
	case hasPass:
		return StatusPass
	default:
		return StatusUntested
	}
}
