package domain

// TraversalEntry is one filesystem node yielded by the walk.
type TraversalEntry struct {
	Path  string
	IsDir bool
}

// Outcome classifies what the resolver decided about one traversal entry.
type Outcome int

const (
	// OutcomeSkip marks an entry that does not yield a new candidate.
	// Skips are expected control flow, not errors.
	OutcomeSkip Outcome = iota
	// OutcomeCandidate marks an entry that resolved to a virtualenv path.
	OutcomeCandidate
	// OutcomeFailed marks a project whose environment could not be
	// assessed. The operator should see these.
	OutcomeFailed
)

// Resolution is the tagged result of resolving one traversal entry.
type Resolution struct {
	Outcome Outcome

	// Venv is the resolved virtualenv root, set for OutcomeCandidate.
	Venv string

	// Project is the project name parsed from the marker file, when known.
	Project string

	// Reason carries the skip reason or the failure detail.
	Reason string
}

// Skip creates a skip resolution.
func Skip(reason string) Resolution {
	return Resolution{Outcome: OutcomeSkip, Reason: reason}
}

// Candidate creates a candidate resolution for a virtualenv path.
func Candidate(venv, project string) Resolution {
	return Resolution{Outcome: OutcomeCandidate, Venv: venv, Project: project}
}

// Failed creates a failed resolution with a diagnostic for the operator.
func Failed(reason string) Resolution {
	return Resolution{Outcome: OutcomeFailed, Reason: reason}
}
