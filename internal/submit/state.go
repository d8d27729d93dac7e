package submit

// State is the immutable record threaded through the pipeline. Each step
// receives the state produced by its predecessor and returns a new value;
// nothing is mutated in place, and a field populated by one step is never
// un-populated by a later one.
type State struct {
	// Discovery (step 1)
	RepoRoot   string
	Branch     string
	Trunk      string
	BaseBranch string

	// Working tree (step 2)
	CommittedWIP bool

	// Publication (step 3)
	PRNumber *int
	PRURL    string

	// Diff and metadata (steps 4-6)
	DiffContent string
	Title       string
	Body        string

	// Stack enhancement (step 7)
	GraphiteURL string

	// Flags fixed at pipeline start
	UseGraphite bool
	Draft       bool
	Labels      []string
}

// clone returns a structural copy of the state. Pointer and slice fields
// are duplicated so the copy shares nothing with the original.
func (s State) clone() State {
	next := s
	if s.PRNumber != nil {
		n := *s.PRNumber
		next.PRNumber = &n
	}
	if s.Labels != nil {
		next.Labels = append([]string(nil), s.Labels...)
	}
	return next
}

// withPR returns a copy with the pull request number and URL populated
func (s State) withPR(number int, url string) State {
	next := s.clone()
	next.PRNumber = &number
	next.PRURL = url
	return next
}
