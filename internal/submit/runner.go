// Package submit implements the pull-request submission pipeline: an
// ordered, short-circuiting sequence of steps that turns a working
// directory with changes into a published, tracked pull request.
package submit

// StepFunc is a pure state transition: it receives the state produced by
// the preceding step and returns either the next state or a terminal Error.
type StepFunc func(c *Context, st State) (State, *Error)

// Step pairs a state transition with the name shown in progress output
type Step struct {
	Name string
	Run  StepFunc
}

// NewPipeline returns the submit steps in their required order. The
// backend-specific publication step is selected here, once; every other
// step is shared between the two backends.
func NewPipeline(useGraphite bool) []Step {
	return []Step{
		{Name: "prepare", Run: prepareState},
		{Name: "commit changes", Run: commitWIP},
		newDispatchStep(useGraphite),
		{Name: "extract diff", Run: extractDiff},
		{Name: "generate title", Run: generateTitle},
		{Name: "generate description", Run: generateBody},
		{Name: "attach stack metadata", Run: enhanceWithGraphite},
		{Name: "finalize pull request", Run: finalizePR},
	}
}

// StepNames returns the display names of a pipeline's steps in order
func StepNames(steps []Step) []string {
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.Name
	}
	return names
}

// Run executes the pipeline against the given context. Steps run strictly
// in order; the first Error stops execution and is returned with no further
// steps run and no rollback of operations already performed (a completed
// push stays pushed). On success the final state is returned.
//
// Run owns construction of the initial state; no other component builds a
// State from scratch.
func Run(c *Context) (State, *Error) {
	st := State{
		UseGraphite: c.Opts.UseGraphite,
		Draft:       c.Opts.Draft,
		Labels:      append([]string(nil), c.Opts.Labels...),
	}

	steps := NewPipeline(c.Opts.UseGraphite)
	if c.UI != nil {
		c.UI.Start(StepNames(steps))
	}

	for _, step := range steps {
		c.stepStarted(step.Name)
		next, serr := step.Run(c, st)
		if serr != nil {
			c.stepFinished(step.Name, serr)
			if c.UI != nil {
				c.UI.Complete()
			}
			c.debugf("pipeline stopped at %q: %v", step.Name, serr)
			return st, serr
		}
		c.stepFinished(step.Name, nil)
		st = next
	}

	if c.UI != nil {
		c.UI.Complete()
	}
	return st, nil
}
