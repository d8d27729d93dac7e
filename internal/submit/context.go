package submit

import (
	"context"

	"prship.dev/prship/internal/ai"
	"prship.dev/prship/internal/branches"
	"prship.dev/prship/internal/git"
	"prship.dev/prship/internal/github"
	"prship.dev/prship/internal/graphite"
	"prship.dev/prship/internal/tui"
)

// Options contains the explicit configuration for one submit run. The
// pipeline reads nothing from the process environment mid-execution; every
// knob is resolved into this struct before the runner starts.
type Options struct {
	// UseGraphite selects the stack-first flow and the Graphite-backed
	// branch manager
	UseGraphite bool

	// Trunk is the base branch for the pull request, as recorded at init.
	// Empty means discover the remote default branch.
	Trunk string

	// Draft creates the pull request as a draft
	Draft bool

	// CommitMessage is used when committing uncommitted changes; empty
	// means a message is synthesized from the branch name
	CommitMessage string

	// Title and Body override generated PR metadata when non-empty
	Title string
	Body  string

	// Labels are added to the pull request during finalization
	Labels []string
}

// Context carries the collaborators for one pipeline run. It is immutable
// for the duration of the run; steps hold no state of their own.
type Context struct {
	Ctx      context.Context
	Git      git.Runner
	GitHub   github.Client
	Graphite graphite.Client
	Branches branches.Manager
	AI       ai.Client // nil disables AI generation
	Splog    *tui.Splog
	UI       tui.SubmitUI // nil disables progress display
	Opts     Options
}

func (c *Context) debugf(format string, args ...interface{}) {
	if c.Splog != nil {
		c.Splog.Debug(format, args...)
	}
}

func (c *Context) stepStarted(name string) {
	if c.UI != nil {
		c.UI.StepStarted(name)
	}
}

func (c *Context) stepFinished(name string, err error) {
	if c.UI != nil {
		c.UI.StepFinished(name, err)
	}
}
