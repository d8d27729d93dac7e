package submit

import (
	"errors"

	prshiperrors "prship.dev/prship/internal/errors"
	"prship.dev/prship/internal/graphite"
)

// newDispatchStep returns the publication step for the selected backend.
// The choice is made once at pipeline construction; no later step re-checks
// which backend is active.
func newDispatchStep(useGraphite bool) Step {
	if useGraphite {
		return Step{Name: "submit stack", Run: stackFirstFlow}
	}
	return Step{Name: "push and create pull request", Run: coreSubmitFlow}
}

// coreSubmitFlow publishes the branch directly: push to the remote, then
// create the pull request via the hosting gateway. This path is the sole
// mechanism that publishes the branch, so any failure here is hard: nothing
// was published.
//
// Re-runs are idempotent: an open PR already attached to the branch is
// reused rather than duplicated.
func coreSubmitFlow(c *Context, st State) (State, *Error) {
	remote := c.Git.GetRemote(c.Ctx)

	if err := c.Git.PushBranch(c.Ctx, st.Branch, remote, false, true); err != nil {
		if errors.Is(err, prshiperrors.ErrStaleRemoteInfo) {
			return st, newError(ErrPushRejected, st, "push of %s rejected: the remote branch changed since it was last fetched; sync and retry, or push with --force", st.Branch)
		}
		return st, newError(ErrPushRejected, st, "failed to push %s: %v", st.Branch, err)
	}

	owner, repo := c.GitHub.GetOwnerRepo()

	existing, err := c.GitHub.GetPullRequestByBranch(c.Ctx, owner, repo, st.Branch)
	if err != nil {
		return st, newError(ErrPRCreationFailed, st, "failed to look up PR for %s: %v", st.Branch, err)
	}
	if existing != nil {
		if existing.Draft != st.Draft {
			c.debugf("PR #%d draft=%v does not match requested draft=%v; leaving it as-is", existing.Number, existing.Draft, st.Draft)
		}
		c.debugf("reusing open PR #%d for %s", existing.Number, st.Branch)
		return st.withPR(existing.Number, existing.HTMLURL), nil
	}

	title := c.Opts.Title
	if title == "" {
		title = titleFromBranch(st.Branch)
	}

	pr, err := c.GitHub.CreatePullRequest(c.Ctx, owner, repo, asCreateOptions(st, title))
	if err != nil {
		return st, newError(ErrPRCreationFailed, st, "failed to create PR for %s: %v", st.Branch, err)
	}

	return st.withPR(pr.Number, pr.HTMLURL), nil
}

// stackFirstFlow delegates publication to the stacking tool: ensure the
// branch is tracked under its base, then let gt submit push the dependency
// chain and open linked pull requests. Same hard-failure policy as the core
// flow.
func stackFirstFlow(c *Context, st State) (State, *Error) {
	if err := c.Branches.TrackBranch(c.Ctx, st.Branch, st.BaseBranch); err != nil {
		return st, newError(ErrGraphite, st, "failed to track %s under %s: %v", st.Branch, st.BaseBranch, err)
	}

	prs, err := c.Graphite.SubmitStack(c.Ctx, graphite.SubmitStackOptions{
		Branch:  st.Branch,
		Draft:   st.Draft,
		Publish: !st.Draft,
	})
	if err != nil {
		return st, newError(ErrGraphite, st, "stack submit failed: %v", err)
	}

	pr, ok := prForBranch(prs, st.Branch)
	if !ok {
		return st, newError(ErrGraphite, st, "stack submit reported no PR for %s", st.Branch)
	}

	return st.withPR(pr.Number, pr.URL), nil
}

// prForBranch picks the stack PR belonging to branch, falling back to the
// last PR in stack order when gt did not label its output lines.
func prForBranch(prs []graphite.StackPR, branch string) (graphite.StackPR, bool) {
	for _, pr := range prs {
		if pr.Branch == branch {
			return pr, true
		}
	}
	if len(prs) > 0 {
		return prs[len(prs)-1], true
	}
	return graphite.StackPR{}, false
}
