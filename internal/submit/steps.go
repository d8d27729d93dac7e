package submit

import "fmt"

// prepareState discovers the working directory facts the rest of the
// pipeline builds on: repo root, current branch, trunk, and the PR base.
// Pure discovery, no gateway mutation; running it twice on an unchanged
// working directory yields identical output.
func prepareState(c *Context, st State) (State, *Error) {
	root, err := c.Git.GetRepoRoot()
	if err != nil {
		return st, newError(ErrValidation, st, "failed to resolve repository root: %v", err)
	}

	branch, err := c.Git.GetCurrentBranch(c.Ctx)
	if err != nil {
		return st, newError(ErrValidation, st, "failed to resolve current branch: %v", err)
	}

	// the trunk resolved at entry wins; fall back to remote HEAD discovery
	trunk := c.Opts.Trunk
	if trunk == "" {
		trunk, err = c.Git.GetDefaultBranch(c.Ctx)
		if err != nil {
			return st, newError(ErrValidation, st, "failed to resolve trunk branch: %v", err)
		}
	}

	if branch == trunk {
		return st, newError(ErrValidation, st, "refusing to submit from trunk branch %s; create a feature branch first", trunk)
	}

	next := st.clone()
	next.RepoRoot = root
	next.Branch = branch
	next.Trunk = trunk
	next.BaseBranch = trunk
	return next, nil
}

// commitWIP commits uncommitted changes, or verifies the branch already has
// commits to submit relative to its base.
func commitWIP(c *Context, st State) (State, *Error) {
	dirty, err := c.Git.HasUncommittedChanges(c.Ctx)
	if err != nil {
		return st, newError(ErrValidation, st, "failed to read working tree status: %v", err)
	}

	if !dirty {
		ahead, err := c.Git.CommitsAhead(c.Ctx, st.BaseBranch, st.Branch)
		if err != nil {
			return st, newError(ErrValidation, st, "failed to count commits on %s: %v", st.Branch, err)
		}
		if ahead == 0 {
			return st, newError(ErrNoCommits, st, "nothing to submit: working tree is clean and %s has no commits beyond %s", st.Branch, st.BaseBranch)
		}
		return st, nil
	}

	message := c.Opts.CommitMessage
	if message == "" {
		message = fmt.Sprintf("wip: changes on %s", st.Branch)
	}

	if err := c.Git.StageAll(c.Ctx); err != nil {
		return st, newError(ErrValidation, st, "failed to stage changes: %v", err)
	}
	if err := c.Git.Commit(c.Ctx, message); err != nil {
		return st, newError(ErrValidation, st, "failed to commit changes: %v", err)
	}

	c.debugf("committed working tree changes on %s", st.Branch)

	next := st.clone()
	next.CommittedWIP = true
	return next, nil
}

// extractDiff fetches the diff between the branch and its base from the
// hosting gateway for use in PR description generation.
func extractDiff(c *Context, st State) (State, *Error) {
	if st.BaseBranch == "" {
		return st, newError(ErrValidation, st, "base branch not populated before diff extraction")
	}

	owner, repo := c.GitHub.GetOwnerRepo()
	diff, err := c.GitHub.GetDiff(c.Ctx, owner, repo, st.BaseBranch, st.Branch)
	if err != nil {
		return st, newError(ErrValidation, st, "failed to fetch diff %s..%s: %v", st.BaseBranch, st.Branch, err)
	}

	next := st.clone()
	next.DiffContent = diff
	return next, nil
}

// enhanceWithGraphite attaches the stack visualization link to the PR body.
// Best effort by design: the PR already exists by the time this runs, so a
// metadata failure returns the prior state unchanged rather than an error.
func enhanceWithGraphite(c *Context, st State) (State, *Error) {
	if !st.UseGraphite || c.Graphite == nil {
		return st, nil
	}
	if st.PRNumber == nil {
		return st, nil
	}

	owner, repo := c.GitHub.GetOwnerRepo()
	url, err := c.Graphite.GetStackMetadataURL(c.Ctx, owner, repo, *st.PRNumber)
	if err != nil {
		c.debugf("skipping stack metadata for PR %d: %v", *st.PRNumber, err)
		return st, nil
	}

	next := st.clone()
	next.GraphiteURL = url
	next.Body = st.Body + fmt.Sprintf("\n\n---\n[View stack on Graphite](%s)", url)
	return next, nil
}

// finalizePR pushes the final title, body, and labels to the hosting-side
// PR record.
func finalizePR(c *Context, st State) (State, *Error) {
	if st.PRNumber == nil {
		return st, newError(ErrValidation, st, "pull request number not populated before finalization")
	}

	owner, repo := c.GitHub.GetOwnerRepo()
	opts := asUpdateOptions(st)
	if err := c.GitHub.UpdatePullRequest(c.Ctx, owner, repo, *st.PRNumber, opts); err != nil {
		return st, newError(ErrPRCreationFailed, st, "failed to finalize PR %d: %v", *st.PRNumber, err)
	}

	if len(st.Labels) > 0 {
		if err := c.GitHub.AddLabels(c.Ctx, owner, repo, *st.PRNumber, st.Labels); err != nil {
			return st, newError(ErrPRCreationFailed, st, "failed to add labels to PR %d: %v", *st.PRNumber, err)
		}
	}

	return st, nil
}
