package submit

import (
	"fmt"
	"strings"

	"prship.dev/prship/internal/ai"
	"prship.dev/prship/internal/github"
)

// generateTitle resolves the PR title: an explicit override wins, then AI
// generation from the extracted diff, then a title synthesized from the
// branch name. When the AI produces a body alongside the title, both are
// captured here so the body step does not call the service twice.
func generateTitle(c *Context, st State) (State, *Error) {
	next := st.clone()

	if c.Opts.Title != "" {
		next.Title = c.Opts.Title
		if c.Opts.Body != "" {
			next.Body = c.Opts.Body
		}
		return next, nil
	}

	if c.AI != nil {
		title, body, err := c.AI.GeneratePRDescription(c.Ctx, &ai.PRContext{
			BranchName:       st.Branch,
			ParentBranchName: st.BaseBranch,
			TrunkBranchName:  st.Trunk,
			CodeDiff:         st.DiffContent,
		})
		if err == nil && title != "" {
			next.Title = title
			if body != "" && c.Opts.Body == "" {
				next.Body = body
			}
			return next, nil
		}
		c.debugf("AI title generation unavailable, synthesizing: %v", err)
	}

	next.Title = titleFromBranch(st.Branch)
	return next, nil
}

// generateBody resolves the PR body: an explicit override wins, then
// whatever the title step captured, then a summary synthesized from the
// diff content.
func generateBody(c *Context, st State) (State, *Error) {
	next := st.clone()

	if c.Opts.Body != "" {
		next.Body = c.Opts.Body
		return next, nil
	}

	if st.Body != "" {
		return next, nil
	}

	next.Body = bodyFromDiff(st)
	return next, nil
}

// titleFromBranch turns "fix/null-deref-parser" into "Fix null deref parser"
func titleFromBranch(branch string) string {
	name := branch
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = strings.TrimSpace(name)
	if name == "" {
		return branch
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// bodyFromDiff builds a minimal change summary from the unified diff
func bodyFromDiff(st State) string {
	files := changedFilesFromDiff(st.DiffContent)

	var b strings.Builder
	fmt.Fprintf(&b, "## Summary\n\nChanges on `%s` targeting `%s`.\n", st.Branch, st.BaseBranch)
	if len(files) > 0 {
		b.WriteString("\n## Changed Files\n\n")
		for _, file := range files {
			fmt.Fprintf(&b, "- `%s`\n", file)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// changedFilesFromDiff extracts the touched paths from "diff --git" headers
func changedFilesFromDiff(diff string) []string {
	var files []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(diff, "\n") {
		if !strings.HasPrefix(line, "diff --git ") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		file := strings.TrimPrefix(parts[3], "b/")
		if !seen[file] {
			files = append(files, file)
			seen[file] = true
		}
	}
	return files
}

// asCreateOptions builds the hosting-gateway create request. The body is
// left empty at creation; the finalize step writes the generated one.
func asCreateOptions(st State, title string) github.CreatePROptions {
	return github.CreatePROptions{
		Title: title,
		Head:  st.Branch,
		Base:  st.BaseBranch,
		Draft: st.Draft,
	}
}

// asUpdateOptions converts the final state into a hosting-gateway update
func asUpdateOptions(st State) github.UpdatePROptions {
	title := st.Title
	body := st.Body
	return github.UpdatePROptions{
		Title: &title,
		Body:  &body,
	}
}
