// Package errors provides sentinel errors and custom error types for the prship application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchDiverged indicates that a branch's local and remote tips disagree
	ErrBranchDiverged = errors.New("branch diverged from remote")

	// ErrBranchExists indicates that a branch already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrStaleRemoteInfo indicates that a force-with-lease push was rejected
	// because the remote branch changed since it was last fetched
	ErrStaleRemoteInfo = errors.New("stale info")

	// ErrBranchNotMerged indicates that a branch deletion was refused because
	// the branch has commits not reachable from its base
	ErrBranchNotMerged = errors.New("branch not fully merged")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// BranchDivergedError represents an error when a branch's local tip and its
// remote counterpart disagree. Operations that would build on the local tip
// must refuse rather than silently drop collaborator commits.
type BranchDivergedError struct {
	BranchName string
	LocalSHA   string
	RemoteSHA  string
}

func (e *BranchDivergedError) Error() string {
	return fmt.Sprintf("branch %s has diverged from its remote (local %s, remote %s); sync it before branching from it",
		e.BranchName, shortSHA(e.LocalSHA), shortSHA(e.RemoteSHA))
}

// Is returns true if the target error is ErrBranchDiverged
func (e *BranchDivergedError) Is(target error) bool {
	return target == ErrBranchDiverged
}

// NewBranchDivergedError creates a new BranchDivergedError
func NewBranchDivergedError(branchName, localSHA, remoteSHA string) *BranchDivergedError {
	return &BranchDivergedError{
		BranchName: branchName,
		LocalSHA:   localSHA,
		RemoteSHA:  remoteSHA,
	}
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// GraphiteCommandError represents an error from a gt command execution
type GraphiteCommandError struct {
	Args   []string
	Stdout string
	Stderr string
	Err    error
}

func (e *GraphiteCommandError) Error() string {
	msg := fmt.Sprintf("gt command failed: %v", e.Args)
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GraphiteCommandError) Unwrap() error {
	return e.Err
}

// NewGraphiteCommandError creates a new GraphiteCommandError
func NewGraphiteCommandError(args []string, stdout, stderr string, err error) *GraphiteCommandError {
	return &GraphiteCommandError{
		Args:   args,
		Stdout: stdout,
		Stderr: stderr,
		Err:    err,
	}
}
