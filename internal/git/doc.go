// Package git is the version-control gateway. It exposes a narrow Runner
// interface consumed by the submit pipeline and branch managers, backed by
// git subprocesses for mutation and go-git for read-side discovery.
//
// Expected failures (non-zero exits, missing refs, rejected pushes) are
// converted into typed errors at this boundary; nothing above this layer
// handles raw process errors.
package git
