// Package runtime provides the execution context for prship commands.
//
// It bundles the git runner, GitHub and Graphite gateways, logger, and
// repository root so commands receive one value instead of five.
package runtime
