// Package main provides the entry point for the ComplyView CLI.
//
// ComplyView reads compliance report snapshots produced by an analysis
// pipeline, and serves summaries, statistics, search, and history over
// the terminal or an HTTP API.
//
// Usage:
//
//	complyview list
//	complyview summary
//	complyview serve --addr :8080
//
// See --help for all available options.
package main

// main is the entry point for ComplyView.
func main() {
	Execute()
}
