// Package pipeline drives sequential fragment scoring and reports progress
// over a bounded event channel.
//
// # Event Protocol
//
// For each fragment, in order:
//
//  1. FragmentSelected — the fragment about to be scored
//  2. ScoreReceived    — its score
//  3. CountIncremented — progress tick
//
// After the last fragment, a single BrowseReady event carries every
// evaluation sorted by score, highest first. Ties keep their scoring
// order. A scoring failure stops the run immediately: no BrowseReady is
// emitted and the error is returned to the caller.
//
// # Concurrency
//
// Run is synchronous; callers that want it off the UI goroutine launch it
// themselves. Sends honor context cancellation, so an abandoned consumer
// never wedges the producer. The Scorer port is defined here, on the
// consuming side, so the pipeline can be tested with a stub.
package pipeline
