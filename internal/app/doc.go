// Package app provides the orchestration layer for the fraglens application.
//
// # Overview
//
// This package wires together configuration, fragment loading, the scoring
// pipeline, and the UI to create the complete fraglens experience. It serves
// as the composition root where all dependencies are initialized and
// connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/fraglens/config.toml
//  2. Apply command-line and environment overrides
//  3. Load all input files up front; a read failure aborts before any
//     scoring request is made
//  4. Window the loaded files into overlapping fragments
//  5. Launch the scoring pipeline in a background goroutine
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read configuration
//	       ├─────> fragment.LoadAll() Read and window input files
//	       ├─────> score.NewClient()  Create scoring HTTP client
//	       ├─────> pipeline.Run()     Background scoring goroutine
//	       └─────> ui.Run()           Start TUI (blocks)
//
//	Background Pipeline Loop:
//	┌─────────────────────────────────────────┐
//	│ pipeline.Run() goroutine                │
//	│  ├─> client.Score() per fragment        │
//	│  └─> events <- FragmentSelected /       │
//	│      ScoreReceived / CountIncremented   │
//	│      └─> UI consumes at its own pace    │
//	└─────────────────────────────────────────┘
//
// # Backpressure
//
// The event channel between the pipeline and the UI is bounded. When the
// UI falls behind, the pipeline blocks on send rather than buffering
// unboundedly; scoring naturally slows to the consumer's pace.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//   - Any input file unreadable (checked before scoring starts)
//   - Scoring endpoint URL invalid
//
// Pipeline errors are delivered to the UI as a Failed event so the
// terminal is restored before the error is reported on stderr. The
// pipeline goroutine is not joined after the UI exits; context
// cancellation unblocks any pending send.
package app
