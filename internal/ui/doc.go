// Package ui provides the terminal user interface for fraglens.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program with two screens and a one-way
// transition between them. While scoring runs, the gathering screen shows
// the fragment currently being scored, a line chart of recent scores, and
// a progress gauge. Once every fragment is scored the program switches to
// the browsing screen: the selected fragment's code beside a scrollable
// list of all fragments sorted by score. There is no way back.
//
// # Package Structure
//
//   - ui.go:      Run function wrapping the Bubble Tea program
//   - app.go:     Model, Init/Update/View, key dispatch, frame ticks
//   - view.go:    Phase state machine, event application, navigation
//   - render.go:  Screen layouts drawn onto a surface.Buffer
//   - theme.go:   Color themes (synthwave, accessibility)
//   - keys.go:    Key bindings
//   - effects.go: Animation choreography over the fx package
//
// # Event Flow
//
//  1. A listen command blocks on the pipeline's event channel and delivers
//     one event per Update; it is re-issued after each delivery
//  2. view.Apply folds the event into the current phase; a gathering event
//     arriving in browsing (or a second BrowseReady) is a protocol
//     violation and terminates the program with ErrPhase
//  3. A 50ms frame tick drives animation; effects are advanced by
//     wall-clock elapsed time in View, so delayed frames jump ahead
//     rather than slowing the choreography down
//
// # Phases
//
// The gathering screen ignores navigation keys entirely. The browsing
// screen supports line, page, and jump navigation, clamped to the list
// and keeping the selection visible. Theme cycling and quit work in both
// phases.
//
// # Effects
//
// Animation is decorative and theme-gated: the accessibility theme
// disables it. The choreography fades the code pane in, holds, then runs
// a repeating diagonal shine over the chrome outside the panes. Effect
// regions are re-assigned every frame from the rendered layout, so a
// terminal resize retargets the effects immediately.
//
// # Key Bindings
//
//   - q, esc, Ctrl+C: Quit
//   - T:              Cycle color theme (persisted to prefs)
//   - j/k, arrows:    Move selection (browsing)
//   - PgUp/PgDn:      Page selection (browsing)
//   - g/G, Home/End:  Jump to first/last (browsing)
package ui
