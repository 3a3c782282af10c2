// Package tui is the interactive cobweb explorer.
//
// The explorer animates the staircase construction on a braille canvas
// while live diagnostics (period, Lyapunov exponent, regime) track the
// current parameter point:
//
//   - [Model]: Bubble Tea model driving the animation
//   - [Run]: constructs the model and runs the program
//
// # Key Bindings
//
//	Left/Right - Nudge the growth parameter r
//	Up/Down    - Nudge the initial state x0
//	[ ]        - Fewer/more staircase steps
//	Space      - Pause/Resume
//	P          - Cycle presets
//	T          - Cycle color themes
//	G          - Toggle GIF recording
//	R          - Replay the staircase
//	?          - Help overlay
//
// # Recording
//
// The G key toggles GIF recording of the canvas; stopping writes
// cobweb.gif to the current directory.
package tui
