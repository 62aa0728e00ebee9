// Package viz provides terminal-based visualization for propeller runs.
//
// The package renders ascii charts of radial distributions and rpm
// sweeps, plus an interactive sweep viewer using the Bubble Tea
// framework:
//
//   - [RadialPlot], [SweepPlot]: one-shot charts for CLI output
//   - [Model]: interactive viewer that steps through a sweep point by
//     point
//
// # Key Bindings
//
//	Space - Pause/Resume the sweep
//	R     - Restart from the first rpm
//	Q     - Quit
package viz
