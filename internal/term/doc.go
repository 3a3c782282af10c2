// Package term renders logistic-map figures as braille text for
// terminal output.
//
//   - [Canvas]: braille dot grid, 2x4 dots per character cell
//   - [CobwebSketch], [BifurcationSketch]: one-call string renders
//   - [CanvasImage]: paletted rasterization for GIF recording
//   - [Theme] and the style variables shared by the interactive
//     explorer
//
// The sketches are what the --ascii command flags print; the explorer
// redraws a [Canvas] every tick.
package term
