// Package render produces the publication-style PNG figures.
//
// Every figure is drawn with gonum/plot onto a vgimg canvas:
//
//   - [SaveCobweb]: staircase construction of a single orbit
//   - [SaveTimeSeries]: orbit values against iteration index
//   - [SaveBifurcation]: attractor samples over a parameter range,
//     as a density heat map or a point cloud
//   - [SaveLyapunov]: exponent spectrum, optionally stacked above a
//     reference bifurcation diagram
//   - [SaveCascade]: period-doubling landmarks, one panel each
//   - [SaveOverview]: composite sheet combining the above
//
// # Styling
//
// All drawing goes through a [Style] value built once from the
// configuration; there is no package-level mutable state. Color ramps
// are [Gradient] values sampled per segment, so repeated renders of
// the same request produce identical files.
//
// # Dispatch
//
// [Registry] names each figure so commands can render by name:
//
//	reg := render.NewRegistry()
//	fig, err := reg.Get("cobweb")
//	if err != nil {
//		return err
//	}
//	path, err := fig.Make(render.Request{Style: st, OutDir: dir, R: 3.9, X0: 0.1, Steps: 100})
package render
