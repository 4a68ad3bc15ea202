// Package render draws the vector geometry of SSB subtitle events onto
// image frames.
//
// The pipeline has three stages.  A [RawPath] holds the geometry of a shape
// as parsed from the script, possibly containing cubic Bézier curves and
// circular arcs.  [Flatten] converts it into a [FlatPath], which only
// contains straight lines.  [Scanlines] then computes which pixels of a
// frame lie inside the path, as a sparse map from rows to pixel [Span]s.
//
// Flattening and scanline conversion are pure functions without shared
// state, and may be called concurrently.  The [Renderer] uses this to
// rasterize the shapes of all active events in parallel, before painting
// them onto a [Frame] in script order.
package render

//go:generate go run ./testcases/export
