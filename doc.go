// Package offset provides closed-form offset bisectors and vertex solvers
// for generalized Voronoi diagrams whose sites are points, lines and
// circular arcs.
//
// # Sites and offsets
//
// A [Site] is one of three value types:
//   - [Point], a point site,
//   - [Line], a directed line a·x + b·y + c = 0 with a² + b² = 1,
//   - [Circle], a circle or arc with an orientation.
//
// Every site has an offset: the curve of points at offset distance t from
// it. Diagram construction sweeps t upward from zero for all sites at once,
// and Voronoi edges are traced by points that lie on two sites' offsets for
// the same t. A point site is the degenerate circle with radius zero; the
// bisector formulas never treat it separately.
//
// Construct lines and circles with [NewLine], [LineThrough] and [NewCircle],
// which reject unnormalized lines and negative radii. [Segment] and [Arc]
// describe the boundary pieces those sites usually come from.
//
// # Bisectors
//
// [LineLine], [CircleCircle] and [CircleLine] reduce a pair of sites to a
// [Bisector]: eight coefficients per axis and a parameter interval
// [TMin, TMax]. [New] dispatches on the sites' kinds. Bisectors are
// evaluated with [Bisector.Points], which yields two points, one per branch
// of the square root. The kernel does not guess which branch a diagram
// needs; [Bisector.Nearest] chooses by proximity to a caller-supplied
// reference point. [Bisector.SampleRange] and [Bisector.Polyline] produce
// polyline approximations for rendering.
//
// The defining property of a bisector is that for every t in its interval
// both points lie at offset distance t from both sites. [Bisector.Check]
// reports how far a point is from satisfying that.
//
// # Apexes
//
// A line segment's endpoint is a site of its own, and the ray from the
// endpoint orthogonal to the segment, the [Separator], is equidistant from
// both. [ApexLine] and [ApexPoint] intersect a separator with the offsets of
// a third site directly, without iterative root finding. [ApexPPP] places
// the vertex of three point sites.
//
// # Errors
//
// Failures are reported as [*GeometryError] values wrapping one of
// [ErrDegenerate], [ErrDomain], [ErrInvalidSite] and [ErrNoSolution].
//
// # Literature
//
//   - M. Held, On the Computational Geometry of Pocket Machining, 1991.
//   - K. Sugihara and M. Iri, Construction of the Voronoi diagram for "one
//     million" generators in single-precision arithmetic, 1992.
//
// All functions are pure and safe for concurrent use.
package offset
