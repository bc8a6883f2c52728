// Package types defines the small shared enums used across the collision pipeline's
// geometry layer: PointOrientation for turn direction, Relationship for how two shapes
// relate spatially (disjoint, intersecting, containing).
//
// Kept separate from [point] and [linesegment] so that neither depends on the other just
// to share an enum.
package types
