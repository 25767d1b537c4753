// Package geom defines the value types shared by every layer of the
// router: integer grid points, the unit-step segments between them,
// and the fixed six-direction neighborhood of the 3D grid.
//
// Points and segments are plain value objects: no pointers, no
// identity beyond their coordinates, safe to use as map keys and to
// copy freely across goroutines.
package geom
