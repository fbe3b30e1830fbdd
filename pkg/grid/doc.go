// Package grid implements the placement engine for a drag-and-resize grid.
//
// A [Layout] is a set of rectangular [Item] values on a discrete grid of
// integer cells. The engine keeps layouts collision-free and packed toward
// the top, and it resolves the cascade of displacements that happens when a
// user drags one item into others.
//
// # Operations
//
//   - [Collides], [Layout.FirstCollision], [Layout.AllCollisions]: open-rectangle
//     overlap tests (touching edges do not collide)
//   - [Compact]: gravity-style packing in row-major order
//   - [CorrectBounds]: clamps items into a column count
//   - [MoveElement]: moves one item and displaces whatever it lands on
//   - [MoveAwayFromCollision]: the displacement step used by MoveElement
//   - [ResizeElement]: changes an item's size, optionally rejecting collisions
//
// # Value Semantics
//
// Every operation clones its input before working on it. The caller's slice
// is never modified and the returned layout is the new source of truth.
// Item identity is the ID: no operation drops, adds, or duplicates an item.
//
// # Statics
//
// Items with Static set never move. Other items are routed around them by
// every operation. Bounds correction is the one exception: a static item it
// shifts into something already placed is pushed down until clear.
//
// # Concurrency
//
// Functions are pure and hold no shared state, so concurrent calls on
// distinct layouts are safe. A single Layout value must not be mutated by
// another goroutine while a call is reading it.
package grid
