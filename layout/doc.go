// Package layout implements a pure-Go flexbox layout engine.
//
// It is a from-scratch re-implementation of CSS Flexible Box Layout Module
// Level 1, extended with absolute positioning, intrinsic (min-content /
// max-content) sizing, percentage resolution, automatic margins, aspect
// ratios, and measurable leaf content such as text.
//
// The engine is a pure function over a tree: given a root node implementing
// [Tree] and an available space, [ComputeLayout] writes a [Layout] into every
// reachable node. It performs no I/O and holds no state beyond the per-node
// [Cache] the tree already owns.
//
// The public entry point is [ComputeLayout]. Everything else in this package
// — the dispatcher, the flexbox algorithm, the leaf sizer, and the rounder —
// exists to make that one call correct and fast.
package layout
