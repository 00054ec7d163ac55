// Package evo provides the numeric and statistical primitives shared by the
// genetic-algorithm engine (package ga and its subpackages) and the
// self-organizing-map engine (package som and its subpackages): a
// fixed-length float vector type, a streaming statistics accumulator, a
// read-only population view, and the sentinel errors raised across the
// module.
package evo
