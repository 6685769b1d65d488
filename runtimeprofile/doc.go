// Package runtimeprofile reads and writes the bit-exact, little-endian
// on-disk profile format the BLPP runtime accumulator produces: a header
// table of per-procedure offsets terminated by a zero-path sentinel,
// followed by the concatenated per-procedure path tables themselves.
//
// This package does not implement the runtime accumulator (recording
// path sums as instrumented code executes is out of scope, per spec);
// it implements the companion reader and writer needed to make a
// captured profile inspectable, and a query surface over it.
package runtimeprofile
