// Package emitter owns the single observable effect of the hello binary.
//
// Ownership boundary:
// - the fixed greeting bytes
// - one write to the supplied sink
// - classification of a rejected write
package emitter
