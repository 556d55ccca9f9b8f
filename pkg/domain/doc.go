// Package domain contains the core data model of the engine: alphabets and
// symbols, the genome encoding of automata (state and transition genes),
// bit-flag types for state roles, validation results and run outcomes, and
// mutation rate configuration.
//
// Everything in this package is plain data with value semantics. Behavior
// that interprets the data (validation, mutation, synthesis, minimization)
// lives in the internal engine packages.
package domain
