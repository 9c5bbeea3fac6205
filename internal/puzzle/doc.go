// Package puzzle holds the types every daily solver shares: the answer
// shape returned to the application and the error taxonomy used to reject
// malformed input.
//
// Solvers never panic on bad input. A line or cell that does not match the
// expected grammar is reported as an *InputError, which matches
// ErrMalformedInput under errors.Is. A maximum or minimum query over an
// empty candidate set is reported as ErrEmptyResult instead of defaulting to
// zero.
package puzzle
