// Package executor runs a batch of independent puzzle jobs with a bounded
// number of workers.
//
// Each job is solved to completion by a single goroutine; the engines
// themselves are sequential. The first failing job cancels the batch
// context so that jobs not yet started are skipped, and the error of that
// job is returned. Results are reported in the order the jobs were given,
// regardless of which worker finished first.
package executor
