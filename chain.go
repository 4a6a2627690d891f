package stackreport

import "errors"

// Chain flattens the causal chain of err via the standard Unwrap contract:
// err itself first, root cause last. A nil err yields an empty chain. The
// chain is never mutated by this package, only read.
func Chain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		err = errors.Unwrap(err)
	}
	return chain
}
