package bowyerwatson

import (
	"runtime"

	"github.com/pkg/errors"
)

// Mesh bookkeeping failures can only come from a broken state machine, deep
// inside a step. Rather than thread errors through every mesh operation, we
// panic with an EngineError and the public entry points recover it.

type EngineError error

// Panic with an EngineError.
func fatalf(format string, args ...interface{}) {
	panic(EngineError(errors.Errorf(format, args...)))
}

// Converts a recovered EngineError into an error. Anything else, including Go
// runtime errors, is re-panicked.
func HandleEnginePanicRecover(r interface{}) error {
	if r != nil {
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if engineError, ok := r.(EngineError); ok {
			return engineError
		}
		panic(r)
	}
	return nil
}
