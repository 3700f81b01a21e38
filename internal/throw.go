package internal

import "github.com/pkg/errors"

// Threading errors through the kernel and the tracer for a condition that can
// only arise from a bug would add a ton of noise to the code. Instead, we panic
// with a FaultError, and the public API recovers to convert to an error.

type FaultError struct {
	error
}

func (e FaultError) Unwrap() error {
	return e.error
}

// Panic with a FaultError.
func fatalf(format string, args ...interface{}) {
	panic(FaultError{errors.Errorf(format, args...)})
}

// Convert a recovered FaultError into an error. Anything else is a real panic and
// is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if fault, ok := r.(FaultError); ok {
			return fault
		}
		panic(r)
	}
	return nil
}
