package scene

import "github.com/pkg/errors"

// Threading errors through every nested element decoder would bury the actual
// parsing. Instead, decoders panic with a sceneError, and Parse recovers it into
// a returned error.

type sceneError struct {
	err error
}

// Panic with a sceneError.
func fatalf(format string, args ...interface{}) {
	panic(sceneError{errors.Errorf(format, args...)})
}

// Convert a recovered sceneError into an error. Anything else is a real bug and
// keeps panicking.
func handleSceneRecover(r interface{}) error {
	if r != nil {
		if sceneErr, ok := r.(sceneError); ok {
			return sceneErr.err
		}
		panic(r)
	}
	return nil
}
