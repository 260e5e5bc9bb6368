package component

import "errors"

// ErrInvalidArgument is returned (or panicked with) when a required
// collaborator is missing or a dimension is not positive.
var ErrInvalidArgument = errors.New("invalid argument")
