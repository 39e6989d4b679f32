package postage

import "errors"

// ErrUnknownKind is returned by New when a Spec names a category that does not exist.
var ErrUnknownKind = errors.New("unknown mail item kind")
