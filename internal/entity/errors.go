package entity

import "errors"

// ErrNotFound is returned for both a missing row and a row owned by another
// trainer. The two cases are deliberately indistinguishable to callers.
var ErrNotFound = errors.New("not found or access denied")

var ErrUnauthorized = errors.New("invalid or missing API token")
