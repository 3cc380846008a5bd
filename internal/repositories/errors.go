package repositories

import "errors"

// ErrNotFound is returned when an id does not resolve to a record. Callers
// must be able to tell absence apart from validation failures and from
// genuine storage errors, so repositories never fold the three together.
var ErrNotFound = errors.New("record not found")
