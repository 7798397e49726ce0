package db

import "errors"

// ErrNotFound is returned when a referenced paddler, canoe, or event has
// no matching record. It aborts the mutation that raised it.
var ErrNotFound = errors.New("record not found")
