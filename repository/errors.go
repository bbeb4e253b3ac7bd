package repository

import "errors"

// ErrSlotFull is returned by CreateIfBelowCapacity when the conditional
// insert finds the slot already at capacity.
var ErrSlotFull = errors.New("slot capacity exhausted")
