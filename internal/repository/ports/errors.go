package ports

import "errors"

// ErrConflict reports a uniqueness violation from a backing store that
// has no native constraint error (the in-memory store). The Postgres
// backend surfaces the driver's unique-violation error instead; the
// service layer treats both the same way.
var ErrConflict = errors.New("conflict: record already exists")
