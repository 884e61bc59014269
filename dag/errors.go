package dag

import "errors"

// ErrInvalidCacheFile is returned internally when an existing on-disk
// file has the wrong length for its epoch; the caller falls through to
// rebuild and never sees this error.
var ErrInvalidCacheFile = errors.New("dag: invalid cache file length")

// ErrTornCacheFile is returned internally when an existing file's
// trailing finished-flag byte is not 1; the caller falls through to
// rebuild and never sees this error.
var ErrTornCacheFile = errors.New("dag: cache file missing finished flag")
