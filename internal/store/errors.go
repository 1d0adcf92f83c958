package store

import "errors"

// ErrJobNotCached indicates the requested job has never been seen by this
// client and is therefore absent from the local cache.
var ErrJobNotCached = errors.New("job not found in local cache")
