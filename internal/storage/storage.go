package storage

import "errors"

var ErrCacheMiss = errors.New("cache miss")
