package cache

import "github.com/pkg/errors"

var ErrNotFound = errors.New("cache: not found")
