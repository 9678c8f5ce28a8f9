package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

func NewKeyed[T any](prefix string) *Keyed[T] {
	return &Keyed[T]{
		prefix: prefix + ":",
		c:      cache.New(cache.NoExpiration, time.Minute*10),
	}
}

// Keyed is an in-process, typed key-value cache. It is the same shape as
// Singular but addressable by key, for values memoized per request parameter
// (e.g. one assembled domain view per seed).
type Keyed[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	prefix string

	c *cache.Cache
}

func (c *Keyed[T]) key(key string) string {
	return c.prefix + key
}

func (c *Keyed[T]) Get(key string) (T, error) {
	var zero T
	result, ok := c.c.Get(c.key(key))
	if !ok {
		return zero, ErrNotFound
	}
	v, ok := result.(T)
	if !ok {
		return zero, ErrNotFound
	}
	return v, nil
}

func (c *Keyed[T]) Set(key string, value T, expire time.Duration) {
	c.c.Set(c.key(key), value, expire)
}

// MutexGetSet returns the cached value for key, or computes it with
// valueFunc exactly once even under concurrent callers and caches it.
func (c *Keyed[T]) MutexGetSet(key string, valueFunc func() (T, error), expire time.Duration) (T, error) {
	v, err := c.Get(key)
	if err == nil {
		return v, nil
	}
	// onwards, cache key does not exist

	c.m.Lock()
	defer c.m.Unlock()

	v, err = c.Get(key)
	if err == nil {
		return v, nil
	}

	v, err = valueFunc()
	if err != nil {
		return v, err
	}
	c.Set(key, v, expire)
	return v, nil
}

func (c *Keyed[T]) Delete(key string) {
	c.c.Delete(c.key(key))
}

func (c *Keyed[T]) Flush() {
	c.c.Flush()
}
