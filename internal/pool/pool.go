// Package pool provides object pooling for go-combiflag parsing.
// Used by the top-level driver for short-bundle expansion scratch space.
package pool

import "sync"

// Pool provides a generic, type-safe object pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Optional reset function called before reuse
}

// NewPool creates a new generic pool with the given factory function.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// StringSlicePool pools string slices for argument rewriting.
type StringSlicePool struct {
	*Pool[[]string]
}

// NewStringSlicePool creates a new string slice pool.
func NewStringSlicePool(defaultCap int) *StringSlicePool {
	return &StringSlicePool{
		Pool: NewPoolWithReset(
			func() *[]string {
				slice := make([]string, 0, defaultCap)
				return &slice
			},
			func(slice *[]string) {
				*slice = (*slice)[:0] // Reset length but keep capacity
			},
		),
	}
}

// GlobalStringSlicePool holds scratch slices for command-line rewriting.
var GlobalStringSlicePool = NewStringSlicePool(32)

// GetStrings retrieves a scratch string slice from the global pool.
func GetStrings() *[]string {
	return GlobalStringSlicePool.Get()
}

// PutStrings returns a scratch slice to the global pool.
func PutStrings(slice *[]string) {
	GlobalStringSlicePool.Put(slice)
}
