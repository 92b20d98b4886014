package core

import (
	"fmt"
	"reflect"
	"sync"
)

// Container is the shared service container handed to every module. Modules
// publish services during Init and look up what their dependencies
// published. The phase barriers serialize all writers, so reads after the
// init phase never contend.
type Container interface {
	Set(key any, val any)
	Get(key any) (any, bool)
	MustGet(key any) any
}

type container struct {
	mu  sync.RWMutex
	reg map[any]any
}

func NewContainer() Container {
	return &container{reg: make(map[any]any)}
}

func (c *container) Set(key, val any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reg[key] = val
}

func (c *container) Get(key any) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.reg[key]
	return v, ok
}

func (c *container) MustGet(key any) any {
	v, ok := c.Get(key)
	if !ok {
		panic(fmt.Errorf("container: missing service %v (%T)", key, key))
	}
	return v
}

// TypeKey keys a container entry by its Go type.
type TypeKey[T any] struct{}

// Put stores v under its type.
func Put[T any](c Container, v T) { c.Set(TypeKey[T]{}, v) }

// Get retrieves the value stored under T, panicking when absent or of the
// wrong type.
func Get[T any](c Container) T {
	raw := c.MustGet(TypeKey[T]{})
	v, ok := raw.(T)
	if !ok {
		panic(fmt.Errorf("container: wrong type. have=%T want=%v", raw, reflect.TypeOf((*T)(nil)).Elem()))
	}
	return v
}

// Lookup is the non-panicking variant of Get.
func Lookup[T any](c Container) (T, bool) {
	raw, ok := c.Get(TypeKey[T]{})
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}
