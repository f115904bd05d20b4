// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observe provides a minimal typed observable cell: a value
// with change listeners, used for reactive plot configuration such as
// the projection space of a plot. It is intentionally single-threaded;
// the host is responsible for any synchronization.
package observe

// Value is an observable cell holding a value of type T.
// Listeners registered with [Value.OnChange] are called,
// in registration order, whenever the value is set.
type Value[T any] struct {
	value     T
	listeners []func(T)
}

// New returns a new observable cell holding the given initial value.
// No listeners are notified of the initial value.
func New[T any](v T) *Value[T] {
	return &Value[T]{value: v}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	return o.value
}

// Set sets the value and notifies all listeners.
func (o *Value[T]) Set(v T) {
	o.value = v
	for _, fn := range o.listeners {
		fn(v)
	}
}

// OnChange registers a listener called with the new value on every Set.
func (o *Value[T]) OnChange(fn func(T)) {
	o.listeners = append(o.listeners, fn)
}
