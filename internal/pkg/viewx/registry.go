// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package viewx

import (
	"sync/atomic"
	"time"

	"github.com/ecodeclub/ekit/syncx"
)

type entry[V any] struct {
	val V
	// 最近一次访问的时间，UnixMilli
	touched atomic.Int64
}

// Registry 管理页面打开期间的临时状态，页面关闭或者长时间不访问的时候丢弃
type Registry[K comparable, V any] struct {
	views syncx.Map[K, *entry[V]]
	now   func() time.Time
}

func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return NewRegistryWithClock[K, V](time.Now)
}

func NewRegistryWithClock[K comparable, V any](now func() time.Time) *Registry[K, V] {
	return &Registry[K, V]{now: now}
}

// Open 返回 key 对应的视图，不存在就用 create 创建一个
func (r *Registry[K, V]) Open(key K, create func() V) V {
	e, ok := r.views.Load(key)
	if !ok {
		// 存进去之前先记录访问时间，避免刚创建就被 Sweep 丢弃
		fresh := &entry[V]{val: create()}
		r.touch(fresh)
		e, _ = r.views.LoadOrStore(key, fresh)
	}
	r.touch(e)
	return e.val
}

func (r *Registry[K, V]) Get(key K) (V, bool) {
	e, ok := r.views.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	r.touch(e)
	return e.val, true
}

// Close 丢弃视图，返回视图之前是否存在
func (r *Registry[K, V]) Close(key K) bool {
	_, ok := r.views.LoadAndDelete(key)
	return ok
}

// Range 遍历视图，不会刷新访问时间
func (r *Registry[K, V]) Range(fn func(key K, val V) bool) {
	r.views.Range(func(key K, e *entry[V]) bool {
		return fn(key, e.val)
	})
}

// Sweep 丢弃超过 idle 没有访问的视图，返回丢弃的个数
func (r *Registry[K, V]) Sweep(idle time.Duration) int {
	deadline := r.now().Add(-idle).UnixMilli()
	cnt := 0
	r.views.Range(func(key K, e *entry[V]) bool {
		if e.touched.Load() < deadline {
			r.views.Delete(key)
			cnt++
		}
		return true
	})
	return cnt
}

func (r *Registry[K, V]) Len() int {
	cnt := 0
	r.views.Range(func(_ K, _ *entry[V]) bool {
		cnt++
		return true
	})
	return cnt
}

func (r *Registry[K, V]) touch(e *entry[V]) {
	e.touched.Store(r.now().UnixMilli())
}
