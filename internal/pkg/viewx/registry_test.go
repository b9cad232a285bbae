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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRegistry_Open(t *testing.T) {
	r := NewRegistry[string, *[]int]()
	created := 0
	create := func() *[]int {
		created++
		return &[]int{}
	}
	v1 := r.Open("a", create)
	*v1 = append(*v1, 1)
	v2 := r.Open("a", create)
	assert.Equal(t, 1, created)
	assert.Equal(t, []int{1}, *v2)

	got, ok := r.Get("a")
	assert.True(t, ok)
	assert.Same(t, v1, got)

	_, ok = r.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())

	assert.True(t, r.Close("a"))
	assert.False(t, r.Close("a"))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Sweep(t *testing.T) {
	clock := &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
	r := NewRegistryWithClock[string, int](clock.Now)
	r.Open("old", func() int { return 1 })
	r.Open("touched", func() int { return 2 })
	clock.Add(10 * time.Minute)
	r.Open("new", func() int { return 3 })
	// Get 会刷新访问时间
	_, ok := r.Get("touched")
	assert.True(t, ok)
	clock.Add(time.Minute)

	assert.Equal(t, 1, r.Sweep(5*time.Minute))
	_, ok = r.Get("old")
	assert.False(t, ok)

	keys := map[string]int{}
	r.Range(func(key string, val int) bool {
		keys[key] = val
		return true
	})
	assert.Equal(t, map[string]int{"touched": 2, "new": 3}, keys)
}

func TestRegistry_ConcurrentOpen(t *testing.T) {
	r := NewRegistry[int, *sync.Mutex]()
	var wg sync.WaitGroup
	res := make([]*sync.Mutex, 32)
	for i := 0; i < len(res); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res[i] = r.Open(1, func() *sync.Mutex { return &sync.Mutex{} })
		}(i)
	}
	wg.Wait()
	for _, m := range res {
		assert.Same(t, res[0], m)
	}
}

func TestRegistry_SweepWhileOpening(t *testing.T) {
	clock := &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
	var (
		r        *Registry[string, int]
		sweeping bool
		swept    int
	)
	// 每次读时钟的时候都插入一次 Sweep，模拟定时任务和 Open 并发
	r = NewRegistryWithClock[string, int](func() time.Time {
		if !sweeping {
			sweeping = true
			swept += r.Sweep(time.Minute)
			sweeping = false
		}
		return clock.Now()
	})
	v := r.Open("a", func() int { return 1 })
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, swept)
	got, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, got)
}
