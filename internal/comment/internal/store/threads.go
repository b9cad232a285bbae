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

package store

import (
	"time"

	"github.com/ecodeclub/feedsync/internal/comment/internal/domain"
	"github.com/ecodeclub/feedsync/internal/pkg/viewx"
)

// ThreadKey 每个登录用户在每个内容下各自一份评论区
type ThreadKey struct {
	Uid    int64
	Target domain.Target
}

type Threads struct {
	registry *viewx.Registry[ThreadKey, *Thread]
}

func NewThreads() *Threads {
	return &Threads{registry: viewx.NewRegistry[ThreadKey, *Thread]()}
}

func NewThreadsWithClock(now func() time.Time) *Threads {
	return &Threads{registry: viewx.NewRegistryWithClock[ThreadKey, *Thread](now)}
}

func (t *Threads) Open(key ThreadKey) *Thread {
	return t.registry.Open(key, NewThread)
}

func (t *Threads) Get(key ThreadKey) (*Thread, bool) {
	return t.registry.Get(key)
}

func (t *Threads) Close(key ThreadKey) bool {
	return t.registry.Close(key)
}

func (t *Threads) Sweep(idle time.Duration) int {
	return t.registry.Sweep(idle)
}
