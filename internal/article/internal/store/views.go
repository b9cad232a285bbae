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

	"github.com/ecodeclub/feedsync/internal/article/internal/domain"
	"github.com/ecodeclub/feedsync/internal/pkg/viewx"
)

// ViewKey 每个登录用户的每个列表各自一份，不会跨用户共享
type ViewKey struct {
	Uid  int64
	Feed domain.Feed
}

type Views struct {
	registry *viewx.Registry[ViewKey, *ListStore]
}

func NewViews() *Views {
	return &Views{registry: viewx.NewRegistry[ViewKey, *ListStore]()}
}

func NewViewsWithClock(now func() time.Time) *Views {
	return &Views{registry: viewx.NewRegistryWithClock[ViewKey, *ListStore](now)}
}

func (v *Views) Open(key ViewKey) *ListStore {
	return v.registry.Open(key, NewListStore)
}

func (v *Views) Get(key ViewKey) (*ListStore, bool) {
	return v.registry.Get(key)
}

func (v *Views) Close(key ViewKey) bool {
	return v.registry.Close(key)
}

// Each 遍历 uid 打开的所有 kind 类型的列表
func (v *Views) Each(uid int64, kind domain.Kind, fn func(key ViewKey, s *ListStore)) {
	v.registry.Range(func(key ViewKey, s *ListStore) bool {
		if key.Uid == uid && key.Feed.Kind == kind {
			fn(key, s)
		}
		return true
	})
}

func (v *Views) Sweep(idle time.Duration) int {
	return v.registry.Sweep(idle)
}
