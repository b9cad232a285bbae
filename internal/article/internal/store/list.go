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
	"sync"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/feedsync/internal/article/internal/domain"
	"github.com/ecodeclub/feedsync/internal/pkg/snowflake"
)

// ListStore 一个页面上的内容列表，顺序和后端返回的一致
type ListStore struct {
	mu      sync.RWMutex
	items   []domain.Item
	loaded  bool
	applied snowflake.Stamp
}

func NewListStore() *ListStore {
	return &ListStore{}
}

// Items 返回列表的副本
func (s *ListStore) Items() ([]domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Item, len(s.items))
	copy(res, s.items)
	return res, s.loaded
}

// Apply 用刷新结果整体替换列表。stamp 不比已经应用的新就丢弃，返回是否生效
func (s *ListStore) Apply(stamp snowflake.Stamp, items []domain.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !stamp.Newer(s.applied) {
		return false
	}
	s.applied = stamp
	s.items = items
	s.loaded = true
	return true
}

func (s *ListStore) Get(id string) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Item{}, false
	}
	return s.items[idx], true
}

// Update 原地修改 id 对应的内容，返回修改之后的内容
func (s *ListStore) Update(id string, fn func(item *domain.Item)) (domain.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Item{}, false
	}
	item := s.items[idx]
	fn(&item)
	s.items[idx] = item
	return item, true
}

// Replace 用后端的最新数据整体替换缓存的那一份，列表里没有就忽略
func (s *ListStore) Replace(item domain.Item) bool {
	_, ok := s.Update(item.ID, func(dst *domain.Item) {
		*dst = item
	})
	return ok
}

// Remove 按 id 过滤，其余内容保持原来的相对顺序
func (s *ListStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(id) < 0 {
		return false
	}
	s.items = slice.FilterMap(s.items, func(_ int, src domain.Item) (domain.Item, bool) {
		return src, src.ID != id
	})
	return true
}

func (s *ListStore) indexOf(id string) int {
	return slice.IndexFunc(s.items, func(src domain.Item) bool {
		return src.ID == id
	})
}
