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

	"github.com/ecodeclub/feedsync/internal/comment/internal/domain"
	"github.com/ecodeclub/feedsync/internal/pkg/snowflake"
)

// Thread 一个内容下打开的评论区，包括评论树和正在编辑的草稿
type Thread struct {
	mu      sync.Mutex
	roots   []domain.Comment
	loaded  bool
	applied snowflake.Stamp
	draft   domain.Draft
}

func NewThread() *Thread {
	return &Thread{}
}

// Snapshot 拍平后的评论和总数
func (t *Thread) Snapshot() (domain.Thread, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.NewThread(t.roots), t.loaded
}

// Apply 用重新拉取的评论树整体替换，stamp 不比已经应用的新就丢弃
func (t *Thread) Apply(stamp snowflake.Stamp, roots []domain.Comment) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !stamp.Newer(t.applied) {
		return false
	}
	t.applied = stamp
	t.roots = roots
	t.loaded = true
	return true
}

func (t *Thread) Find(id string) (domain.Comment, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.Find(t.roots, id)
}

func (t *Thread) Draft() domain.Draft {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.draft
}

func (t *Thread) SetDraft(d domain.Draft) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.draft = d
}

// ClearDraft 只有草稿还是提交时的那一份才清空，提交过程中用户可能又改过
func (t *Thread) ClearDraft(submitted domain.Draft) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !sameDraft(t.draft, submitted) {
		return false
	}
	t.draft = domain.Draft{}
	return true
}

func sameDraft(a, b domain.Draft) bool {
	if a.Text != b.Text {
		return false
	}
	return a.Media == b.Media
}
