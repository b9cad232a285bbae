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

package domain

import (
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
)

// Kind 内容类型，文章和短视频共用一套列表和评论逻辑
type Kind string

const (
	KindArticle Kind = "article"
	KindReel    Kind = "reel"
)

func (k Kind) Valid() bool {
	return k == KindArticle || k == KindReel
}

// Resource 后端的资源路径
func (k Kind) Resource() string {
	if k == KindReel {
		return "reels"
	}
	return "articles"
}

// RefField 创建评论时用来关联内容的字段名
func (k Kind) RefField() string {
	if k == KindReel {
		return "reelId"
	}
	return "articleId"
}

type User struct {
	ID     string
	Name   string
	Avatar string
}

// Item 一篇文章或者一条短视频
type Item struct {
	ID      string
	Kind    Kind
	Author  User
	Content string
	Media   []string
	// Likes 点赞用户的 ID，不会重复
	Likes        []string
	CommentCount int
	// Scope 可见范围，例如 "Công khai"、"Bạn bè"
	Scope     string
	HashTags  []string
	CreatedAt time.Time
}

func (i Item) LikedBy(userID string) bool {
	return slice.Contains(i.Likes, userID)
}

// ToggleLike 切换 userID 的点赞状态，返回切换之后是否已点赞
func (i *Item) ToggleLike(userID string) bool {
	if i.LikedBy(userID) {
		i.Likes = slice.FilterMap(i.Likes, func(_ int, src string) (string, bool) {
			return src, src != userID
		})
		return false
	}
	likes := make([]string, 0, len(i.Likes)+1)
	likes = append(likes, i.Likes...)
	i.Likes = append(likes, userID)
	return true
}

// Apply 只修改编辑允许修改的字段
func (i *Item) Apply(e Edit) {
	i.Content = e.Content
	i.Scope = e.Scope
	i.HashTags = e.HashTags
}

type Edit struct {
	Content  string
	Scope    string
	HashTags []string
}

// ScopeType 列表的范围
type ScopeType string

const (
	ScopeGlobal  ScopeType = "global"
	ScopeProfile ScopeType = "profile"
	ScopePage    ScopeType = "page"
	ScopeGroup   ScopeType = "group"
)

var (
	ErrInvalidKind  = errors.New("未知的内容类型")
	ErrInvalidScope = errors.New("未知的列表范围")
	ErrEmptyScopeID = errors.New("列表范围缺少 ID")
)

// Feed 一个列表，例如全站动态或者某个小组的帖子
type Feed struct {
	Kind    Kind
	Scope   ScopeType
	ScopeID string
}

func (f Feed) Validate() error {
	if !f.Kind.Valid() {
		return ErrInvalidKind
	}
	switch f.Scope {
	case ScopeGlobal:
		return nil
	case ScopeProfile, ScopePage, ScopeGroup:
		if f.ScopeID == "" {
			return ErrEmptyScopeID
		}
		return nil
	default:
		return ErrInvalidScope
	}
}
