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
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/feedsync/internal/article"
)

type User struct {
	ID     string
	Name   string
	Avatar string
}

// Comment 评论树上的一个节点，Replies 是后端返回的回复，顺序保持不变
type Comment struct {
	ID      string
	Author  User
	Content string
	Media   string
	// ParentID 回复的评论，顶层评论为空
	ParentID  string
	Replies   []Comment
	Likes     []string
	CreatedAt time.Time
}

func (c Comment) LikedBy(userID string) bool {
	return slice.Contains(c.Likes, userID)
}

// Target 评论所属的内容
type Target struct {
	Kind   article.Kind
	ItemID string
}

var (
	ErrInvalidKind  = errors.New("未知的内容类型")
	ErrEmptyItemID  = errors.New("内容 ID 不能为空")
	ErrEmptyContent = errors.New("评论内容不能为空")
)

func (t Target) Validate() error {
	if t.Kind != article.KindArticle && t.Kind != article.KindReel {
		return ErrInvalidKind
	}
	if t.ItemID == "" {
		return ErrEmptyItemID
	}
	return nil
}

// Media 评论附带的一张图片
type Media struct {
	Name string
	Data []byte
}

// Draft 正在编辑的评论
type Draft struct {
	Text  string
	Media *Media
}

// Empty 去掉空白之后没有文字也没有图片
func (d Draft) Empty() bool {
	return strings.TrimSpace(d.Text) == "" && d.Media == nil
}

// NewComment 提交给后端的评论，ItemID 和 ParentID 只会有一个
type NewComment struct {
	Target   Target
	ParentID string
	UserID   string
	Content  string
	Media    *Media
}
