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
	"time"

	"github.com/ecodeclub/feedsync/internal/pkg/treex"
)

// FlattenedComment 拍平之后的评论，只用来渲染，每次拉取都重新计算
type FlattenedComment struct {
	ID      string
	Author  User
	Content string
	Media   string
	// ParentID 树上的父评论，顶层评论为空
	ParentID  string
	Depth     int
	Likes     []string
	CreatedAt time.Time
}

func replies(c Comment) []Comment {
	return c.Replies
}

func commentID(c Comment) string {
	return c.ID
}

// Flatten 先序遍历，父评论总是排在它所有的回复前面，兄弟评论保持原来的顺序。
// 同一个 ID 只会出现一次，回复链上出现环也能正常结束。
func Flatten(roots []Comment) []FlattenedComment {
	nodes := treex.Flatten(roots, replies, commentID)
	res := make([]FlattenedComment, 0, len(nodes))
	for _, n := range nodes {
		parentID := ""
		if n.Parent >= 0 {
			parentID = nodes[n.Parent].Val.ID
		}
		res = append(res, FlattenedComment{
			ID:        n.Val.ID,
			Author:    n.Val.Author,
			Content:   n.Val.Content,
			Media:     n.Val.Media,
			ParentID:  parentID,
			Depth:     n.Depth,
			Likes:     n.Val.Likes,
			CreatedAt: n.Val.CreatedAt,
		})
	}
	return res
}

// Total 所有层级的评论总数，和 len(Flatten(roots)) 一致
func Total(roots []Comment) int {
	return treex.Count(roots, replies, commentID)
}

// Find 在整棵树里找评论
func Find(roots []Comment, id string) (Comment, bool) {
	return treex.Find(roots, replies, commentID, func(c Comment) bool {
		return c.ID == id
	})
}

// Thread 一个内容的评论，拍平后的列表加上总数
type Thread struct {
	Comments []FlattenedComment
	Total    int
}

func NewThread(roots []Comment) Thread {
	list := Flatten(roots)
	return Thread{Comments: list, Total: len(list)}
}
