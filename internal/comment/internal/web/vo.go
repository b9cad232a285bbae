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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/feedsync/internal/article"
	"github.com/ecodeclub/feedsync/internal/comment/internal/domain"
)

type TargetReq struct {
	// article 或者 reel
	Kind   string `json:"kind"`
	ItemID string `json:"itemId"`
}

func (r TargetReq) toDomain() domain.Target {
	return domain.Target{
		Kind:   article.Kind(r.Kind),
		ItemID: r.ItemID,
	}
}

type LikeReq struct {
	TargetReq
	CommentID string `json:"commentId"`
}

// Media 图片内容用 base64 传输
type Media struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

type DraftReq struct {
	TargetReq
	Content string `json:"content"`
	Media   *Media `json:"media"`
}

func (r DraftReq) toDomain() domain.Draft {
	res := domain.Draft{Text: r.Content}
	if r.Media != nil && len(r.Media.Data) > 0 {
		res.Media = &domain.Media{Name: r.Media.Name, Data: r.Media.Data}
	}
	return res
}

type SubmitReq struct {
	TargetReq
	// 回复的评论，发表顶层评论的时候为空
	ParentID string `json:"parentId"`
}

type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Comment struct {
	ID        string   `json:"id"`
	Author    Author   `json:"author"`
	Content   string   `json:"content"`
	Media     string   `json:"media"`
	ParentID  string   `json:"parentId"`
	Depth     int      `json:"depth"`
	LikeCount int      `json:"likeCount"`
	Liked     bool     `json:"liked"`
	CreatedAt int64    `json:"createdAt"`
	Likes     []string `json:"likes"`
}

type Thread struct {
	List  []Comment `json:"list"`
	Total int       `json:"total"`
}

func newThread(th domain.Thread, userID string) Thread {
	return Thread{
		List: slice.Map(th.Comments, func(_ int, src domain.FlattenedComment) Comment {
			return Comment{
				ID: src.ID,
				Author: Author{
					ID:     src.Author.ID,
					Name:   src.Author.Name,
					Avatar: src.Author.Avatar,
				},
				Content:   src.Content,
				Media:     src.Media,
				ParentID:  src.ParentID,
				Depth:     src.Depth,
				LikeCount: len(src.Likes),
				Liked:     slice.Contains(src.Likes, userID),
				CreatedAt: src.CreatedAt.UnixMilli(),
				Likes:     src.Likes,
			}
		}),
		Total: th.Total,
	}
}
