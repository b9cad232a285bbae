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

package repository

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/feedsync/internal/comment/internal/domain"
)

type userDTO struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// commentDTO 后端返回的评论，userId 已经展开成用户信息
type commentDTO struct {
	ID           string       `json:"_id"`
	User         userDTO      `json:"userId"`
	Content      string       `json:"content"`
	Img          string       `json:"img"`
	ParentID     string       `json:"parentId"`
	ReplyComment []commentDTO `json:"replyComment"`
	Likes        []string     `json:"likes"`
	CreatedAt    time.Time    `json:"createdAt"`
}

func (d commentDTO) toDomain() domain.Comment {
	return domain.Comment{
		ID: d.ID,
		Author: domain.User{
			ID:     d.User.ID,
			Name:   d.User.Name,
			Avatar: d.User.Avatar,
		},
		Content:   d.Content,
		Media:     d.Img,
		ParentID:  d.ParentID,
		Replies:   toDomains(d.ReplyComment),
		Likes:     d.Likes,
		CreatedAt: d.CreatedAt,
	}
}

func toDomains(dtos []commentDTO) []domain.Comment {
	if len(dtos) == 0 {
		return nil
	}
	return slice.Map(dtos, func(_ int, src commentDTO) domain.Comment {
		return src.toDomain()
	})
}

type likeReq struct {
	UserID string `json:"userId"`
}

type likeResp struct {
	Likes []string `json:"likes"`
}
