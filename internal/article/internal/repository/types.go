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
	"github.com/ecodeclub/feedsync/internal/article/internal/domain"
)

type userDTO struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// itemDTO 后端返回的文章和短视频
type itemDTO struct {
	ID           string    `json:"_id"`
	CreatedBy    userDTO   `json:"createdBy"`
	Content      string    `json:"content"`
	Media        []string  `json:"media"`
	Likes        []string  `json:"likes"`
	CommentCount int       `json:"commentCount"`
	Scope        string    `json:"scope"`
	HashTag      []string  `json:"hashTag"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (d itemDTO) toDomain(kind domain.Kind) domain.Item {
	return domain.Item{
		ID:   d.ID,
		Kind: kind,
		Author: domain.User{
			ID:     d.CreatedBy.ID,
			Name:   d.CreatedBy.Name,
			Avatar: d.CreatedBy.Avatar,
		},
		Content:      d.Content,
		Media:        d.Media,
		Likes:        d.Likes,
		CommentCount: d.CommentCount,
		Scope:        d.Scope,
		HashTags:     d.HashTag,
		CreatedAt:    d.CreatedAt,
	}
}

func toDomains(kind domain.Kind, dtos []itemDTO) []domain.Item {
	return slice.Map(dtos, func(_ int, src itemDTO) domain.Item {
		return src.toDomain(kind)
	})
}

type likeReq struct {
	UserID string `json:"userId"`
}

type editReq struct {
	Content string   `json:"content"`
	Scope   string   `json:"scope"`
	HashTag []string `json:"hashTag"`
}
