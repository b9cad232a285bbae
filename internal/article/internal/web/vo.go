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
	"github.com/ecodeclub/feedsync/internal/article/internal/domain"
)

type FeedReq struct {
	// article 或者 reel
	Kind string `json:"kind"`
	// global, profile, page, group
	Scope   string `json:"scope"`
	ScopeID string `json:"scopeId"`
}

func (r FeedReq) toDomain() domain.Feed {
	return domain.Feed{
		Kind:    domain.Kind(r.Kind),
		Scope:   domain.ScopeType(r.Scope),
		ScopeID: r.ScopeID,
	}
}

type ListReq struct {
	FeedReq
	Refresh bool `json:"refresh"`
}

type ItemReq struct {
	FeedReq
	ID string `json:"id"`
}

type EditReq struct {
	ItemReq
	Content    string   `json:"content"`
	Visibility string   `json:"visibility"`
	HashTags   []string `json:"hashTags"`
}

type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Item struct {
	ID           string   `json:"id"`
	Kind         string   `json:"kind"`
	Author       Author   `json:"author"`
	Content      string   `json:"content"`
	Media        []string `json:"media"`
	Likes        []string `json:"likes"`
	LikeCount    int      `json:"likeCount"`
	Liked        bool     `json:"liked"`
	CommentCount int      `json:"commentCount"`
	Visibility   string   `json:"visibility"`
	HashTags     []string `json:"hashTags"`
	CreatedAt    int64    `json:"createdAt"`
}

func newItem(item domain.Item, userID string) Item {
	return Item{
		ID:   item.ID,
		Kind: string(item.Kind),
		Author: Author{
			ID:     item.Author.ID,
			Name:   item.Author.Name,
			Avatar: item.Author.Avatar,
		},
		Content:      item.Content,
		Media:        item.Media,
		Likes:        item.Likes,
		LikeCount:    len(item.Likes),
		Liked:        item.LikedBy(userID),
		CommentCount: item.CommentCount,
		Visibility:   item.Scope,
		HashTags:     item.HashTags,
		CreatedAt:    item.CreatedAt.UnixMilli(),
	}
}

type ItemList struct {
	List []Item `json:"list"`
}

func newItemList(items []domain.Item, userID string) ItemList {
	return ItemList{
		List: slice.Map(items, func(_ int, src domain.Item) Item {
			return newItem(src, userID)
		}),
	}
}
