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
	"bytes"
	"context"
	"fmt"

	"github.com/ecodeclub/feedsync/internal/comment/internal/domain"
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
)

//go:generate mockgen -source=./comment.go -destination=../../mocks/comment_repo.mock.go -package=commentmocks CommentRepository
type CommentRepository interface {
	// Tree 内容的顶层评论，回复挂在 Replies 上
	Tree(ctx context.Context, target domain.Target) ([]domain.Comment, error)
	// Like 切换 userID 的点赞状态，返回最新的点赞列表
	Like(ctx context.Context, commentID, userID string) ([]string, error)
	Create(ctx context.Context, c domain.NewComment) (domain.Comment, error)
}

var _ CommentRepository = (*BackendCommentRepository)(nil)

type BackendCommentRepository struct {
	client restx.Client
}

func NewBackendCommentRepository(client restx.Client) CommentRepository {
	return &BackendCommentRepository{client: client}
}

func (r *BackendCommentRepository) Tree(ctx context.Context, target domain.Target) ([]domain.Comment, error) {
	var res []commentDTO
	err := r.client.Service(restx.Path(target.Kind.Resource(), target.ItemID, "comments")).
		Find(ctx, nil, &res)
	if err != nil {
		return nil, fmt.Errorf("获取评论失败 %s/%s: %w", target.Kind, target.ItemID, err)
	}
	return toDomains(res), nil
}

func (r *BackendCommentRepository) Like(ctx context.Context, commentID, userID string) ([]string, error) {
	var res likeResp
	err := r.client.Service(restx.Path("comments", commentID, "like")).
		Patch(ctx, "", likeReq{UserID: userID}, &res)
	if err != nil {
		return nil, fmt.Errorf("评论点赞失败 id=%s: %w", commentID, err)
	}
	return res.Likes, nil
}

func (r *BackendCommentRepository) Create(ctx context.Context, c domain.NewComment) (domain.Comment, error) {
	form := restx.Form{
		Fields: map[string]string{
			"userId":  c.UserID,
			"content": c.Content,
		},
	}
	if c.ParentID != "" {
		form.Fields["parentId"] = c.ParentID
	} else {
		form.Fields[c.Target.Kind.RefField()] = c.Target.ItemID
	}
	if c.Media != nil {
		form.Files = []restx.File{{Param: "img", Name: c.Media.Name, Reader: bytes.NewReader(c.Media.Data)}}
	}
	var res commentDTO
	err := r.client.Service("comments").CreateForm(ctx, form, &res)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("发表评论失败: %w", err)
	}
	return res.toDomain(), nil
}
