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

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/feedsync/internal/article"
	"github.com/ecodeclub/feedsync/internal/comment/internal/domain"
	"github.com/ecodeclub/feedsync/internal/comment/internal/repository"
	"github.com/ecodeclub/feedsync/internal/comment/internal/store"
	"github.com/ecodeclub/feedsync/internal/identity"
	"github.com/ecodeclub/feedsync/internal/moderation"
	"github.com/ecodeclub/feedsync/internal/notification"
	"github.com/ecodeclub/feedsync/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrThreadNotOpen   = errors.New("评论区还没有打开")
	ErrCommentNotFound = errors.New("评论不存在")
	// ErrSensitive 审核没有通过，审核服务不可用的时候也是这个错误
	ErrSensitive       = errors.New("评论包含敏感内容")
)

const relatedTypeComment = "comment"

//go:generate mockgen -source=./comment.go -destination=../../mocks/comment.mock.go -package=commentmocks Service
type Service interface {
	// Open 打开评论区并从后端拉取评论树
	Open(ctx context.Context, uid int64, target domain.Target) (domain.Thread, error)
	// Fetch 拉取评论树，失败的时候记录日志并返回空切片
	Fetch(ctx context.Context, target domain.Target) []domain.Comment
	LikeComment(ctx context.Context, actor identity.Identity, target domain.Target, commentID string) (domain.Thread, error)
	SetDraft(ctx context.Context, uid int64, target domain.Target, draft domain.Draft) error
	// Submit 审核并提交草稿，parentID 不为空的时候是回复
	Submit(ctx context.Context, actor identity.Identity, target domain.Target, parentID string) (domain.Thread, error)
	Close(uid int64, target domain.Target) bool
	SweepIdle(idle time.Duration) int
}

type service struct {
	repo      repository.CommentRepository
	threads   *store.Threads
	stamper   snowflake.Stamper
	articles  article.Service
	moderator moderation.Service
	notifier  notification.Service
	logger    *elog.Component
}

func NewService(repo repository.CommentRepository,
	threads *store.Threads,
	stamper snowflake.Stamper,
	articles article.Service,
	moderator moderation.Service,
	notifier notification.Service) Service {
	return &service{
		repo:      repo,
		threads:   threads,
		stamper:   stamper,
		articles:  articles,
		moderator: moderator,
		notifier:  notifier,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("comment")),
	}
}

func (s *service) Open(ctx context.Context, uid int64, target domain.Target) (domain.Thread, error) {
	if err := target.Validate(); err != nil {
		return domain.Thread{}, err
	}
	th := s.threads.Open(store.ThreadKey{Uid: uid, Target: target})
	s.refresh(ctx, th, target)
	res, _ := th.Snapshot()
	return res, nil
}

func (s *service) Fetch(ctx context.Context, target domain.Target) []domain.Comment {
	if err := target.Validate(); err != nil {
		return []domain.Comment{}
	}
	roots, err := s.fetch(ctx, target)
	if err != nil {
		return []domain.Comment{}
	}
	return roots
}

func (s *service) LikeComment(ctx context.Context, actor identity.Identity, target domain.Target, commentID string) (domain.Thread, error) {
	th, ok := s.threads.Get(store.ThreadKey{Uid: actor.Uid, Target: target})
	if !ok {
		return domain.Thread{}, ErrThreadNotOpen
	}
	c, ok := th.Find(commentID)
	if !ok {
		return domain.Thread{}, ErrCommentNotFound
	}
	likes, err := s.repo.Like(ctx, commentID, actor.UserID)
	if err != nil {
		return domain.Thread{}, err
	}
	s.reconcile(ctx, actor.Uid, th, target)

	liked := !c.LikedBy(actor.UserID) && slice.Contains(likes, actor.UserID)
	if liked && c.Author.ID != actor.UserID {
		s.notifier.Notify(ctx, notification.Notification{
			SenderID:    actor.UserID,
			SenderName:  actor.DisplayName,
			ReceiverID:  c.Author.ID,
			Action:      notification.ActionLikeComment,
			RelatedID:   c.ID,
			RelatedType: relatedTypeComment,
		})
	}
	res, _ := th.Snapshot()
	return res, nil
}

func (s *service) SetDraft(_ context.Context, uid int64, target domain.Target, draft domain.Draft) error {
	th, ok := s.threads.Get(store.ThreadKey{Uid: uid, Target: target})
	if !ok {
		return ErrThreadNotOpen
	}
	th.SetDraft(draft)
	return nil
}

func (s *service) Submit(ctx context.Context, actor identity.Identity, target domain.Target, parentID string) (domain.Thread, error) {
	if err := target.Validate(); err != nil {
		return domain.Thread{}, err
	}
	th, ok := s.threads.Get(store.ThreadKey{Uid: actor.Uid, Target: target})
	if !ok {
		return domain.Thread{}, ErrThreadNotOpen
	}
	draft := th.Draft()
	if draft.Empty() {
		return domain.Thread{}, domain.ErrEmptyContent
	}
	var parent domain.Comment
	if parentID != "" {
		parent, ok = th.Find(parentID)
		if !ok {
			return domain.Thread{}, ErrCommentNotFound
		}
	}
	text := strings.TrimSpace(draft.Text)
	if s.sensitive(ctx, text, draft.Media) {
		return domain.Thread{}, ErrSensitive
	}

	_, err := s.repo.Create(ctx, domain.NewComment{
		Target:   target,
		ParentID: parentID,
		UserID:   actor.UserID,
		Content:  text,
		Media:    draft.Media,
	})
	if err != nil {
		return domain.Thread{}, err
	}
	th.ClearDraft(draft)
	item, found := s.reconcile(ctx, actor.Uid, th, target)

	ntf := notification.Notification{
		SenderID:    actor.UserID,
		SenderName:  actor.DisplayName,
		RelatedID:   target.ItemID,
		RelatedType: string(target.Kind),
	}
	switch {
	case parentID != "":
		ntf.Action = notification.ActionReply
		ntf.ReceiverID = parent.Author.ID
	case found:
		ntf.Action = notification.ActionComment
		ntf.ReceiverID = item.Author.ID
	}
	if ntf.ReceiverID != "" && ntf.ReceiverID != actor.UserID {
		s.notifier.Notify(ctx, ntf)
	}
	res, _ := th.Snapshot()
	return res, nil
}

func (s *service) Close(uid int64, target domain.Target) bool {
	return s.threads.Close(store.ThreadKey{Uid: uid, Target: target})
}

func (s *service) SweepIdle(idle time.Duration) int {
	return s.threads.Sweep(idle)
}

// sensitive 文字和图片分别审核，任何一个没有通过都不能提交
func (s *service) sensitive(ctx context.Context, text string, media *domain.Media) bool {
	if text != "" {
		res, err := s.moderator.CheckText(ctx, text)
		if err != nil {
			s.logger.Warn("文字审核失败", elog.FieldErr(err))
		}
		if res {
			return true
		}
	}
	if media != nil {
		res, err := s.moderator.CheckImage(ctx, moderation.Image{Name: media.Name, Data: media.Data})
		if err != nil {
			s.logger.Warn("图片审核失败", elog.FieldErr(err), elog.String("name", media.Name))
		}
		if res {
			return true
		}
	}
	return false
}

// reconcile 评论变更之后同时刷新评论树和内容详情，内容详情里有评论数。
// 内容详情拉取失败的时候返回列表里缓存的那一份
func (s *service) reconcile(ctx context.Context, uid int64, th *store.Thread, target domain.Target) (article.Item, bool) {
	var (
		eg    errgroup.Group
		item  article.Item
		found bool
	)
	eg.Go(func() error {
		s.refresh(ctx, th, target)
		return nil
	})
	eg.Go(func() error {
		var err error
		item, err = s.articles.Sync(ctx, uid, target.Kind, target.ItemID)
		if err != nil {
			s.logger.Warn("同步内容失败", elog.FieldErr(err), elog.String("itemId", target.ItemID))
			item, found = s.articles.Cached(uid, target.Kind, target.ItemID)
			return nil
		}
		found = true
		return nil
	})
	_ = eg.Wait()
	return item, found
}

// refresh 重新拉取评论树，失败的时候保留原来的状态
func (s *service) refresh(ctx context.Context, th *store.Thread, target domain.Target) {
	stamp := s.stamper.Next()
	roots, err := s.fetch(ctx, target)
	if err != nil {
		return
	}
	if !th.Apply(stamp, roots) {
		s.logger.Debug("丢弃过期的评论结果", elog.String("itemId", target.ItemID))
	}
}

func (s *service) fetch(ctx context.Context, target domain.Target) ([]domain.Comment, error) {
	roots, err := s.repo.Tree(ctx, target)
	if err != nil {
		s.logger.Error("拉取评论失败",
			elog.FieldErr(err),
			elog.String("itemId", target.ItemID))
		return nil, err
	}
	if roots == nil {
		return []domain.Comment{}, nil
	}
	return roots, nil
}
