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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/feedsync/internal/article/internal/domain"
	"github.com/ecodeclub/feedsync/internal/article/internal/repository"
	"github.com/ecodeclub/feedsync/internal/article/internal/store"
	"github.com/ecodeclub/feedsync/internal/identity"
	"github.com/ecodeclub/feedsync/internal/moderation"
	"github.com/ecodeclub/feedsync/internal/notification"
	"github.com/ecodeclub/feedsync/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrViewNotOpen  = errors.New("列表还没有打开")
	ErrItemNotFound = errors.New("列表里没有这条内容")
	// ErrSensitive 审核没有通过，审核服务不可用的时候也是这个错误
	ErrSensitive    = errors.New("内容包含敏感信息")
)

//go:generate mockgen -source=./item.go -destination=../../mocks/item.mock.go -package=articlemocks Service
type Service interface {
	// List 返回列表，第一次打开或者 refresh 的时候从后端加载
	List(ctx context.Context, uid int64, feed domain.Feed, refresh bool) ([]domain.Item, error)
	// Like 先在本地切换点赞状态，后端失败的时候回滚
	Like(ctx context.Context, actor identity.Identity, feed domain.Feed, id string) (domain.Item, error)
	Delete(ctx context.Context, uid int64, kind domain.Kind, id string) error
	Edit(ctx context.Context, uid int64, kind domain.Kind, id string, e domain.Edit) (domain.Item, error)
	// Sync 从后端拉取一条内容，替换 uid 所有列表里缓存的那一份
	Sync(ctx context.Context, uid int64, kind domain.Kind, id string) (domain.Item, error)
	// Cached 返回 uid 打开的列表里缓存的那一份，不请求后端
	Cached(uid int64, kind domain.Kind, id string) (domain.Item, bool)
	Close(uid int64, feed domain.Feed) bool
	SweepIdle(idle time.Duration) int
}

type service struct {
	repo     repository.ItemRepository
	views    *store.Views
	stamper   snowflake.Stamper
	moderator moderation.Service
	notifier  notification.Service
	logger    *elog.Component
}

func NewService(repo repository.ItemRepository,
	views *store.Views,
	stamper snowflake.Stamper,
	moderator moderation.Service,
	notifier notification.Service) Service {
	return &service{
		repo:      repo,
		views:     views,
		stamper:   stamper,
		moderator: moderator,
		notifier:  notifier,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("article")),
	}
}

func (s *service) List(ctx context.Context, uid int64, feed domain.Feed, refresh bool) ([]domain.Item, error) {
	if err := feed.Validate(); err != nil {
		return nil, err
	}
	ls := s.views.Open(store.ViewKey{Uid: uid, Feed: feed})
	if !refresh {
		if items, loaded := ls.Items(); loaded {
			return items, nil
		}
	}
	stamp := s.stamper.Next()
	items, err := s.repo.List(ctx, feed)
	if err != nil {
		return nil, err
	}
	if !ls.Apply(stamp, items) {
		s.logger.Debug("丢弃过期的列表结果",
			elog.Int64("uid", uid),
			elog.String("scope", string(feed.Scope)))
	}
	res, _ := ls.Items()
	return res, nil
}

func (s *service) Like(ctx context.Context, actor identity.Identity, feed domain.Feed, id string) (domain.Item, error) {
	ls, ok := s.views.Get(store.ViewKey{Uid: actor.Uid, Feed: feed})
	if !ok {
		return domain.Item{}, ErrViewNotOpen
	}
	var liked bool
	item, ok := ls.Update(id, func(item *domain.Item) {
		liked = item.ToggleLike(actor.UserID)
	})
	if !ok {
		return domain.Item{}, ErrItemNotFound
	}

	err := s.repo.Like(ctx, feed.Kind, id, actor.UserID)
	if err != nil {
		// 只有状态还是我们改过的样子才回滚，期间列表可能已经被刷新
		item, _ = ls.Update(id, func(item *domain.Item) {
			if item.LikedBy(actor.UserID) == liked {
				item.ToggleLike(actor.UserID)
			}
		})
		return item, fmt.Errorf("点赞失败 id=%s: %w", id, err)
	}

	if liked && item.Author.ID != actor.UserID {
		s.notifier.Notify(ctx, notification.Notification{
			SenderID:    actor.UserID,
			SenderName:  actor.DisplayName,
			ReceiverID:  item.Author.ID,
			Action:      notification.ActionLikeItem,
			RelatedID:   item.ID,
			RelatedType: string(item.Kind),
		})
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, uid int64, kind domain.Kind, id string) error {
	if !kind.Valid() {
		return domain.ErrInvalidKind
	}
	err := s.repo.Delete(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("删除失败 id=%s: %w", id, err)
	}
	s.views.Each(uid, kind, func(_ store.ViewKey, ls *store.ListStore) {
		ls.Remove(id)
	})
	return nil
}

func (s *service) Edit(ctx context.Context, uid int64, kind domain.Kind, id string, e domain.Edit) (domain.Item, error) {
	if !kind.Valid() {
		return domain.Item{}, domain.ErrInvalidKind
	}
	e.Content = strings.TrimSpace(e.Content)
	if e.Content != "" {
		sensitive, err := s.moderator.CheckText(ctx, e.Content)
		if err != nil {
			s.logger.Warn("文字审核失败", elog.FieldErr(err), elog.String("id", id))
		}
		if sensitive {
			return domain.Item{}, ErrSensitive
		}
	}
	err := s.repo.Edit(ctx, kind, id, e)
	if err != nil {
		return domain.Item{}, fmt.Errorf("编辑失败 id=%s: %w", id, err)
	}
	res := domain.Item{ID: id, Kind: kind}
	res.Apply(e)
	s.views.Each(uid, kind, func(_ store.ViewKey, ls *store.ListStore) {
		if item, ok := ls.Update(id, func(item *domain.Item) {
			item.Apply(e)
		}); ok {
			res = item
		}
	})
	return res, nil
}

func (s *service) Sync(ctx context.Context, uid int64, kind domain.Kind, id string) (domain.Item, error) {
	item, err := s.repo.Get(ctx, kind, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("获取内容失败 id=%s: %w", id, err)
	}
	s.views.Each(uid, kind, func(_ store.ViewKey, ls *store.ListStore) {
		ls.Replace(item)
	})
	return item, nil
}

func (s *service) Cached(uid int64, kind domain.Kind, id string) (domain.Item, bool) {
	var (
		res   domain.Item
		found bool
	)
	s.views.Each(uid, kind, func(_ store.ViewKey, ls *store.ListStore) {
		if found {
			return
		}
		res, found = ls.Get(id)
	})
	return res, found
}

func (s *service) Close(uid int64, feed domain.Feed) bool {
	return s.views.Close(store.ViewKey{Uid: uid, Feed: feed})
}

func (s *service) SweepIdle(idle time.Duration) int {
	return s.views.Sweep(idle)
}
