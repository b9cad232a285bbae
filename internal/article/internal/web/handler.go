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
	"errors"

	"github.com/ecodeclub/feedsync/internal/article/internal/domain"
	"github.com/ecodeclub/feedsync/internal/article/internal/service"
	"github.com/ecodeclub/feedsync/internal/identity"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc    service.Service
	idtSvc identity.Service
}

func NewHandler(svc service.Service, idtSvc identity.Service) *Handler {
	return &Handler{
		svc:    svc,
		idtSvc: idtSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/article")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/like", ginx.BS[ItemReq](h.Like))
	g.POST("/delete", ginx.BS[ItemReq](h.Delete))
	g.POST("/edit", ginx.BS[EditReq](h.Edit))
	g.POST("/close", ginx.BS[FeedReq](h.Close))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	actor, err := h.idtSvc.Resolve(ctx, sess.Claims().Uid)
	if err != nil {
		return h.errResult(err)
	}
	items, err := h.svc.List(ctx, actor.Uid, req.FeedReq.toDomain(), req.Refresh)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newItemList(items, actor.UserID),
	}, nil
}

func (h *Handler) Like(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	if req.ID == "" {
		return invalidInputResult, nil
	}
	actor, err := h.idtSvc.Resolve(ctx, sess.Claims().Uid)
	if err != nil {
		return h.errResult(err)
	}
	item, err := h.svc.Like(ctx, actor, req.FeedReq.toDomain(), req.ID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newItem(item, actor.UserID),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	if req.ID == "" {
		return invalidInputResult, nil
	}
	actor, err := h.idtSvc.Resolve(ctx, sess.Claims().Uid)
	if err != nil {
		return h.errResult(err)
	}
	err = h.svc.Delete(ctx, actor.Uid, domain.Kind(req.Kind), req.ID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	if req.ID == "" {
		return invalidInputResult, nil
	}
	actor, err := h.idtSvc.Resolve(ctx, sess.Claims().Uid)
	if err != nil {
		return h.errResult(err)
	}
	item, err := h.svc.Edit(ctx, actor.Uid, domain.Kind(req.Kind), req.ID, domain.Edit{
		Content:  req.Content,
		Scope:    req.Visibility,
		HashTags: req.HashTags,
	})
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newItem(item, actor.UserID),
	}, nil
}

func (h *Handler) Close(ctx *ginx.Context, req FeedReq, sess session.Session) (ginx.Result, error) {
	h.svc.Close(sess.Claims().Uid, req.toDomain())
	return ginx.Result{}, nil
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, identity.ErrActorUnresolved):
		return notBoundResult, nil
	case errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidScope),
		errors.Is(err, domain.ErrEmptyScopeID):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrViewNotOpen),
		errors.Is(err, service.ErrItemNotFound):
		return itemNotFoundResult, nil
	case errors.Is(err, service.ErrSensitive):
		return sensitiveResult, nil
	default:
		return systemErrorResult, err
	}
}
