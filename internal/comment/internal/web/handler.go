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

	"github.com/ecodeclub/feedsync/internal/comment/internal/domain"
	"github.com/ecodeclub/feedsync/internal/comment/internal/service"
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
	g := server.Group("/comment")
	g.POST("/open", ginx.BS[TargetReq](h.Open))
	g.POST("/like", ginx.BS[LikeReq](h.Like))
	g.POST("/draft", ginx.BS[DraftReq](h.Draft))
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/close", ginx.BS[TargetReq](h.Close))
}

func (h *Handler) Open(ctx *ginx.Context, req TargetReq, sess session.Session) (ginx.Result, error) {
	actor, err := h.idtSvc.Resolve(ctx, sess.Claims().Uid)
	if err != nil {
		return h.errResult(err)
	}
	th, err := h.svc.Open(ctx, actor.Uid, req.toDomain())
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newThread(th, actor.UserID),
	}, nil
}

func (h *Handler) Like(ctx *ginx.Context, req LikeReq, sess session.Session) (ginx.Result, error) {
	if req.CommentID == "" {
		return invalidInputResult, nil
	}
	actor, err := h.idtSvc.Resolve(ctx, sess.Claims().Uid)
	if err != nil {
		return h.errResult(err)
	}
	th, err := h.svc.LikeComment(ctx, actor, req.TargetReq.toDomain(), req.CommentID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newThread(th, actor.UserID),
	}, nil
}

func (h *Handler) Draft(ctx *ginx.Context, req DraftReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetDraft(ctx, sess.Claims().Uid, req.TargetReq.toDomain(), req.toDomain())
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	actor, err := h.idtSvc.Resolve(ctx, sess.Claims().Uid)
	if err != nil {
		return h.errResult(err)
	}
	th, err := h.svc.Submit(ctx, actor, req.TargetReq.toDomain(), req.ParentID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: newThread(th, actor.UserID),
	}, nil
}

func (h *Handler) Close(ctx *ginx.Context, req TargetReq, sess session.Session) (ginx.Result, error) {
	h.svc.Close(sess.Claims().Uid, req.toDomain())
	return ginx.Result{}, nil
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, identity.ErrActorUnresolved):
		return notBoundResult, nil
	case errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrEmptyItemID):
		return invalidInputResult, nil
	case errors.Is(err, domain.ErrEmptyContent):
		return emptyContentResult, nil
	case errors.Is(err, service.ErrSensitive):
		return sensitiveResult, nil
	case errors.Is(err, service.ErrThreadNotOpen),
		errors.Is(err, service.ErrCommentNotFound):
		return commentNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
