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

	"github.com/ecodeclub/feedsync/internal/identity/internal/domain"
	"github.com/ecodeclub/feedsync/internal/identity/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/identity")
	g.POST("/bind", ginx.BS[BindReq](h.Bind))
	g.POST("/profile", ginx.S(h.Profile))
	g.POST("/unbind", ginx.S(h.Unbind))
}

func (h *Handler) Bind(ctx *ginx.Context, req BindReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Bind(ctx, domain.Identity{
		Uid:         sess.Claims().Uid,
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
	})
	if errors.Is(err, service.ErrInvalidIdentity) {
		return invalidIdentityResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Resolve(ctx, sess.Claims().Uid)
	if errors.Is(err, service.ErrActorUnresolved) {
		return notBoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(id),
	}, nil
}

func (h *Handler) Unbind(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Unbind(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
