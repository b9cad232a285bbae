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
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/feedsync/internal/identity/internal/domain"
	"github.com/ecodeclub/feedsync/internal/identity/internal/errs"
	"github.com/ecodeclub/feedsync/internal/identity/internal/service"
	identitymocks "github.com/ecodeclub/feedsync/internal/identity/mocks"
	"github.com/ecodeclub/feedsync/internal/test"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = int64(2051)

func newServer(svc service.Service) *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
	})
	NewHandler(svc).PrivateRoutes(server.Engine)
	return server
}

func TestHandler_Bind(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      BindReq
		wantCode int
		wantRes  test.Result[any]
	}{
		{
			name: "绑定成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := identitymocks.NewMockService(ctrl)
				svc.EXPECT().Bind(gomock.Any(), domain.Identity{
					Uid: uid, UserID: "665f0c", DisplayName: "Lan",
				}).Return(nil)
				return svc
			},
			req:      BindReq{UserID: "665f0c", DisplayName: "Lan"},
			wantCode: http.StatusOK,
		},
		{
			name: "用户ID为空",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := identitymocks.NewMockService(ctrl)
				svc.EXPECT().Bind(gomock.Any(), gomock.Any()).Return(service.ErrInvalidIdentity)
				return svc
			},
			req:      BindReq{},
			wantCode: http.StatusOK,
			wantRes:  test.Result[any]{Code: errs.InvalidIdentity.Code, Msg: errs.InvalidIdentity.Msg},
		},
		{
			name: "缓存出错",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := identitymocks.NewMockService(ctrl)
				svc.EXPECT().Bind(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				return svc
			},
			req:      BindReq{UserID: "u1"},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodPost, "/identity/bind", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantRes, recorder.MustScan())
		})
	}
}

func TestHandler_Profile(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.Service
		wantRes test.Result[Profile]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := identitymocks.NewMockService(ctrl)
				svc.EXPECT().Resolve(gomock.Any(), uid).
					DoAndReturn(func(ctx context.Context, uid int64) (domain.Identity, error) {
						return domain.Identity{Uid: uid, UserID: "665f0c", DisplayName: "Lan"}, nil
					})
				return svc
			},
			wantRes: test.Result[Profile]{Data: Profile{UserID: "665f0c", DisplayName: "Lan"}},
		},
		{
			name: "还没有绑定",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := identitymocks.NewMockService(ctrl)
				svc.EXPECT().Resolve(gomock.Any(), uid).Return(domain.Identity{}, service.ErrActorUnresolved)
				return svc
			},
			wantRes: test.Result[Profile]{Code: errs.NotBound.Code, Msg: errs.NotBound.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodPost, "/identity/profile", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Profile]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantRes, recorder.MustScan())
		})
	}
}
