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
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/feedsync/internal/article"
	"github.com/ecodeclub/feedsync/internal/comment/internal/domain"
	"github.com/ecodeclub/feedsync/internal/comment/internal/errs"
	"github.com/ecodeclub/feedsync/internal/comment/internal/service"
	commentmocks "github.com/ecodeclub/feedsync/internal/comment/mocks"
	"github.com/ecodeclub/feedsync/internal/identity"
	identitymocks "github.com/ecodeclub/feedsync/internal/identity/mocks"
	"github.com/ecodeclub/feedsync/internal/test"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = int64(2051)

var (
	actor  = identity.Identity{Uid: uid, UserID: "u-actor", DisplayName: "Lan"}
	target = domain.Target{Kind: article.KindArticle, ItemID: "a1"}
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	svc    *commentmocks.MockService
	idtSvc *identitymocks.MockService
	server *egin.Component
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.svc = commentmocks.NewMockService(s.ctrl)
	s.idtSvc = identitymocks.NewMockService(s.ctrl)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
	})
	NewHandler(s.svc, s.idtSvc).PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) post(path string, body any) *test.JSONResponseRecorder[Thread] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[Thread]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) TestOpen() {
	t := s.T()
	created := time.UnixMilli(1714550400000)
	s.idtSvc.EXPECT().Resolve(gomock.Any(), uid).Return(actor, nil)
	s.svc.EXPECT().Open(gomock.Any(), uid, target).Return(domain.NewThread([]domain.Comment{
		{ID: "c1", Author: domain.User{ID: "u1", Name: "Minh"}, Content: "hay",
			Likes: []string{"u-actor"}, CreatedAt: created,
			Replies: []domain.Comment{{ID: "r1", ParentID: "c1", Author: domain.User{ID: "u2"},
				Media: "r1.png", CreatedAt: created}}},
	}), nil)

	recorder := s.post("/comment/open", TargetReq{Kind: "article", ItemID: "a1"})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, test.Result[Thread]{Data: Thread{
		List: []Comment{
			{
				ID:        "c1",
				Author:    Author{ID: "u1", Name: "Minh"},
				Content:   "hay",
				LikeCount: 1,
				Liked:     true,
				CreatedAt: 1714550400000,
				Likes:     []string{"u-actor"},
			},
			{
				ID:        "r1",
				Author:    Author{ID: "u2"},
				Media:     "r1.png",
				ParentID:  "c1",
				Depth:     1,
				CreatedAt: 1714550400000,
			},
		},
		Total: 2,
	}}, recorder.MustScan())
}

func (s *HandlerTestSuite) TestLike() {
	testCases := []struct {
		name     string
		mock     func()
		req      LikeReq
		wantCode int
		wantBiz  int
	}{
		{
			name: "点赞成功",
			mock: func() {
				s.idtSvc.EXPECT().Resolve(gomock.Any(), uid).Return(actor, nil)
				s.svc.EXPECT().LikeComment(gomock.Any(), actor, target, "c1").
					Return(domain.Thread{Comments: []domain.FlattenedComment{}}, nil)
			},
			req:      LikeReq{TargetReq: TargetReq{Kind: "article", ItemID: "a1"}, CommentID: "c1"},
			wantCode: http.StatusOK,
		},
		{
			name:     "缺少评论ID",
			mock:     func() {},
			req:      LikeReq{TargetReq: TargetReq{Kind: "article", ItemID: "a1"}},
			wantCode: http.StatusOK,
			wantBiz:  errs.InvalidInput.Code,
		},
		{
			name: "没有绑定用户",
			mock: func() {
				s.idtSvc.EXPECT().Resolve(gomock.Any(), uid).Return(identity.Identity{}, identity.ErrActorUnresolved)
			},
			req:      LikeReq{TargetReq: TargetReq{Kind: "article", ItemID: "a1"}, CommentID: "c1"},
			wantCode: http.StatusOK,
			wantBiz:  errs.NotBound.Code,
		},
		{
			name: "评论区没有打开",
			mock: func() {
				s.idtSvc.EXPECT().Resolve(gomock.Any(), uid).Return(actor, nil)
				s.svc.EXPECT().LikeComment(gomock.Any(), actor, target, "c1").
					Return(domain.Thread{}, service.ErrThreadNotOpen)
			},
			req:      LikeReq{TargetReq: TargetReq{Kind: "article", ItemID: "a1"}, CommentID: "c1"},
			wantCode: http.StatusOK,
			wantBiz:  errs.CommentNotFound.Code,
		},
		{
			name: "后端失败",
			mock: func() {
				s.idtSvc.EXPECT().Resolve(gomock.Any(), uid).Return(actor, nil)
				s.svc.EXPECT().LikeComment(gomock.Any(), actor, target, "c1").
					Return(domain.Thread{}, errors.New("mock error"))
			},
			req:      LikeReq{TargetReq: TargetReq{Kind: "article", ItemID: "a1"}, CommentID: "c1"},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.mock()
			recorder := s.post("/comment/like", tc.req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantBiz, recorder.MustScan().Code)
		})
	}
}

func (s *HandlerTestSuite) TestDraft() {
	t := s.T()
	s.svc.EXPECT().SetDraft(gomock.Any(), uid, target, domain.Draft{
		Text:  "xin chào",
		Media: &domain.Media{Name: "a.png", Data: []byte("png")},
	}).Return(nil)
	recorder := s.post("/comment/draft", DraftReq{
		TargetReq: TargetReq{Kind: "article", ItemID: "a1"},
		Content:   "xin chào",
		Media:     &Media{Name: "a.png", Data: []byte("png")},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 0, recorder.MustScan().Code)

	// 没有图片数据的时候当作没有图片
	s.svc.EXPECT().SetDraft(gomock.Any(), uid, target, domain.Draft{Text: "hi"}).Return(nil)
	recorder = s.post("/comment/draft", DraftReq{
		TargetReq: TargetReq{Kind: "article", ItemID: "a1"},
		Content:   "hi",
		Media:     &Media{Name: "a.png"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
}

func (s *HandlerTestSuite) TestSubmit() {
	testCases := []struct {
		name     string
		mock     func()
		wantCode int
		wantBiz  int
	}{
		{
			name: "回复成功",
			mock: func() {
				s.idtSvc.EXPECT().Resolve(gomock.Any(), uid).Return(actor, nil)
				s.svc.EXPECT().Submit(gomock.Any(), actor, target, "c1").
					Return(domain.NewThread([]domain.Comment{{ID: "c1"}}), nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "内容为空",
			mock: func() {
				s.idtSvc.EXPECT().Resolve(gomock.Any(), uid).Return(actor, nil)
				s.svc.EXPECT().Submit(gomock.Any(), actor, target, "c1").
					Return(domain.Thread{}, domain.ErrEmptyContent)
			},
			wantCode: http.StatusOK,
			wantBiz:  errs.EmptyContent.Code,
		},
		{
			name: "敏感内容",
			mock: func() {
				s.idtSvc.EXPECT().Resolve(gomock.Any(), uid).Return(actor, nil)
				s.svc.EXPECT().Submit(gomock.Any(), actor, target, "c1").
					Return(domain.Thread{}, service.ErrSensitive)
			},
			wantCode: http.StatusOK,
			wantBiz:  errs.SensitiveContent.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.mock()
			recorder := s.post("/comment/submit", SubmitReq{
				TargetReq: TargetReq{Kind: "article", ItemID: "a1"},
				ParentID:  "c1",
			})
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantBiz, recorder.MustScan().Code)
		})
	}
}

func (s *HandlerTestSuite) TestClose() {
	t := s.T()
	s.svc.EXPECT().Close(uid, target).Return(true)
	recorder := s.post("/comment/close", TargetReq{Kind: "article", ItemID: "a1"})
	require.Equal(t, http.StatusOK, recorder.Code)
}
