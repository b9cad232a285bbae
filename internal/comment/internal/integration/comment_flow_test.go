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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/feedsync/internal/article"
	"github.com/ecodeclub/feedsync/internal/comment"
	"github.com/ecodeclub/feedsync/internal/identity"
	"github.com/ecodeclub/feedsync/internal/moderation"
	"github.com/ecodeclub/feedsync/internal/notification"
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
	"github.com/ecodeclub/feedsync/internal/pkg/snowflake"
	"github.com/ecodeclub/feedsync/internal/test"
	testioc "github.com/ecodeclub/feedsync/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(3001)

type backendUser struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type backendComment struct {
	ID           string           `json:"_id"`
	User         backendUser      `json:"userId"`
	Content      string           `json:"content"`
	ParentID     string           `json:"parentId,omitempty"`
	ReplyComment []backendComment `json:"replyComment"`
	Likes        []string         `json:"likes"`
}

type notificationReq struct {
	ReceiverID  string `json:"receiverId"`
	Message     string `json:"message"`
	RelatedID   string `json:"relatedId"`
	RelatedType string `json:"relatedType"`
}

// fakeBackend 只实现评论相关的几个接口
type fakeBackend struct {
	mu       sync.Mutex
	roots    []backendComment
	created  int
	notified chan notificationReq
}

func (b *fakeBackend) find(list []backendComment, id string) *backendComment {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
		if res := b.find(list[i].ReplyComment, id); res != nil {
			return res
		}
	}
	return nil
}

func (b *fakeBackend) count(list []backendComment) int {
	cnt := len(list)
	for _, c := range list {
		cnt += b.count(c.ReplyComment)
	}
	return cnt
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/articles/a1/comments":
		_ = json.NewEncoder(w).Encode(b.roots)
	case r.Method == http.MethodGet && r.URL.Path == "/articles/a1":
		_ = json.NewEncoder(w).Encode(map[string]any{
			"_id":          "a1",
			"createdBy":    map[string]string{"_id": "u-author", "name": "Minh"},
			"commentCount": b.count(b.roots),
		})
	case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/like"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/comments/"), "/like")
		var req struct {
			UserID string `json:"userId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		c := b.find(b.roots, id)
		if c == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		c.Likes = append(c.Likes, req.UserID)
		_ = json.NewEncoder(w).Encode(map[string]any{"likes": c.Likes})
	case r.Method == http.MethodPost && r.URL.Path == "/comments":
		_ = r.ParseMultipartForm(1 << 20)
		b.created++
		c := backendComment{
			ID:       "n" + string(rune('0'+b.created)),
			User:     backendUser{ID: r.FormValue("userId")},
			Content:  r.FormValue("content"),
			ParentID: r.FormValue("parentId"),
		}
		if parent := b.find(b.roots, c.ParentID); parent != nil {
			parent.ReplyComment = append(parent.ReplyComment, c)
		} else {
			b.roots = append(b.roots, c)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(c)
	case r.Method == http.MethodPost && r.URL.Path == "/check-text/":
		var req struct {
			Text string `json:"text"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(map[string]bool{"sensitive": strings.Contains(req.Text, "xấu")})
	case r.Method == http.MethodPost && r.URL.Path == "/notifications":
		var req notificationReq
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.notified <- req
		w.WriteHeader(http.StatusCreated)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type CommentFlowTestSuite struct {
	suite.Suite
	backend *fakeBackend
	idtSvc  identity.Service
	server  *egin.Component
	cancel  context.CancelFunc
}

func TestCommentFlow(t *testing.T) {
	suite.Run(t, new(CommentFlowTestSuite))
}

func (s *CommentFlowTestSuite) SetupSuite() {
	s.backend = &fakeBackend{
		roots: []backendComment{
			{ID: "c1", User: backendUser{ID: "u-author", Name: "Minh"}, Content: "hay",
				ReplyComment: []backendComment{{ID: "r1", ParentID: "c1", User: backendUser{ID: "u2"}, Content: "đúng"}}},
			{ID: "c2", User: backendUser{ID: "u3"}, Content: "ok"},
		},
		notified: make(chan notificationReq, 8),
	}
	backendServer := httptest.NewServer(s.backend)
	s.T().Cleanup(backendServer.Close)

	econf.Set("moderation", map[string]any{"baseURL": backendServer.URL})
	econf.Set("server", map[string]any{"contextTimeout": "5s"})

	client := restx.NewRestyClient(restx.Config{Name: "backend", BaseURL: backendServer.URL}, nil)
	stamper, err := snowflake.NewNodeStamper(1)
	require.NoError(s.T(), err)

	idtModule := identity.InitModule(testioc.InitCache())
	ntfModule := notification.InitModule(testioc.InitMQ(), client)
	modModule := moderation.InitModule(nil)
	artModule := article.InitModule(client, stamper, idtModule, modModule, ntfModule)
	cmtModule := comment.InitModule(client, stamper, idtModule, artModule, modModule, ntfModule)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ntfModule.Consumer.Start(ctx)

	s.idtSvc = idtModule.Svc
	err = idtModule.Svc.Bind(ctx, identity.Identity{Uid: uid, UserID: "u-actor", DisplayName: "Lan"})
	require.NoError(s.T(), err)

	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
	})
	cmtModule.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *CommentFlowTestSuite) TearDownSuite() {
	s.cancel()
	err := s.idtSvc.Unbind(context.Background(), uid)
	require.NoError(s.T(), err)
}

type threadVO struct {
	List []struct {
		ID       string `json:"id"`
		ParentID string `json:"parentId"`
		Depth    int    `json:"depth"`
		Liked    bool   `json:"liked"`
	} `json:"list"`
	Total int `json:"total"`
}

func (s *CommentFlowTestSuite) post(path string, body any) test.Result[threadVO] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[threadVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *CommentFlowTestSuite) waitNotification() notificationReq {
	select {
	case n := <-s.backend.notified:
		return n
	case <-time.After(5 * time.Second):
		s.T().Fatal("没有收到通知")
		return notificationReq{}
	}
}

func (s *CommentFlowTestSuite) TestFlow() {
	t := s.T()
	target := map[string]string{"kind": "article", "itemId": "a1"}

	res := s.post("/comment/open", target)
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, 3, res.Data.Total)
	assert.Equal(t, "r1", res.Data.List[1].ID)
	assert.Equal(t, "c1", res.Data.List[1].ParentID)
	assert.Equal(t, 1, res.Data.List[1].Depth)

	// 敏感内容不会提交，草稿保留
	res = s.post("/comment/draft", map[string]any{"kind": "article", "itemId": "a1", "content": "thật xấu"})
	assert.Equal(t, 0, res.Code)
	res = s.post("/comment/submit", target)
	assert.Equal(t, 422006, res.Code)
	s.backend.mu.Lock()
	assert.Equal(t, 0, s.backend.created)
	s.backend.mu.Unlock()

	res = s.post("/comment/draft", map[string]any{"kind": "article", "itemId": "a1", "content": "  hay quá "})
	assert.Equal(t, 0, res.Code)
	res = s.post("/comment/submit", target)
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, 4, res.Data.Total)
	n := s.waitNotification()
	assert.Equal(t, "u-author", n.ReceiverID)
	assert.Equal(t, "a1", n.RelatedID)
	assert.Equal(t, "Lan đã bình luận về bài viết của bạn", n.Message)

	// 草稿已经清空，再提交是空内容
	res = s.post("/comment/submit", target)
	assert.Equal(t, 422005, res.Code)

	res = s.post("/comment/like", map[string]string{"kind": "article", "itemId": "a1", "commentId": "c1"})
	assert.Equal(t, 0, res.Code)
	assert.True(t, res.Data.List[0].Liked)
	n = s.waitNotification()
	assert.Equal(t, "u-author", n.ReceiverID)
	assert.Equal(t, "comment", n.RelatedType)

	res = s.post("/comment/close", target)
	assert.Equal(t, 0, res.Code)
	res = s.post("/comment/like", map[string]string{"kind": "article", "itemId": "a1", "commentId": "c1"})
	assert.Equal(t, 422004, res.Code)
}
