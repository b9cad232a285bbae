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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/feedsync/internal/article"
	"github.com/ecodeclub/feedsync/internal/comment/internal/domain"
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	path   string
	body   string
	form   map[string]string
	file   string
}

func newRepo(t *testing.T, status int, resp string) (CommentRepository, *call) {
	t.Helper()
	c := &call{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*c = call{method: r.Method, path: r.URL.Path}
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			c.form = map[string]string{}
			for k, v := range r.MultipartForm.Value {
				c.form[k] = v[0]
			}
			if f, _, err := r.FormFile("img"); err == nil {
				data, _ := io.ReadAll(f)
				c.file = string(data)
			}
		} else {
			data, _ := io.ReadAll(r.Body)
			c.body = string(data)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(server.Close)
	return NewBackendCommentRepository(restx.NewRestyClient(restx.Config{BaseURL: server.URL}, nil)), c
}

func TestBackendCommentRepository_Tree(t *testing.T) {
	const resp = `[{"_id":"c1","userId":{"_id":"u1","name":"Lan","avatar":"a.png"},"content":"hay",
"img":"","likes":["u2"],"createdAt":"2024-05-01T08:00:00Z",
"replyComment":[{"_id":"r1","userId":{"_id":"u2","name":"Minh"},"content":"đúng","parentId":"c1",
"createdAt":"2024-05-01T09:00:00Z"}]},
{"_id":"c2","userId":{"_id":"u3","name":"Hoa"},"content":"ảnh","img":"c2.png","createdAt":"2024-05-02T08:00:00Z"}]`

	testCases := []struct {
		name     string
		target   domain.Target
		wantPath string
	}{
		{
			name:     "文章评论",
			target:   domain.Target{Kind: article.KindArticle, ItemID: "a1"},
			wantPath: "/articles/a1/comments",
		},
		{
			name:     "短视频评论",
			target:   domain.Target{Kind: article.KindReel, ItemID: "r9"},
			wantPath: "/reels/r9/comments",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, c := newRepo(t, http.StatusOK, resp)
			roots, err := repo.Tree(context.Background(), tc.target)
			require.NoError(t, err)
			assert.Equal(t, http.MethodGet, c.method)
			assert.Equal(t, tc.wantPath, c.path)
			assert.Equal(t, []domain.Comment{
				{
					ID:        "c1",
					Author:    domain.User{ID: "u1", Name: "Lan", Avatar: "a.png"},
					Content:   "hay",
					Likes:     []string{"u2"},
					CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
					Replies: []domain.Comment{{
						ID:        "r1",
						Author:    domain.User{ID: "u2", Name: "Minh"},
						Content:   "đúng",
						ParentID:  "c1",
						CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
					}},
				},
				{
					ID:        "c2",
					Author:    domain.User{ID: "u3", Name: "Hoa"},
					Content:   "ảnh",
					Media:     "c2.png",
					CreatedAt: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
				},
			}, roots)
		})
	}
}

func TestBackendCommentRepository_TreeFailed(t *testing.T) {
	repo, _ := newRepo(t, http.StatusInternalServerError, `{}`)
	_, err := repo.Tree(context.Background(), domain.Target{Kind: article.KindArticle, ItemID: "a1"})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, restx.StatusCode(err))
}

func TestBackendCommentRepository_Like(t *testing.T) {
	repo, c := newRepo(t, http.StatusOK, `{"_id":"c1","likes":["u2","u1"]}`)
	likes, err := repo.Like(context.Background(), "c1", "u1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, c.method)
	assert.Equal(t, "/comments/c1/like", c.path)
	assert.JSONEq(t, `{"userId":"u1"}`, c.body)
	assert.Equal(t, []string{"u2", "u1"}, likes)
}

func TestBackendCommentRepository_Create(t *testing.T) {
	const resp = `{"_id":"n1","userId":{"_id":"u1","name":"Lan"},"content":"xin chào"}`
	testCases := []struct {
		name     string
		c        domain.NewComment
		wantForm map[string]string
		wantFile string
	}{
		{
			name: "文章顶层评论",
			c: domain.NewComment{
				Target:  domain.Target{Kind: article.KindArticle, ItemID: "a1"},
				UserID:  "u1",
				Content: "xin chào",
			},
			wantForm: map[string]string{"userId": "u1", "content": "xin chào", "articleId": "a1"},
		},
		{
			name: "短视频顶层评论带图片",
			c: domain.NewComment{
				Target:  domain.Target{Kind: article.KindReel, ItemID: "r1"},
				UserID:  "u1",
				Content: "xin chào",
				Media:   &domain.Media{Name: "a.png", Data: []byte("png")},
			},
			wantForm: map[string]string{"userId": "u1", "content": "xin chào", "reelId": "r1"},
			wantFile: "png",
		},
		{
			name: "回复只带 parentId",
			c: domain.NewComment{
				Target:   domain.Target{Kind: article.KindArticle, ItemID: "a1"},
				ParentID: "c1",
				UserID:   "u1",
				Content:  "xin chào",
			},
			wantForm: map[string]string{"userId": "u1", "content": "xin chào", "parentId": "c1"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, c := newRepo(t, http.StatusCreated, resp)
			res, err := repo.Create(context.Background(), tc.c)
			require.NoError(t, err)
			assert.Equal(t, http.MethodPost, c.method)
			assert.Equal(t, "/comments", c.path)
			assert.Equal(t, tc.wantForm, c.form)
			assert.Equal(t, tc.wantFile, c.file)
			assert.Equal(t, "n1", res.ID)
			assert.Equal(t, "u1", res.Author.ID)
		})
	}
}
