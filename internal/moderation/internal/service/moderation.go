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
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/feedsync/internal/moderation/internal/domain"
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
	"github.com/gotomicro/ego/core/elog"
)

var (
	// ErrEmptyImage 图片没有内容，直接按敏感处理
	ErrEmptyImage = errors.New("图片内容为空")
	// ErrClientError 审核服务返回 4xx，不重试
	ErrClientError = errors.New("审核请求不合法")
)

// Service 内容审核。返回 true 表示内容敏感。
// 审核服务出错或者超时的时候同样返回 true，此时的 error 只用于记录原因。
//
//go:generate mockgen -source=./moderation.go -destination=../../mocks/moderation.mock.go -package=moderationmocks Service
type Service interface {
	CheckText(ctx context.Context, text string) (bool, error)
	CheckImage(ctx context.Context, img domain.Image) (bool, error)
}

type RetryConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MaxInterval time.Duration `yaml:"maxInterval"`
	MaxRetries  int32         `yaml:"maxRetries"`
}

type checkResult struct {
	Sensitive bool `json:"sensitive"`
}

var _ Service = (*RemoteService)(nil)

// RemoteService 调用远端的 /check-text/ 和 /check-image/
type RemoteService struct {
	client       restx.Client
	textTimeout  time.Duration
	imageTimeout time.Duration
	retry        RetryConfig
	logger       *elog.Component
}

func NewRemoteService(client restx.Client,
	textTimeout, imageTimeout time.Duration,
	retryCfg RetryConfig) *RemoteService {
	return &RemoteService{
		client:       client,
		textTimeout:  textTimeout,
		imageTimeout: imageTimeout,
		retry:        retryCfg,
		logger:       elog.DefaultLogger.With(elog.FieldComponent("moderation")),
	}
}

func (s *RemoteService) CheckText(ctx context.Context, text string) (bool, error) {
	return s.check(ctx, "text", s.textTimeout, func(ctx context.Context, res *checkResult) error {
		return s.client.Service("check-text/").Create(ctx, map[string]string{"text": text}, res)
	})
}

func (s *RemoteService) CheckImage(ctx context.Context, img domain.Image) (bool, error) {
	if len(img.Data) == 0 {
		return true, ErrEmptyImage
	}
	return s.check(ctx, "image", s.imageTimeout, func(ctx context.Context, res *checkResult) error {
		return s.client.Service("check-image/").CreateForm(ctx, restx.Form{
			Files: []restx.File{{Param: "file", Name: img.Name, Reader: bytes.NewReader(img.Data)}},
		}, res)
	})
}

func (s *RemoteService) check(ctx context.Context, kind string,
	timeout time.Duration,
	call func(ctx context.Context, res *checkResult) error) (bool, error) {
	var res checkResult
	err := s.doWithRetry(ctx, func() error {
		res = checkResult{}
		tctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		err := call(tctx, &res)
		if code := restx.StatusCode(err); code >= http.StatusBadRequest && code < http.StatusInternalServerError {
			return fmt.Errorf("%w: %w", ErrClientError, err)
		}
		return err
	})
	if err != nil {
		s.logger.Error("内容审核失败，按敏感内容处理",
			elog.String("kind", kind),
			elog.FieldErr(err))
		return true, err
	}
	return res.Sensitive, nil
}

func (s *RemoteService) doWithRetry(ctx context.Context, operation func() error) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.retry.Interval, s.retry.MaxInterval, s.retry.MaxRetries)
	if err != nil {
		return fmt.Errorf("创建重试策略失败: %w", err)
	}
	for {
		if ctx.Err() != nil {
			return fmt.Errorf("context已取消: %w", ctx.Err())
		}
		err = operation()
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrClientError) {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("超过最大重试次数，最后一次错误: %w", err)
		}
		s.logger.Warn("内容审核失败，准备重试",
			elog.FieldErr(err),
			elog.String("interval", next.String()))
		select {
		case <-ctx.Done():
			return fmt.Errorf("context已取消: %w", ctx.Err())
		case <-time.After(next):
		}
	}
}
