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

package restx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ecodeclub/feedsync/internal/pkg/ectx"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "internal/pkg/restx"

type Config struct {
	// Name 用在指标和链路里区分不同的后端，例如 backend、moderation
	Name    string        `yaml:"name"`
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
}

var _ Client = &RestyClient{}

type RestyClient struct {
	cli     *resty.Client
	name    string
	metrics *Metrics
	tracer  trace.Tracer
}

func NewRestyClient(cfg Config, metrics *Metrics) *RestyClient {
	cli := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		cli.SetTimeout(cfg.Timeout)
	}
	return NewRestyClientWith(cli, cfg.Name, metrics)
}

func NewRestyClientWith(cli *resty.Client, name string, metrics *Metrics) *RestyClient {
	return &RestyClient{
		cli:     cli,
		name:    name,
		metrics: metrics,
		tracer:  otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (c *RestyClient) Service(path string) Service {
	path = strings.TrimPrefix(path, "/")
	resource, _, _ := strings.Cut(path, "/")
	return &service{c: c, path: path, resource: resource}
}

// Path 拼接资源路径，每一段都会转义
func Path(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, seg := range segments {
		escaped = append(escaped, url.PathEscape(seg))
	}
	return strings.Join(escaped, "/")
}

type service struct {
	c        *RestyClient
	path     string
	resource string
}

func (s *service) Get(ctx context.Context, id string, res any) error {
	return s.do(ctx, http.MethodGet, id, nil, res)
}

func (s *service) Find(ctx context.Context, query map[string]string, res any) error {
	return s.do(ctx, http.MethodGet, "", func(r *resty.Request) {
		r.SetQueryParams(query)
	}, res)
}

func (s *service) Create(ctx context.Context, body any, res any) error {
	return s.do(ctx, http.MethodPost, "", func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}, res)
}

func (s *service) CreateForm(ctx context.Context, form Form, res any) error {
	return s.do(ctx, http.MethodPost, "", func(r *resty.Request) {
		r.SetMultipartFormData(form.Fields)
		for _, f := range form.Files {
			r.SetFileReader(f.Param, f.Name, f.Reader)
		}
	}, res)
}

func (s *service) Patch(ctx context.Context, id string, body any, res any) error {
	return s.do(ctx, http.MethodPatch, id, func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(body)
	}, res)
}

func (s *service) Remove(ctx context.Context, id string, res any) error {
	return s.do(ctx, http.MethodDelete, id, nil, res)
}

func (s *service) url(id string) string {
	if id == "" {
		return "/" + s.path
	}
	return "/" + strings.TrimSuffix(s.path, "/") + "/" + url.PathEscape(id)
}

func (s *service) do(ctx context.Context, method, id string, prepare func(r *resty.Request), res any) error {
	u := s.url(id)
	ctx, span := s.c.tracer.Start(ctx, "restx."+strings.ToLower(method), trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("rpc.service", s.c.name),
		attribute.String("http.method", method),
		attribute.String("http.route", u),
	)

	req := s.c.cli.R().SetContext(ctx)
	if rid, ok := ectx.RequestIDFromCtx(ctx); ok {
		req.SetHeader(ectx.RequestIDHeader, rid)
	}
	if prepare != nil {
		prepare(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, u)
	code := 0
	if resp != nil {
		code = resp.StatusCode()
	}
	s.c.metrics.observe(s.c.name, method, s.resource, code, time.Since(start))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("请求后端 %s %s 失败: %w", method, u, err)
	}
	if resp.IsError() {
		span.SetStatus(codes.Error, resp.Status())
		return newStatusError(method, u, code, resp.String())
	}
	span.SetStatus(codes.Ok, "")

	body := resp.Body()
	if res == nil || len(body) == 0 {
		return nil
	}
	if err = json.Unmarshal(body, res); err != nil {
		return fmt.Errorf("解析 %s %s 的响应失败: %w", method, u, err)
	}
	return nil
}
