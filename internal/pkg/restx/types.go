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
	"io"
)

// Client 按资源路径拿到一个无状态的请求句柄
type Client interface {
	Service(path string) Service
}

// Service 对应后端的一个资源路径，例如 articles、comments、articles/{id}/comments
type Service interface {
	// Get GET /{path}/{id}
	Get(ctx context.Context, id string, res any) error
	// Find GET /{path}?query
	Find(ctx context.Context, query map[string]string, res any) error
	// Create POST /{path}，JSON 请求体
	Create(ctx context.Context, body any, res any) error
	// CreateForm POST /{path}，multipart 请求体，用于带附件的创建
	CreateForm(ctx context.Context, form Form, res any) error
	// Patch PATCH /{path}/{id}，id 为空时直接作用在 path 上
	Patch(ctx context.Context, id string, body any, res any) error
	// Remove DELETE /{path}/{id}
	Remove(ctx context.Context, id string, res any) error
}

type Form struct {
	Fields map[string]string
	Files  []File
}

type File struct {
	Param  string
	Name   string
	Reader io.Reader
}
