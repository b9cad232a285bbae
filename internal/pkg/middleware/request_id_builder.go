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

package middleware

import (
	"github.com/ecodeclub/feedsync/internal/pkg/ectx"
	"github.com/ecodeclub/feedsync/internal/pkg/sequencenumber"
	"github.com/gin-gonic/gin"
)

// RequestIDBuilder 把请求 ID 放进 request context，下游调用后端时会透传。
// 前端没有带的话就生成一个。
type RequestIDBuilder struct {
	gen *sequencenumber.Generator
}

func NewRequestIDBuilder(gen *sequencenumber.Generator) *RequestIDBuilder {
	return &RequestIDBuilder{gen: gen}
}

func (b *RequestIDBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(ectx.RequestIDHeader)
		if id == "" {
			id = b.gen.Generate()
		}
		ctx.Request = ctx.Request.WithContext(ectx.CtxWithRequestID(ctx.Request.Context(), id))
		ctx.Header(ectx.RequestIDHeader, id)
		ctx.Next()
	}
}
