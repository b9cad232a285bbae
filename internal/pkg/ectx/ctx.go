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

package ectx

import "context"

// RequestIDHeader 入站和出站请求都用这个头携带请求 ID
const RequestIDHeader = "X-Request-ID"

type requestIDContextType string

var requestIDCtxKey requestIDContextType = "request_id"

func CtxWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, id)
}

// RequestIDFromCtx 取出入站请求携带（或生成）的请求 ID
func RequestIDFromCtx(ctx context.Context) (string, bool) {
	val := ctx.Value(requestIDCtxKey)
	if val == nil {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}
