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
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// StatusError 后端返回了非 2xx 的响应
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s 返回 %d: %s", e.Method, e.URL, e.Code, e.Body)
}

func newStatusError(method, url string, code int, body string) error {
	return errors.WithStack(&StatusError{Method: method, URL: url, Code: code, Body: body})
}

// StatusCode 取出后端返回的状态码，不是 StatusError 的时候返回 0
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
