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

package errs

var (
	SystemError      = ErrorCode{Code: 522001, Msg: "系统错误"}
	InvalidInput     = ErrorCode{Code: 422002, Msg: "参数错误"}
	NotBound         = ErrorCode{Code: 422003, Msg: "请先绑定用户"}
	CommentNotFound  = ErrorCode{Code: 422004, Msg: "评论不存在或者评论区已经关闭"}
	EmptyContent     = ErrorCode{Code: 422005, Msg: "评论内容不能为空"}
	SensitiveContent = ErrorCode{Code: 422006, Msg: "评论包含敏感内容，请修改后再发布"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
