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

package domain

// Identity 当前登录用户在后端对应的身份，相当于设备本地存储里的当前用户 ID 和昵称
type Identity struct {
	Uid         int64  `json:"uid"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}
