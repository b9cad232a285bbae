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

// Action 触发通知的用户行为
type Action string

const (
	ActionLikeItem    Action = "like_item"
	ActionLikeComment Action = "like_comment"
	ActionComment     Action = "comment"
	ActionReply       Action = "reply"
)

// Notification 一条站内通知，发送者和接收者都是后端的用户 ID
type Notification struct {
	SenderID   string
	SenderName string
	ReceiverID string
	Action     Action
	// RelatedID 关联的内容或者评论
	RelatedID   string
	RelatedType string
}

// Message 用户看到的通知文案
func (n Notification) Message() string {
	name := n.SenderName
	if name == "" {
		name = "Ai đó"
	}
	switch n.Action {
	case ActionLikeItem:
		return name + " đã thích bài viết của bạn"
	case ActionLikeComment:
		return name + " đã thích bình luận của bạn"
	case ActionComment:
		return name + " đã bình luận về bài viết của bạn"
	case ActionReply:
		return name + " đã trả lời bình luận của bạn"
	default:
		return name + " đã tương tác với bạn"
	}
}

// SelfAddressed 自己给自己的互动不需要通知
func (n Notification) SelfAddressed() bool {
	return n.SenderID == n.ReceiverID
}
