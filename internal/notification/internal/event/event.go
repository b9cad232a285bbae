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

package event

import "github.com/ecodeclub/feedsync/internal/notification/internal/domain"

const NotificationEventName = "notification_events"

// NotificationEvent 字段和后端 POST /notifications 的请求体保持一致
type NotificationEvent struct {
	SenderID    string `json:"senderId"`
	ReceiverID  string `json:"receiverId"`
	Message     string `json:"message"`
	RelatedID   string `json:"relatedId"`
	RelatedType string `json:"relatedType"`
}

func NewNotificationEvent(n domain.Notification) NotificationEvent {
	return NotificationEvent{
		SenderID:    n.SenderID,
		ReceiverID:  n.ReceiverID,
		Message:     n.Message(),
		RelatedID:   n.RelatedID,
		RelatedType: n.RelatedType,
	}
}
