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
	"context"

	"github.com/ecodeclub/feedsync/internal/notification/internal/domain"
	"github.com/ecodeclub/feedsync/internal/notification/internal/event"
	"github.com/gotomicro/ego/core/elog"
)

// Service 发送通知，调用方不关心结果，失败只记录日志
//
//go:generate mockgen -source=./notification.go -destination=../../mocks/notification.mock.go -package=notificationmocks Service
type Service interface {
	Notify(ctx context.Context, n domain.Notification)
}

type service struct {
	producer event.NotificationEventProducer
	logger   *elog.Component
}

func NewService(producer event.NotificationEventProducer) Service {
	return &service{
		producer: producer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification")),
	}
}

func (s *service) Notify(ctx context.Context, n domain.Notification) {
	if n.ReceiverID == "" || n.SelfAddressed() {
		return
	}
	err := s.producer.Produce(ctx, event.NewNotificationEvent(n))
	if err != nil {
		s.logger.Error("发送通知失败",
			elog.String("receiver", n.ReceiverID),
			elog.String("action", string(n.Action)),
			elog.String("relatedId", n.RelatedID),
			elog.FieldErr(err))
	}
}
