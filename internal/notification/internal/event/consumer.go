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

import (
	"context"
	"fmt"

	"github.com/ecodeclub/feedsync/internal/pkg/mqx"
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// NotificationEventConsumer 把通知转发给后端
type NotificationEventConsumer struct {
	consumer mq.Consumer
	client   restx.Client
	logger   *elog.Component
}

func NewNotificationEventConsumer(q mq.MQ, client restx.Client) (*NotificationEventConsumer, error) {
	const groupID = "notification.backend"
	consumer, err := q.Consumer(NotificationEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &NotificationEventConsumer{
		consumer: consumer,
		client:   client,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.consumer")),
	}, nil
}

// Start 消费失败只记录日志，ctx 结束的时候退出
func (c *NotificationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费通知事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *NotificationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	evt, err := mqx.Decode[NotificationEvent](msg)
	if err != nil {
		return err
	}
	if evt.ReceiverID == "" {
		return fmt.Errorf("通知缺少接收者: %#v", evt)
	}
	err = c.client.Service("notifications").Create(ctx, evt, nil)
	if err != nil {
		return fmt.Errorf("创建通知失败 receiver=%s related=%s: %w", evt.ReceiverID, evt.RelatedID, err)
	}
	return nil
}
