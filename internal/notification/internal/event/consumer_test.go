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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/feedsync/internal/notification/internal/domain"
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ConsumerTestSuite struct {
	suite.Suite
	q        mq.MQ
	server   *httptest.Server
	status   int
	received chan NotificationEvent
}

func TestNotificationEventConsumer(t *testing.T) {
	suite.Run(t, new(ConsumerTestSuite))
}

func (s *ConsumerTestSuite) SetupTest() {
	s.q = memory.NewMQ()
	err := s.q.CreateTopic(context.Background(), NotificationEventName, 1)
	require.NoError(s.T(), err)
	s.status = http.StatusCreated
	s.received = make(chan NotificationEvent, 4)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notifications" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var evt NotificationEvent
		_ = json.NewDecoder(r.Body).Decode(&evt)
		s.received <- evt
		w.WriteHeader(s.status)
	}))
}

func (s *ConsumerTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ConsumerTestSuite) newConsumer() *NotificationEventConsumer {
	client := restx.NewRestyClient(restx.Config{Name: "backend", BaseURL: s.server.URL}, nil)
	c, err := NewNotificationEventConsumer(s.q, client)
	require.NoError(s.T(), err)
	return c
}

func (s *ConsumerTestSuite) produce(evt NotificationEvent) {
	p, err := NewNotificationEventProducer(s.q)
	require.NoError(s.T(), err)
	require.NoError(s.T(), p.Produce(context.Background(), evt))
}

func (s *ConsumerTestSuite) TestConsume() {
	t := s.T()
	c := s.newConsumer()
	want := NewNotificationEvent(domain.Notification{
		SenderID:    "u1",
		SenderName:  "Lan",
		ReceiverID:  "u2",
		Action:      domain.ActionLikeItem,
		RelatedID:   "a1",
		RelatedType: "article",
	})
	s.produce(want)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, c.Consume(ctx))
	got := <-s.received
	assert.Equal(t, want, got)
	assert.Equal(t, "Lan đã thích bài viết của bạn", got.Message)
}

func (s *ConsumerTestSuite) TestConsume_BackendFailed() {
	t := s.T()
	s.status = http.StatusInternalServerError
	c := s.newConsumer()
	s.produce(NotificationEvent{SenderID: "u1", ReceiverID: "u2", RelatedID: "c1"})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := c.Consume(ctx)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, restx.StatusCode(err))
}

func (s *ConsumerTestSuite) TestConsume_MissingReceiver() {
	t := s.T()
	c := s.newConsumer()
	s.produce(NotificationEvent{SenderID: "u1", RelatedID: "c1"})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	assert.Error(t, c.Consume(ctx))
	assert.Len(t, s.received, 0)
}

func (s *ConsumerTestSuite) TestStart() {
	t := s.T()
	c := s.newConsumer()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx)
	s.produce(NotificationEvent{SenderID: "u1", ReceiverID: "u2", RelatedID: "a1"})

	select {
	case evt := <-s.received:
		assert.Equal(t, "u2", evt.ReceiverID)
	case <-time.After(3 * time.Second):
		t.Fatal("没有收到通知")
	}
}
