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

package job

import (
	"context"
	"testing"
	"time"

	articlemocks "github.com/ecodeclub/feedsync/internal/article/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSweepIdleViewsJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := articlemocks.NewMockService(ctrl)
	svc.EXPECT().SweepIdle(30 * time.Minute).Return(2)
	job := NewSweepIdleViewsJob(svc, 30*time.Minute)
	assert.NoError(t, job.Run(context.Background()))
	assert.Equal(t, "SweepIdleArticleViewsJob", job.Name())
}
