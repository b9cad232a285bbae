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

//go:build e2e

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/feedsync/internal/identity/internal/domain"
	testioc "github.com/ecodeclub/feedsync/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityECache(t *testing.T) {
	c := NewIdentityECache(testioc.InitCache())
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := c.Get(ctx, 9001)
	assert.ErrorIs(t, err, ErrIdentityNotFound)

	want := domain.Identity{Uid: 9001, UserID: "665f0c", DisplayName: "Lan"}
	require.NoError(t, c.Set(ctx, want))
	got, err := c.Get(ctx, 9001)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, c.Delete(ctx, 9001))
	_, err = c.Get(ctx, 9001)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}
