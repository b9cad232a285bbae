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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/feedsync/internal/identity/internal/domain"
)

var ErrIdentityNotFound = errors.New("没有绑定身份")

type IdentityCache interface {
	Get(ctx context.Context, uid int64) (domain.Identity, error)
	Set(ctx context.Context, id domain.Identity) error
	Delete(ctx context.Context, uid int64) error
}

type IdentityECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewIdentityECache(c ecache.Cache) IdentityCache {
	return &IdentityECache{
		cache: &ecache.NamespaceCache{
			Namespace: "identity:",
			C:         c,
		},
		// 和登录态保持一致
		expiration: time.Hour * 24,
	}
}

func (c *IdentityECache) Get(ctx context.Context, uid int64) (domain.Identity, error) {
	val := c.cache.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.Identity{}, ErrIdentityNotFound
	}
	var res domain.Identity
	err := val.JSONScan(&res)
	return res, err
}

func (c *IdentityECache) Set(ctx context.Context, id domain.Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(id.Uid), data, c.expiration)
}

func (c *IdentityECache) Delete(ctx context.Context, uid int64) error {
	_, err := c.cache.Delete(ctx, c.key(uid))
	return err
}

func (c *IdentityECache) key(uid int64) string {
	return fmt.Sprintf("feedsync:identity:%d", uid)
}
