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

package snowflake

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeStamper(t *testing.T) {
	testCases := []struct {
		name    string
		nodeID  int64
		wantErr error
	}{
		{name: "最小node", nodeID: 0},
		{name: "最大node", nodeID: 1023},
		{name: "node超出限制", nodeID: 1024, wantErr: ErrExceedNode},
		{name: "负数node", nodeID: -1, wantErr: ErrExceedNode},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewNodeStamper(tc.nodeID)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNodeStamper_Next(t *testing.T) {
	s, err := NewNodeStamper(1)
	require.NoError(t, err)

	prev := s.Next()
	for i := 0; i < 10000; i++ {
		cur := s.Next()
		require.True(t, cur.Newer(prev))
		prev = cur
	}
}

func TestNodeStamper_Concurrent(t *testing.T) {
	s, err := NewNodeStamper(2)
	require.NoError(t, err)

	const n = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[Stamp]struct{}, n*1000)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]Stamp, 0, 1000)
			for j := 0; j < 1000; j++ {
				local = append(local, s.Next())
			}
			mu.Lock()
			for _, st := range local {
				seen[st] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, n*1000, len(seen))
}
