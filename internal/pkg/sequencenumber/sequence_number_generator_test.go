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

package sequencenumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateWith(t *testing.T) {
	sng := NewGeneratorWith(func(_ time.Time) int64 { return 1234554320123 }, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })
	id := sng.Generate()
	assert.Equal(t, "1234554320123nUfojcH2M5j2j3Tk5A1", id)
	assert.Equal(t, requestIDLength, len(id))
}

func TestGenerate(t *testing.T) {
	sng := NewGenerator()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := sng.Generate()
		assert.Equal(t, requestIDLength, len(id))
		_, ok := seen[id]
		assert.False(t, ok, "请求ID重复: %s", id)
		seen[id] = struct{}{}
	}
}
