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
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Stamp 单调递增的版本戳，越晚生成越大
type Stamp int64

// Stamper 在发起刷新之前取一个戳，结果回来的时候只有戳比已经应用的新才会生效
type Stamper interface {
	Next() Stamp
}

const maxNode int64 = 1023

var ErrExceedNode = fmt.Errorf("node 超出限制，最大为 %d", maxNode)

type NodeStamper struct {
	node *snowflake.Node
}

func NewNodeStamper(nodeID int64) (*NodeStamper, error) {
	if nodeID < 0 || nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &NodeStamper{node: n}, nil
}

func (s *NodeStamper) Next() Stamp {
	return Stamp(s.node.Generate().Int64())
}

// Newer 判断 s 是否比 applied 新
func (s Stamp) Newer(applied Stamp) bool {
	return s > applied
}
