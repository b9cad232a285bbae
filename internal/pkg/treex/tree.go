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

package treex

// Node 是遍历过程中访问到的一个节点
type Node[T any] struct {
	Val   T
	Depth int
	// Parent 父节点在遍历序列中的下标，根节点为 -1
	Parent int
}

type frame[T any] struct {
	val    T
	depth  int
	parent int
}

// Walk 先序深度优先遍历，父节点总是先于它的子孙节点被访问，兄弟节点保持输入顺序。
// key 用来识别节点，已经访问过的节点连同它的子树都会被跳过，所以环和重复节点不会导致死循环。
// visit 返回 false 时立刻停止遍历。
func Walk[T any, K comparable](roots []T,
	children func(T) []T,
	key func(T) K,
	visit func(n Node[T]) bool) {
	if len(roots) == 0 {
		return
	}
	seen := make(map[K]struct{}, len(roots))
	stack := make([]frame[T], 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame[T]{val: roots[i], parent: -1})
	}
	idx := 0
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		k := key(top.val)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		if !visit(Node[T]{Val: top.val, Depth: top.depth, Parent: top.parent}) {
			return
		}
		cur := idx
		idx++
		subs := children(top.val)
		for i := len(subs) - 1; i >= 0; i-- {
			stack = append(stack, frame[T]{val: subs[i], depth: top.depth + 1, parent: cur})
		}
	}
}

// Flatten 把树拍平成先序序列
func Flatten[T any, K comparable](roots []T, children func(T) []T, key func(T) K) []Node[T] {
	res := make([]Node[T], 0, len(roots))
	Walk(roots, children, key, func(n Node[T]) bool {
		res = append(res, n)
		return true
	})
	return res
}

// Count 统计所有层级的节点总数，和 len(Flatten(...)) 一致
func Count[T any, K comparable](roots []T, children func(T) []T, key func(T) K) int {
	cnt := 0
	Walk(roots, children, key, func(_ Node[T]) bool {
		cnt++
		return true
	})
	return cnt
}

// Find 按先序找到第一个满足条件的节点
func Find[T any, K comparable](roots []T, children func(T) []T, key func(T) K, pred func(T) bool) (T, bool) {
	var (
		res   T
		found bool
	)
	Walk(roots, children, key, func(n Node[T]) bool {
		if pred(n.Val) {
			res, found = n.Val, true
			return false
		}
		return true
	})
	return res, found
}
