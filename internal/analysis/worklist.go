/*
 * Copyright 2026 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


// Package analysis rewrites a node graph to a fixed point: a worklist of
// nodes is drained, dead nodes are removed and live ones are offered to a
// set of peephole rules that may replace them with simpler nodes.
package analysis

import (
    `github.com/bits-and-blooms/bitset`
    `github.com/oleiade/lane`

    `github.com/cloudwego/seaofnodes/nodes`
)

// Worklist is a FIFO queue of nodes, a node is never queued twice at once.
type Worklist struct {
    q *lane.Queue
    v *bitset.BitSet
}

func NewWorklist() *Worklist {
    return &Worklist {
        q: lane.NewQueue(),
        v: bitset.New(64),
    }
}

func (self *Worklist) Add(n nodes.Node) {
    if id := uint(n.Id()); !self.v.Test(id) {
        self.v.Set(id)
        self.q.Enqueue(n)
    }
}

func (self *Worklist) Empty() bool {
    return self.q.Empty()
}

// Next removes and returns the oldest node, or nil if the list is empty.
func (self *Worklist) Next() nodes.Node {
    if self.q.Empty() {
        return nil
    }

    /* the node may be queued again from now on */
    n := self.q.Dequeue().(nodes.Node)
    self.v.Clear(uint(n.Id()))
    return n
}

type _Frame struct {
    n nodes.Node
    i int
}

// NodeIter walks the graph backwards from a root along the input edges, and
// yields every node after all of its inputs (post-order).
type NodeIter struct {
    n nodes.Node
    s *lane.Stack
    v *bitset.BitSet
}

func NewNodeIter(root nodes.Node) *NodeIter {
    ret := &NodeIter {
        s: lane.NewStack(),
        v: bitset.New(64),
    }

    /* start from the root */
    ret.v.Set(uint(root.Id()))
    ret.s.Push(&_Frame { n: root })
    return ret
}

func (self *NodeIter) Next() bool {
    for !self.s.Empty() {
        fp := self.s.Head().(*_Frame)
        ins := fp.n.Ins()

        /* descend into the next unvisited input */
        for fp.i < len(ins) {
            p := ins[fp.i]
            fp.i++

            /* skip empty slots and visited nodes */
            if p == nil || self.v.Test(uint(p.Id())) {
                continue
            }

            /* visit this input first */
            self.v.Set(uint(p.Id()))
            self.s.Push(&_Frame { n: p })
            break
        }

        /* all the inputs are visited, pop the current node */
        if fp.i >= len(ins) && self.s.Head() == fp {
            self.n = self.s.Pop().(*_Frame).n
            return true
        }
    }

    /* no more nodes */
    self.n = nil
    return false
}

func (self *NodeIter) Node() nodes.Node {
    return self.n
}

func (self *NodeIter) ForEach(action func(n nodes.Node)) {
    for self.Next() {
        action(self.n)
    }
}

// PostOrder returns every node reachable from root through input edges,
// inputs before their consumers, root last.
func PostOrder(root nodes.Node) []nodes.Node {
    var ret []nodes.Node
    NewNodeIter(root).ForEach(func(n nodes.Node) { ret = append(ret, n) })
    return ret
}
