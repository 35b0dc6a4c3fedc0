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

// Package nodes is the sea-of-nodes graph: control flow and data flow are
// both edges between Nodes. Every node keeps its inputs (definitions it
// consumes, positional, possibly nil) and its outputs (nodes consuming it);
// the two lists are always kept mirrored by the edge operations below.
package nodes

import (
    `fmt`
)

type Node interface {
    fmt.Stringer

    // Id is unique within a Factory session and increases with creation order.
    Id() int

    // Label is the short human readable name of the node.
    Label() string

    Ins() []Node
    Outs() []Node
    In(i int) Node

    // IsUnused reports whether no node consumes this node.
    IsUnused() bool

    // IsDead reports whether the node has neither inputs nor outputs.
    IsDead() bool

    AddInput(n Node)
    SetInput(i int, n Node)
    ReplaceInput(old Node, rep Node) bool
    AddUse(n Node)
    RemoveUse(n Node) bool
    ClearUses()

    base() *_Node
}

type _Node struct {
    id   int
    this Node
    ins  []Node
    outs []Node
}

func (self *_Node) base() *_Node {
    return self
}

func (self *_Node) Id() int {
    return self.id
}

func (self *_Node) String() string {
    return fmt.Sprintf("%s:%d", self.this.Label(), self.id)
}

func (self *_Node) Ins() []Node {
    return self.ins
}

func (self *_Node) Outs() []Node {
    return self.outs
}

func (self *_Node) In(i int) Node {
    if i < len(self.ins) {
        return self.ins[i]
    } else {
        return nil
    }
}

func (self *_Node) IsUnused() bool {
    return len(self.outs) == 0
}

func (self *_Node) IsDead() bool {
    return len(self.outs) == 0 && len(self.ins) == 0
}

// AddInput appends n to the inputs, and this node to the outputs of n.
func (self *_Node) AddInput(n Node) {
    self.ins = append(self.ins, n)

    /* install the reciprocal edge */
    if n != nil {
        n.AddUse(self.this)
    }
}

// SetInput replaces the i-th input, moving the reciprocal output edge from
// the old definition to the new one.
func (self *_Node) SetInput(i int, n Node) {
    old := self.ins[i]

    /* nothing to do */
    if old == n {
        return
    }

    /* detach from the old definition */
    if old != nil {
        old.RemoveUse(self.this)
    }

    /* attach to the new definition */
    if self.ins[i] = n; n != nil {
        n.AddUse(self.this)
    }
}

// ReplaceInput replaces every input slot holding old with rep.
func (self *_Node) ReplaceInput(old Node, rep Node) bool {
    ret := false
    for i, p := range self.ins {
        if p == old {
            self.SetInput(i, rep)
            ret = true
        }
    }
    return ret
}

func (self *_Node) AddUse(n Node) {
    self.outs = append(self.outs, n)
}

// RemoveUse removes exactly one output edge to n. The output list is
// unordered, the last edge takes the place of the removed one.
func (self *_Node) RemoveUse(n Node) bool {
    for i, p := range self.outs {
        if p == n {
            last := len(self.outs) - 1
            self.outs[i] = self.outs[last]
            self.outs[last] = nil
            self.outs = self.outs[:last]
            return true
        }
    }
    return false
}

func (self *_Node) ClearUses() {
    self.outs = nil
}

// IsControl reports whether n is a control-flow node.
func IsControl(n Node) bool {
    _, ok := n.(Control)
    return ok
}

// IsMultiHead reports whether n produces multiple outputs.
func IsMultiHead(n Node) bool {
    _, ok := n.(Multi)
    return ok
}

// IsMultiTail reports whether n selects one output of a multi-output node.
func IsMultiTail(n Node) bool {
    switch n.(type) {
        case *Projection   : return true
        case *CFProjection : return true
        default            : return false
    }
}

// ControlInput returns the i-th input of n, which must be a control node.
func ControlInput(n Node, i int) Control {
    if c, ok := n.In(i).(Control); !ok {
        panic(fmt.Sprintf("nodes: input %d of %s is not a control node: %v", i, n, n.In(i)))
    } else {
        return c
    }
}
