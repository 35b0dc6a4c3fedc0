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

package nodes

import (
    `fmt`

    `github.com/cloudwego/seaofnodes/cfg`
)

// Control is implemented by every node that carries control flow.
type Control interface {
    Node
    control()
}

func (*Start)        control() {}
func (*Stop)         control() {}
func (*Block)        control() {}
func (*Branch)       control() {}
func (*Call)         control() {}
func (*Return)       control() {}
func (*CFProjection) control() {}

// Start is the graph root. Constants and live-in definitions hang off it.
type Start struct {
    _Node
    Procedure *cfg.Procedure
}

func (self *Start) Label() string {
    return "Start"
}

// Stop is the graph exit. Its inputs are Start, the exit block, and one Use
// for every storage live at the exit.
type Stop struct {
    _Node
}

func (self *Stop) Label() string {
    return "Stop"
}

// Uses returns the live-out Use nodes of the procedure.
func (self *Stop) Uses() (r []*Use) {
    for _, p := range self.ins {
        if u, ok := p.(*Use); ok {
            r = append(r, u)
        }
    }
    return
}

// Block is a basic block of the source CFG. Its inputs are the control nodes
// transferring control into it.
type Block struct {
    _Node
    Block *cfg.Block
}

func (self *Block) Label() string {
    if self.Block.IsEntry() {
        return "<Entry>"
    } else if self.Block.IsExit() {
        return "<Exit>"
    } else {
        return self.Block.Name
    }
}

// Branch splits control in two: output 0 is the false edge, 1 the true edge.
type Branch struct {
    _Node
}

func (self *Branch) Label() string {
    return "branch"
}

func (self *Branch) Ctrl() Control {
    return ControlInput(self, 0)
}

func (self *Branch) Predicate() Node {
    return self.ins[1]
}

// Call is a control node calling Callee with the Use nodes following it.
type Call struct {
    _Node
}

func (self *Call) Label() string {
    return "call"
}

func (self *Call) Ctrl() Control {
    return ControlInput(self, 0)
}

func (self *Call) Callee() Node {
    return self.ins[1]
}

func (self *Call) Uses() (r []*Use) {
    for _, p := range self.ins[2:] {
        if u, ok := p.(*Use); ok {
            r = append(r, u)
        }
    }
    return
}

// Return leaves the procedure, optionally with a value.
type Return struct {
    _Node
}

func (self *Return) Label() string {
    return "return"
}

func (self *Return) Ctrl() Control {
    return ControlInput(self, 0)
}

// Value returns the returned value, or nil if none.
func (self *Return) Value() Node {
    return self.In(1)
}

// CFProjection selects control output Index of a multi-output node.
type CFProjection struct {
    _Node
    Index int
    Name  string
}

func (self *CFProjection) Label() string {
    return fmt.Sprintf("%d.%s", idof(self.In(0)), self.Name)
}

func (self *CFProjection) Head() Multi {
    return self.In(0).(Multi)
}

func idof(n Node) int {
    if n == nil {
        return 0
    } else {
        return n.Id()
    }
}
