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
    `strings`

    `github.com/cloudwego/seaofnodes/cfg`
)

type Constant struct {
    _Node
    Value *cfg.Constant
}

func (self *Constant) Label() string {
    return "#" + self.Value.String()
}

type ProcedureConstant struct {
    _Node
    Procedure *cfg.ProcedureConstant
}

func (self *ProcedureConstant) Label() string {
    return self.Procedure.Name
}

// Binary applies Op to its two operands, slot 0 is unused.
type Binary struct {
    _Node
    Op   cfg.BinaryOp
    Type cfg.DataType
}

func (self *Binary) Label() string {
    return self.Op.String()
}

func (self *Binary) Left() Node {
    return self.ins[1]
}

func (self *Binary) Right() Node {
    return self.ins[2]
}

type Unary struct {
    _Node
    Op   cfg.UnaryOp
    Type cfg.DataType
}

func (self *Unary) Label() string {
    return self.Op.String()
}

func (self *Unary) Operand() Node {
    return self.ins[1]
}

// Phi merges one value per predecessor of its block. Input 0 is the block,
// input i+1 is the value flowing in from the i-th predecessor.
type Phi struct {
    _Node
}

func (self *Phi) Label() string {
    return fmt.Sprintf("phi_%d", self.id)
}

func (self *Phi) Block() *Block {
    if bb, ok := self.In(0).(*Block); !ok {
        panic(fmt.Sprintf("nodes: phi %d is not bound to a block", self.id))
    } else {
        return bb
    }
}

func (self *Phi) Operands() []Node {
    if len(self.ins) == 0 {
        return nil
    } else {
        return self.ins[1:]
    }
}

// MemoryAccess loads a value of Type from memory input 0 at address input 1.
type MemoryAccess struct {
    _Node
    Type cfg.DataType
}

func (self *MemoryAccess) Label() string {
    return "Mem"
}

func (self *MemoryAccess) Memory() Node {
    return self.ins[0]
}

func (self *MemoryAccess) Address() Node {
    return self.ins[1]
}

// Store writes a value to memory. Its inputs are control, memory, address
// and value; output 0 is the control projection, output 1 the new memory.
type Store struct {
    _Node
    Type cfg.DataType
}

func (self *Store) Label() string {
    return "Store"
}

func (self *Store) Ctrl() Control {
    return ControlInput(self, 0)
}

func (self *Store) Memory() Node {
    return self.ins[1]
}

func (self *Store) Address() Node {
    return self.ins[2]
}

func (self *Store) Value() Node {
    return self.ins[3]
}

// Slice extracts Type.Bits bits starting at bit Offset of input 1.
type Slice struct {
    _Node
    Type   cfg.DataType
    Offset int
}

func (self *Slice) Label() string {
    return "slice"
}

func (self *Slice) Value() Node {
    return self.ins[1]
}

// Sequence concatenates its inputs (after slot 0), most significant first.
type Sequence struct {
    _Node
    Type cfg.DataType
}

func (self *Sequence) Label() string {
    return "SEQ"
}

func (self *Sequence) Elems() []Node {
    return self.ins[1:]
}

// Projection selects value output Index of a multi-output node.
type Projection struct {
    _Node
    Index int
    Name  string
}

func (self *Projection) Label() string {
    return fmt.Sprintf("%d.%s", idof(self.In(0)), self.Name)
}

func (self *Projection) Head() Multi {
    return self.In(0).(Multi)
}

// Def is the unknown value a storage holds when control reaches input 0,
// either on entry to the procedure or after a call.
type Def struct {
    _Node
    Storage cfg.Storage
}

func (self *Def) Label() string {
    return "def_" + self.Storage.Name()
}

// Use keeps a value alive as the content of Storage at control input 0.
type Use struct {
    _Node
    Storage cfg.Storage
}

func (self *Use) Label() string {
    return "use_" + self.Storage.Name()
}

func (self *Use) Ctrl() Control {
    return ControlInput(self, 0)
}

func (self *Use) Value() Node {
    return self.ins[1]
}

type ConditionOf struct {
    _Node
}

func (self *ConditionOf) Label() string {
    return "cond"
}

func (self *ConditionOf) Expr() Node {
    return self.ins[1]
}

// Format writes n with its inputs expanded, down to depth levels.
func Format(n Node, depth int) string {
    var sb strings.Builder
    format(&sb, n, depth, make(map[Node]bool))
    return sb.String()
}

func format(sb *strings.Builder, n Node, depth int, visited map[Node]bool) {
    if n == nil {
        sb.WriteString("_")
        return
    }

    /* already written or too deep */
    if visited[n] || depth <= 0 || len(n.Ins()) == 0 || IsControl(n) {
        sb.WriteString(n.Label())
        return
    }

    /* write the operands */
    visited[n] = true
    sb.WriteString(n.Label())
    sb.WriteString("(")

    /* unused slots are written as "_" */
    for i, p := range n.Ins() {
        if i != 0 {
            sb.WriteString(", ")
        }
        format(sb, p, depth - 1, visited)
    }

    /* close the operand list */
    sb.WriteString(")")
}
