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
    `sync/atomic`

    `github.com/cloudwego/seaofnodes/cfg`
)

// NodeCount is the number of nodes created by all factories.
var NodeCount uint64

// Factory creates the nodes of one graph. Identities start at 1 for Start
// and 2 for Stop, and increase with every node created afterwards.
type Factory struct {
    nid   int
    start *Start
    stop  *Stop
    arena []Node
}

func NewFactory(proc *cfg.Procedure) *Factory {
    ret := new(Factory)
    ret.arena = []Node { nil }

    /* the two singletons */
    ret.start = ret.init(&Start { Procedure: proc }).(*Start)
    ret.stop = ret.init(new(Stop), ret.start).(*Stop)
    return ret
}

func (self *Factory) init(n Node, ins ...Node) Node {
    p := n.base()
    self.nid++

    /* assign the identity */
    p.id = self.nid
    p.this = n
    p.ins = make([]Node, 0, len(ins))

    /* install all the def-use edges */
    for _, v := range ins {
        p.AddInput(v)
    }

    /* add to the arena */
    self.arena = append(self.arena, n)
    atomic.AddUint64(&NodeCount, 1)
    return n
}

func (self *Factory) Start() *Start {
    return self.start
}

func (self *Factory) Stop() *Stop {
    return self.stop
}

// Count returns the number of identities handed out so far.
func (self *Factory) Count() int {
    return self.nid
}

// Node returns the node with identity id, or nil if it was never created.
// Removed nodes are still returned, they are simply dead.
func (self *Factory) Node(id int) Node {
    if id <= 0 || id >= len(self.arena) {
        return nil
    } else {
        return self.arena[id]
    }
}

func (self *Factory) Block(bb *cfg.Block) *Block {
    return self.init(&Block { Block: bb }).(*Block)
}

func (self *Factory) Branch(ctrl Control, pred Node) *Branch {
    return self.init(new(Branch), ctrl, pred).(*Branch)
}

func (self *Factory) Call(ctrl Control, fn Node, uses ...*Use) *Call {
    ins := make([]Node, 0, len(uses) + 2)
    ins = append(ins, ctrl, fn)

    /* bound arguments follow the callee */
    for _, u := range uses {
        ins = append(ins, u)
    }

    /* create the call node */
    return self.init(new(Call), ins...).(*Call)
}

func (self *Factory) Return(ctrl Control, val Node) *Return {
    if val == nil {
        return self.init(new(Return), ctrl).(*Return)
    } else {
        return self.init(new(Return), ctrl, val).(*Return)
    }
}

func (self *Factory) CFProjection(m Multi, idx int, name string) *CFProjection {
    return self.init(&CFProjection { Index: idx, Name: name }, m).(*CFProjection)
}

func (self *Factory) Projection(m Multi, idx int, name string) *Projection {
    return self.init(&Projection { Index: idx, Name: name }, m).(*Projection)
}

func (self *Factory) Constant(v *cfg.Constant) *Constant {
    return self.init(&Constant { Value: v }, self.start).(*Constant)
}

func (self *Factory) ProcedureConstant(v *cfg.ProcedureConstant) *ProcedureConstant {
    return self.init(&ProcedureConstant { Procedure: v }, self.start).(*ProcedureConstant)
}

func (self *Factory) Binary(op cfg.BinaryOp, dt cfg.DataType, left Node, right Node) *Binary {
    return self.init(&Binary { Op: op, Type: dt }, nil, left, right).(*Binary)
}

func (self *Factory) Unary(op cfg.UnaryOp, dt cfg.DataType, val Node) *Unary {
    return self.init(&Unary { Op: op, Type: dt }, nil, val).(*Unary)
}

// Phi creates a phi in bb without any operands.
func (self *Factory) Phi(bb *Block) *Phi {
    if bb == nil {
        panic("nodes: phi without a block")
    } else {
        return self.init(new(Phi), bb).(*Phi)
    }
}

func (self *Factory) MemoryAccess(dt cfg.DataType, mem Node, ea Node) *MemoryAccess {
    return self.init(&MemoryAccess { Type: dt }, mem, ea).(*MemoryAccess)
}

func (self *Factory) Store(dt cfg.DataType, ctrl Control, mem Node, ea Node, val Node) *Store {
    return self.init(&Store { Type: dt }, ctrl, mem, ea, val).(*Store)
}

func (self *Factory) Slice(dt cfg.DataType, val Node, offset int) *Slice {
    if offset < 0 {
        panic(fmt.Sprintf("nodes: negative slice offset: %d", offset))
    } else {
        return self.init(&Slice { Type: dt, Offset: offset }, nil, val).(*Slice)
    }
}

// Sequence concatenates elems, the most significant element goes first.
func (self *Factory) Sequence(dt cfg.DataType, elems ...Node) *Sequence {
    return self.init(&Sequence { Type: dt }, append([]Node { nil }, elems...)...).(*Sequence)
}

// Def creates the unknown value of st as seen right after ctrl.
func (self *Factory) Def(ctrl Control, st cfg.Storage) *Def {
    return self.init(&Def { Storage: st }, ctrl).(*Def)
}

// Use creates a sink keeping val alive as the content of st at ctrl.
func (self *Factory) Use(ctrl Control, st cfg.Storage, val Node) *Use {
    return self.init(&Use { Storage: st }, ctrl, val).(*Use)
}

func (self *Factory) ConditionOf(val Node) *ConditionOf {
    return self.init(new(ConditionOf), nil, val).(*ConditionOf)
}
