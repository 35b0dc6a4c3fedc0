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

package cfg

import (
    `fmt`
)

type _Fixup struct {
    bb *Block
    br *Branch
    to string
}

// ProcedureBuilder assembles a Procedure statement by statement. Statements
// are laid out at consecutive addresses; a new block starts at every label
// and after every branch or return.
type ProcedureBuilder struct {
    pc    uint64
    proc  *Procedure
    cur   *Block
    fall  *Block
    refs  map[string]*Block
    pends []_Fixup
}

func CreateProcedureBuilder(arch Architecture, name string, addr uint64) *ProcedureBuilder {
    return &ProcedureBuilder {
        pc   : addr,
        proc : NewProcedure(name, arch),
        refs : make(map[string]*Block),
    }
}

// Procedure resolves all the branch targets and returns the procedure. The
// builder must not be used afterwards.
func (self *ProcedureBuilder) Procedure() *Procedure {
    var ok bool
    var to *Block

    /* flow off the end into the exit block */
    if self.cur != nil {
        self.proc.AddEdge(self.cur, self.proc.Exit)
        self.cur = nil
    }

    /* a trailing branch falls through into the exit block */
    if self.fall != nil {
        self.proc.AddEdge(self.fall, self.proc.Exit)
        self.fall = nil
    }

    /* patch all the pending branches, taken edges go after fall-through edges */
    for _, fx := range self.pends {
        if to, ok = self.refs[fx.to]; !ok {
            panic("labels are not fully resolved: " + fx.to)
        } else {
            fx.br.Target = to
            self.proc.AddEdge(fx.bb, to)
        }
    }

    /* the builder's life-time ends here */
    self.pends = nil
    return self.proc
}

func (self *ProcedureBuilder) link(bb *Block) {
    if self.cur != nil {
        self.proc.AddEdge(self.cur, bb)
    }

    /* fall-through edge of the previous branch */
    if self.fall != nil {
        self.proc.AddEdge(self.fall, bb)
        self.fall = nil
    }

    /* the first block is entered from the entry block */
    if len(self.proc.Entry.Succ) == 0 {
        self.proc.AddEdge(self.proc.Entry, bb)
    }
}

func (self *ProcedureBuilder) block() *Block {
    if self.cur == nil {
        bb := self.proc.AddBlock(fmt.Sprintf("l%08X", self.pc))
        self.link(bb)
        self.cur = bb
    }
    return self.cur
}

func (self *ProcedureBuilder) emit(ins Instruction) {
    self.block().Add(ins)
    self.pc += 4
}

// Label starts a new block named name. An empty name derives the name from
// the current address.
func (self *ProcedureBuilder) Label(name string) {
    if name == "" {
        name = fmt.Sprintf("l%08X", self.pc)
    }

    /* check for duplications */
    if _, ok := self.refs[name]; ok {
        panic("label " + name + " has already been linked")
    }

    /* create the labeled block */
    bb := self.proc.AddBlock(name)
    self.link(bb)
    self.cur = bb
    self.refs[name] = bb
}

func (self *ProcedureBuilder) Arch() Architecture {
    return self.proc.Arch
}

func (self *ProcedureBuilder) Reg(reg *Register) *Identifier {
    return &Identifier {
        Name    : reg.Name(),
        Type    : reg.DataType(),
        Storage : reg,
    }
}

func (self *ProcedureBuilder) Temp(name string, dt DataType) *Identifier {
    return &Identifier {
        Name    : name,
        Type    : dt,
        Storage : NewTemporary(name, dt),
    }
}

func (self *ProcedureBuilder) Flags(grf *FlagGroup) *Identifier {
    return &Identifier {
        Name    : grf.Name(),
        Type    : grf.DataType(),
        Storage : grf,
    }
}

func (self *ProcedureBuilder) MemId() *Identifier {
    mem := self.proc.Arch.Memory()
    return &Identifier { Name: mem.Name(), Type: mem.DataType(), Storage: mem }
}

func (self *ProcedureBuilder) Mem(dt DataType, ea Expression) *MemoryAccess {
    return &MemoryAccess {
        Type     : dt,
        MemoryId : self.MemId(),
        Address  : ea,
    }
}

func (self *ProcedureBuilder) Mem16(ea Expression) *MemoryAccess {
    return self.Mem(Word(16), ea)
}

func (self *ProcedureBuilder) Mem32(ea Expression) *MemoryAccess {
    return self.Mem(Word(32), ea)
}

func (self *ProcedureBuilder) Bin(op BinaryOp, dt DataType, a Expression, b Expression) *BinaryExpression {
    return &BinaryExpression { Op: op, Type: dt, Left: a, Right: b }
}

func (self *ProcedureBuilder) IAdd(a Expression, b Expression) *BinaryExpression {
    return self.Bin(OpAdd, a.DataType(), a, b)
}

func (self *ProcedureBuilder) ISub(a Expression, b Expression) *BinaryExpression {
    return self.Bin(OpSub, a.DataType(), a, b)
}

func (self *ProcedureBuilder) And(a Expression, b Expression) *BinaryExpression {
    return self.Bin(OpAnd, a.DataType(), a, b)
}

func (self *ProcedureBuilder) Eq(a Expression, b Expression) *BinaryExpression {
    return self.Bin(OpEq, Bool, a, b)
}

func (self *ProcedureBuilder) Lt(a Expression, b Expression) *BinaryExpression {
    return self.Bin(OpLt, Bool, a, b)
}

// Ge0 tests a signed value for being non-negative.
func (self *ProcedureBuilder) Ge0(a Expression) *BinaryExpression {
    return self.Bin(OpGe, Bool, a, Const(a.DataType(), 0))
}

func (self *ProcedureBuilder) Neg(a Expression) *UnaryExpression {
    return &UnaryExpression { Op: OpNeg, Type: a.DataType(), Expr: a }
}

func (self *ProcedureBuilder) Comp(a Expression) *UnaryExpression {
    return &UnaryExpression { Op: OpCom, Type: a.DataType(), Expr: a }
}

func (self *ProcedureBuilder) Slice(a Expression, dt DataType, offset int) *Slice {
    return &Slice { Type: dt, Expr: a, Offset: offset }
}

func (self *ProcedureBuilder) Seq(dt DataType, elems ...Expression) *MkSequence {
    return &MkSequence { Type: dt, Elems: elems }
}

func (self *ProcedureBuilder) Cond(a Expression) *ConditionOf {
    return &ConditionOf { Expr: a }
}

func (self *ProcedureBuilder) Convert(a Expression, from DataType, to DataType) *Conversion {
    return &Conversion { Expr: a, From: from, To: to }
}

func (self *ProcedureBuilder) External(name string) *ProcedureConstant {
    return &ProcedureConstant {
        Type     : self.proc.Arch.PointerType(),
        Name     : name,
        External : true,
    }
}

func (self *ProcedureBuilder) Assign(dst *Identifier, src Expression) {
    self.emit(&Assignment { Dst: dst, Src: src })
}

// AssignConst assigns v, truncated to the width of dst.
func (self *ProcedureBuilder) AssignConst(dst *Identifier, v uint64) {
    self.Assign(dst, Const(dst.Type, v))
}

func (self *ProcedureBuilder) Store(dst *MemoryAccess, src Expression) {
    self.emit(&Store { Dst: dst, Src: src })
}

// Branch ends the current block with a conditional branch to label. The next
// block becomes the fall-through successor.
func (self *ProcedureBuilder) Branch(cond Expression, label string) {
    br := &Branch { Cond: cond }
    bb := self.block()

    /* add a fixup, resolved when building the procedure */
    self.emit(br)
    self.pends = append(self.pends, _Fixup { bb: bb, br: br, to: label })

    /* the next block is the fall-through block */
    self.cur = nil
    self.fall = bb
}

func (self *ProcedureBuilder) Return(expr Expression) {
    self.emit(&ReturnInstruction { Expr: expr })
    self.proc.AddEdge(self.block(), self.proc.Exit)
    self.cur = nil
}

func (self *ProcedureBuilder) SideEffect(expr Expression) {
    self.emit(&SideEffect { Expr: expr })
}

func (self *ProcedureBuilder) Switch(expr Expression) {
    self.emit(&SwitchInstruction { Expr: expr })
}

// CallBuilder adds bindings to a call instruction.
type CallBuilder struct {
    ci *CallInstruction
}

func (self *ProcedureBuilder) Call(callee Expression) *CallBuilder {
    ci := &CallInstruction { Callee: callee }
    self.emit(ci)
    return &CallBuilder{ci}
}

func (self *CallBuilder) Use(id *Identifier) *CallBuilder {
    self.ci.Uses = append(self.ci.Uses, CallBinding { Storage: id.Storage, Expr: id })
    return self
}

func (self *CallBuilder) Def(id *Identifier) *CallBuilder {
    self.ci.Defs = append(self.ci.Defs, CallBinding { Storage: id.Storage, Expr: id })
    return self
}

func (self *CallBuilder) Instruction() *CallInstruction {
    return self.ci
}
