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

// Package loader translates a procedure into a sea-of-nodes graph, building
// the SSA form on the fly.
package loader

import (
    `fmt`

    `github.com/bits-and-blooms/bitset`
    `github.com/cloudwego/seaofnodes/cfg`
    `github.com/cloudwego/seaofnodes/internal/logger`
    `github.com/cloudwego/seaofnodes/nodes`
    `github.com/oleiade/lane`
    `go.uber.org/zap`
)

type Loader struct {
    proc    *cfg.Procedure
    factory *nodes.Factory
    ssa     *SSABuilder
    blocks  map[*cfg.Block]*nodes.Block
    cur     *cfg.Block
    ctrl    nodes.Control
}

func New(proc *cfg.Procedure, f *nodes.Factory) *Loader {
    ret := &Loader {
        proc    : proc,
        factory : f,
        blocks  : make(map[*cfg.Block]*nodes.Block, len(proc.Blocks)),
    }

    /* create the SSA builder */
    ret.ssa = NewSSABuilder(proc.Arch, f, ret.blocks)
    return ret
}

// Load translates every block reachable from the entry block, and returns
// the Stop node of the graph.
func (self *Loader) Load() *nodes.Stop {
    q := lane.NewQueue()
    v := bitset.New(uint(len(self.proc.Blocks)))

    /* the exit block never gets any new predecessors */
    self.ssa.SealBlock(self.proc.Exit)
    self.createBlockNodes()

    /* the entry block is entered from Start */
    q.Enqueue(self.proc.Entry)
    self.blocks[self.proc.Entry].AddInput(self.factory.Start())

    /* translate all the blocks */
    for !q.Empty() {
        bb := q.Dequeue().(*cfg.Block)

        /* check for visited blocks */
        if v.Test(uint(bb.Id)) {
            continue
        }

        /* enter the block */
        v.Set(uint(bb.Id))
        self.enterBlock(bb)

        /* translate the statements */
        for _, ins := range bb.Statements {
            self.instr(ins)
        }

        /* fall into the successors */
        for i, succ := range bb.Succ {
            if self.ctrl != nil {
                self.connect(i, self.ctrl)
            }
            q.Enqueue(succ)
        }

        /* all the statements are translated */
        self.ssa.SealBlock(bb)
    }

    /* finalize the exit block */
    stop := self.factory.Stop()
    stop.AddInput(self.blocks[self.proc.Exit])
    self.ssa.UseDefinedStorages(self.proc.Exit)
    self.ssa.ProcessIncompletePhis()
    return stop
}

// Block returns the node of bb.
func (self *Loader) Block(bb *cfg.Block) *nodes.Block {
    return self.blocks[bb]
}

func (self *Loader) createBlockNodes() {
    for _, bb := range self.proc.Blocks {
        nb := self.factory.Block(bb)
        self.blocks[bb] = nb

        /* one control input per predecessor, filled when it is translated */
        for range bb.Pred {
            nb.AddInput(nil)
        }
    }
}

func (self *Loader) enterBlock(bb *cfg.Block) {
    self.cur = bb
    self.ctrl = self.blocks[bb]
    self.ssa.EnterBlock(bb)

    /* the diagnostic channel */
    if ce := logger.Logger().Check(zap.DebugLevel, "block"); ce != nil {
        ce.Write(zap.String("name", bb.Name), zap.Int("statements", len(bb.Statements)))
    }
}

// connect makes ctrl the control input of the i-th successor of the current
// block, in the slot matching the current block in its predecessor list.
func (self *Loader) connect(i int, ctrl nodes.Control) {
    nth := 0
    succ := self.cur.Succ[i]

    /* count the parallel edges before this one */
    for _, bb := range self.cur.Succ[:i] {
        if bb == succ {
            nth++
        }
    }

    /* find the matching predecessor slot */
    for j, bb := range succ.Pred {
        if bb == self.cur {
            if nth == 0 {
                self.blocks[succ].SetInput(j, ctrl)
                return
            }
            nth--
        }
    }

    /* not a real CFG edge */
    panic(fmt.Sprintf("loader: %s is not a predecessor of %s", self.cur, succ))
}

func (self *Loader) control() nodes.Control {
    if self.ctrl == nil {
        panic("loader: no control flow reaches the statement in " + self.cur.Name)
    } else {
        return self.ctrl
    }
}

func (self *Loader) instr(ins cfg.Instruction) nodes.Node {
    return cfg.AcceptInstruction[nodes.Node](ins, self)
}

func (self *Loader) expr(expr cfg.Expression) nodes.Node {
    return cfg.AcceptExpression[nodes.Node](expr, self)
}

/** Instructions **/

func (self *Loader) VisitAssignment(ins *cfg.Assignment) nodes.Node {
    self.control()
    src := self.expr(ins.Src)
    return self.ssa.WriteStorage(ins.Dst.Storage, self.cur, src)
}

func (self *Loader) VisitBranch(ins *cfg.Branch) nodes.Node {
    ctrl := self.control()
    pred := self.expr(ins.Cond)

    /* a branch always has both successors */
    if len(self.cur.Succ) != 2 {
        panic(fmt.Sprintf("loader: branch block %s has %d successors", self.cur, len(self.cur.Succ)))
    }

    /* split the control flow */
    br := self.factory.Branch(ctrl, pred)
    self.connect(nodes.BranchFalse, self.factory.CFProjection(br, nodes.BranchFalse, "false"))
    self.connect(nodes.BranchTrue, self.factory.CFProjection(br, nodes.BranchTrue, "true"))

    /* the branch ends the block */
    self.ctrl = nil
    return br
}

func (self *Loader) VisitCallInstruction(ins *cfg.CallInstruction) nodes.Node {
    ctrl := self.control()
    callee := self.expr(ins.Callee)
    uses := make([]*nodes.Use, 0, len(ins.Uses))

    /* arguments are bound before the call */
    for _, u := range ins.Uses {
        uses = append(uses, self.factory.Use(ctrl, u.Storage, self.expr(u.Expr)))
    }

    /* results are defined by the call */
    call := self.factory.Call(ctrl, callee, uses...)
    for _, d := range ins.Defs {
        self.ssa.WriteStorage(d.Storage, self.cur, self.factory.Def(call, d.Storage))
    }

    /* the call is the new control */
    self.ctrl = call
    return call
}

func (self *Loader) VisitReturnInstruction(ins *cfg.ReturnInstruction) nodes.Node {
    var val nodes.Node
    var ctrl = self.control()

    /* evaluate the return value if any */
    if ins.Expr != nil {
        val = self.expr(ins.Expr)
    }

    /* return into the exit block */
    ret := self.factory.Return(ctrl, val)
    self.returnTo(ret)

    /* nothing follows the return */
    self.ctrl = nil
    return ret
}

func (self *Loader) returnTo(ret *nodes.Return) {
    for i, bb := range self.cur.Succ {
        if bb == self.proc.Exit {
            self.connect(i, ret)
            return
        }
    }

    /* not linked to the exit block in the CFG */
    self.blocks[self.proc.Exit].AddInput(ret)
}

func (self *Loader) VisitStore(ins *cfg.Store) nodes.Node {
    ctrl := self.control()
    src := self.expr(ins.Src)
    mem := self.expr(ins.Dst.MemoryId)
    ea := self.expr(ins.Dst.Address)

    /* split the store into control and memory */
    st := self.factory.Store(ins.Dst.Type, ctrl, mem, ea, src)
    self.ctrl = self.factory.CFProjection(st, nodes.StoreCtrl, "ctrl")
    self.ssa.WriteStorage(ins.Dst.MemoryId.Storage, self.cur, self.factory.Projection(st, nodes.StoreMemory, "mem"))
    return st
}

func (self *Loader) VisitSwitchInstruction(ins *cfg.SwitchInstruction) nodes.Node {
    panic(UnsupportedError { Kind: "instruction", Text: ins.String() })
}

func (self *Loader) VisitSideEffect(ins *cfg.SideEffect) nodes.Node {
    panic(UnsupportedError { Kind: "instruction", Text: ins.String() })
}

/** Expressions **/

func (self *Loader) VisitIdentifier(expr *cfg.Identifier) nodes.Node {
    return self.ssa.ReadStorage(expr.Storage, self.cur)
}

func (self *Loader) VisitConstant(expr *cfg.Constant) nodes.Node {
    return self.factory.Constant(expr)
}

func (self *Loader) VisitBinaryExpression(expr *cfg.BinaryExpression) nodes.Node {
    left := self.expr(expr.Left)
    right := self.expr(expr.Right)
    return self.factory.Binary(expr.Op, expr.Type, left, right)
}

func (self *Loader) VisitUnaryExpression(expr *cfg.UnaryExpression) nodes.Node {
    return self.factory.Unary(expr.Op, expr.Type, self.expr(expr.Expr))
}

func (self *Loader) VisitMemoryAccess(expr *cfg.MemoryAccess) nodes.Node {
    ea := self.expr(expr.Address)
    mem := self.expr(expr.MemoryId)
    return self.factory.MemoryAccess(expr.Type, mem, ea)
}

func (self *Loader) VisitProcedureConstant(expr *cfg.ProcedureConstant) nodes.Node {
    return self.factory.ProcedureConstant(expr)
}

func (self *Loader) VisitConditionOf(expr *cfg.ConditionOf) nodes.Node {
    return self.factory.ConditionOf(self.expr(expr.Expr))
}

func (self *Loader) VisitSlice(expr *cfg.Slice) nodes.Node {
    return self.factory.Slice(expr.Type, self.expr(expr.Expr), expr.Offset)
}

func (self *Loader) VisitMkSequence(expr *cfg.MkSequence) nodes.Node {
    elems := make([]nodes.Node, 0, len(expr.Elems))
    for _, v := range expr.Elems {
        elems = append(elems, self.expr(v))
    }
    return self.factory.Sequence(expr.Type, elems...)
}

func (self *Loader) VisitConversion(expr *cfg.Conversion) nodes.Node {
    panic(UnsupportedError { Kind: "expression", Text: expr.String() })
}
