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


package analysis

import (
    `github.com/cloudwego/seaofnodes/cfg`
    `github.com/cloudwego/seaofnodes/nodes`
)

// Peephole is the set of local rewrite rules. Every visit returns either nil,
// leaving the node as it is, or a node computing the same value.
type Peephole struct {
    f *nodes.Factory
}

func NewPeephole(f *nodes.Factory) *Peephole {
    return &Peephole { f: f }
}

func constof(n nodes.Node) (*cfg.Constant, bool) {
    if p, ok := n.(*nodes.Constant); !ok {
        return nil, false
    } else {
        return p.Value, true
    }
}

func (self *Peephole) VisitBinary(n *nodes.Binary) nodes.Node {
    if !n.Op.IsValid() {
        panic(UnsupportedError { Node: n })
    }

    /* both operands must be constants */
    x, ok1 := constof(n.Left())
    y, ok2 := constof(n.Right())

    /* evaluate the operator, division by zero is left alone */
    if ok1 && ok2 {
        if v, ok := n.Op.Apply(n.Type, x, y); ok {
            return self.f.Constant(v)
        }
    }
    return nil
}

func (self *Peephole) VisitUnary(n *nodes.Unary) nodes.Node {
    if !n.Op.IsValid() {
        panic(UnsupportedError { Node: n })
    }

    /* evaluate the operator */
    if x, ok := constof(n.Operand()); ok {
        return self.f.Constant(n.Op.Apply(n.Type, x))
    } else {
        return nil
    }
}

func (self *Peephole) VisitSlice(n *nodes.Slice) nodes.Node {
    var v uint64
    var x *cfg.Constant

    /* only constants can be sliced */
    if p, ok := constof(n.Value()); !ok {
        return nil
    } else {
        x = p
    }

    /* bits past the end of the value read as zero */
    if n.Offset < 64 {
        v = x.Value >> uint(n.Offset)
    }

    /* truncated by Const */
    return self.f.Constant(cfg.Const(n.Type, v))
}

func (self *Peephole) VisitSequence(n *nodes.Sequence) nodes.Node {
    var nb int
    var rv uint64

    /* most significant element first */
    for _, p := range n.Elems() {
        x, ok := constof(p)

        /* must fit in a single constant */
        if !ok || nb + x.Type.Bits > 64 {
            return nil
        }

        /* shift in the element */
        nb += x.Type.Bits
        rv = (rv << uint(x.Type.Bits)) | x.Value
    }

    /* the sequence might be empty */
    if nb == 0 {
        return nil
    } else {
        return self.f.Constant(cfg.Const(n.Type, rv))
    }
}

func (self *Peephole) VisitStart(*nodes.Start) nodes.Node                         { return nil }
func (self *Peephole) VisitStop(*nodes.Stop) nodes.Node                           { return nil }
func (self *Peephole) VisitBlock(*nodes.Block) nodes.Node                         { return nil }
func (self *Peephole) VisitBranch(*nodes.Branch) nodes.Node                       { return nil }
func (self *Peephole) VisitCall(*nodes.Call) nodes.Node                           { return nil }
func (self *Peephole) VisitReturn(*nodes.Return) nodes.Node                       { return nil }
func (self *Peephole) VisitCFProjection(*nodes.CFProjection) nodes.Node           { return nil }
func (self *Peephole) VisitConstant(*nodes.Constant) nodes.Node                   { return nil }
func (self *Peephole) VisitProcedureConstant(*nodes.ProcedureConstant) nodes.Node { return nil }
func (self *Peephole) VisitPhi(*nodes.Phi) nodes.Node                             { return nil }
func (self *Peephole) VisitMemoryAccess(*nodes.MemoryAccess) nodes.Node           { return nil }
func (self *Peephole) VisitStore(*nodes.Store) nodes.Node                         { return nil }
func (self *Peephole) VisitProjection(*nodes.Projection) nodes.Node               { return nil }
func (self *Peephole) VisitDef(*nodes.Def) nodes.Node                             { return nil }
func (self *Peephole) VisitUse(*nodes.Use) nodes.Node                             { return nil }
func (self *Peephole) VisitConditionOf(*nodes.ConditionOf) nodes.Node             { return nil }
