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
)

// Visitor computes a T for every kind of node.
type Visitor[T any] interface {
    VisitStart(n *Start) T
    VisitStop(n *Stop) T
    VisitBlock(n *Block) T
    VisitBranch(n *Branch) T
    VisitCall(n *Call) T
    VisitReturn(n *Return) T
    VisitCFProjection(n *CFProjection) T
    VisitConstant(n *Constant) T
    VisitProcedureConstant(n *ProcedureConstant) T
    VisitBinary(n *Binary) T
    VisitUnary(n *Unary) T
    VisitPhi(n *Phi) T
    VisitMemoryAccess(n *MemoryAccess) T
    VisitStore(n *Store) T
    VisitSlice(n *Slice) T
    VisitSequence(n *Sequence) T
    VisitProjection(n *Projection) T
    VisitDef(n *Def) T
    VisitUse(n *Use) T
    VisitConditionOf(n *ConditionOf) T
}

// ContextVisitor is a Visitor that threads a context value C through.
type ContextVisitor[T any, C any] interface {
    VisitStart(n *Start, ctx C) T
    VisitStop(n *Stop, ctx C) T
    VisitBlock(n *Block, ctx C) T
    VisitBranch(n *Branch, ctx C) T
    VisitCall(n *Call, ctx C) T
    VisitReturn(n *Return, ctx C) T
    VisitCFProjection(n *CFProjection, ctx C) T
    VisitConstant(n *Constant, ctx C) T
    VisitProcedureConstant(n *ProcedureConstant, ctx C) T
    VisitBinary(n *Binary, ctx C) T
    VisitUnary(n *Unary, ctx C) T
    VisitPhi(n *Phi, ctx C) T
    VisitMemoryAccess(n *MemoryAccess, ctx C) T
    VisitStore(n *Store, ctx C) T
    VisitSlice(n *Slice, ctx C) T
    VisitSequence(n *Sequence, ctx C) T
    VisitProjection(n *Projection, ctx C) T
    VisitDef(n *Def, ctx C) T
    VisitUse(n *Use, ctx C) T
    VisitConditionOf(n *ConditionOf, ctx C) T
}

// Accept dispatches n to the matching method of v.
func Accept[T any](n Node, v Visitor[T]) T {
    switch p := n.(type) {
        case *Start             : return v.VisitStart(p)
        case *Stop              : return v.VisitStop(p)
        case *Block             : return v.VisitBlock(p)
        case *Branch            : return v.VisitBranch(p)
        case *Call              : return v.VisitCall(p)
        case *Return            : return v.VisitReturn(p)
        case *CFProjection      : return v.VisitCFProjection(p)
        case *Constant          : return v.VisitConstant(p)
        case *ProcedureConstant : return v.VisitProcedureConstant(p)
        case *Binary            : return v.VisitBinary(p)
        case *Unary             : return v.VisitUnary(p)
        case *Phi               : return v.VisitPhi(p)
        case *MemoryAccess      : return v.VisitMemoryAccess(p)
        case *Store             : return v.VisitStore(p)
        case *Slice             : return v.VisitSlice(p)
        case *Sequence          : return v.VisitSequence(p)
        case *Projection        : return v.VisitProjection(p)
        case *Def               : return v.VisitDef(p)
        case *Use               : return v.VisitUse(p)
        case *ConditionOf       : return v.VisitConditionOf(p)
        default                 : panic(fmt.Sprintf("nodes: unknown node type: %T", n))
    }
}

// AcceptContext dispatches n with ctx to the matching method of v.
func AcceptContext[T any, C any](n Node, v ContextVisitor[T, C], ctx C) T {
    switch p := n.(type) {
        case *Start             : return v.VisitStart(p, ctx)
        case *Stop              : return v.VisitStop(p, ctx)
        case *Block             : return v.VisitBlock(p, ctx)
        case *Branch            : return v.VisitBranch(p, ctx)
        case *Call              : return v.VisitCall(p, ctx)
        case *Return            : return v.VisitReturn(p, ctx)
        case *CFProjection      : return v.VisitCFProjection(p, ctx)
        case *Constant          : return v.VisitConstant(p, ctx)
        case *ProcedureConstant : return v.VisitProcedureConstant(p, ctx)
        case *Binary            : return v.VisitBinary(p, ctx)
        case *Unary             : return v.VisitUnary(p, ctx)
        case *Phi               : return v.VisitPhi(p, ctx)
        case *MemoryAccess      : return v.VisitMemoryAccess(p, ctx)
        case *Store             : return v.VisitStore(p, ctx)
        case *Slice             : return v.VisitSlice(p, ctx)
        case *Sequence          : return v.VisitSequence(p, ctx)
        case *Projection        : return v.VisitProjection(p, ctx)
        case *Def               : return v.VisitDef(p, ctx)
        case *Use               : return v.VisitUse(p, ctx)
        case *ConditionOf       : return v.VisitConditionOf(p, ctx)
        default                 : panic(fmt.Sprintf("nodes: unknown node type: %T", n))
    }
}
