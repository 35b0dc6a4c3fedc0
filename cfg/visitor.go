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

type InstructionVisitor[T any] interface {
    VisitAssignment(*Assignment) T
    VisitBranch(*Branch) T
    VisitCallInstruction(*CallInstruction) T
    VisitReturnInstruction(*ReturnInstruction) T
    VisitStore(*Store) T
    VisitSwitchInstruction(*SwitchInstruction) T
    VisitSideEffect(*SideEffect) T
}

type ExpressionVisitor[T any] interface {
    VisitIdentifier(*Identifier) T
    VisitConstant(*Constant) T
    VisitBinaryExpression(*BinaryExpression) T
    VisitUnaryExpression(*UnaryExpression) T
    VisitMemoryAccess(*MemoryAccess) T
    VisitProcedureConstant(*ProcedureConstant) T
    VisitConditionOf(*ConditionOf) T
    VisitSlice(*Slice) T
    VisitMkSequence(*MkSequence) T
    VisitConversion(*Conversion) T
}

// AcceptInstruction dispatches ins to the matching method of v.
func AcceptInstruction[T any](ins Instruction, v InstructionVisitor[T]) T {
    switch p := ins.(type) {
        case *Assignment        : return v.VisitAssignment(p)
        case *Branch            : return v.VisitBranch(p)
        case *CallInstruction   : return v.VisitCallInstruction(p)
        case *ReturnInstruction : return v.VisitReturnInstruction(p)
        case *Store             : return v.VisitStore(p)
        case *SwitchInstruction : return v.VisitSwitchInstruction(p)
        case *SideEffect        : return v.VisitSideEffect(p)
        default                 : panic(fmt.Sprintf("cfg: invalid instruction type: %T", ins))
    }
}

// AcceptExpression dispatches expr to the matching method of v.
func AcceptExpression[T any](expr Expression, v ExpressionVisitor[T]) T {
    switch p := expr.(type) {
        case *Identifier        : return v.VisitIdentifier(p)
        case *Constant          : return v.VisitConstant(p)
        case *BinaryExpression  : return v.VisitBinaryExpression(p)
        case *UnaryExpression   : return v.VisitUnaryExpression(p)
        case *MemoryAccess      : return v.VisitMemoryAccess(p)
        case *ProcedureConstant : return v.VisitProcedureConstant(p)
        case *ConditionOf       : return v.VisitConditionOf(p)
        case *Slice             : return v.VisitSlice(p)
        case *MkSequence        : return v.VisitMkSequence(p)
        case *Conversion        : return v.VisitConversion(p)
        default                 : panic(fmt.Sprintf("cfg: invalid expression type: %T", expr))
    }
}
