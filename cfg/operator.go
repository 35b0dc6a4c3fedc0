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

type BinaryOp uint8

const (
    OpAdd BinaryOp = iota
    OpSub
    OpMul
    OpUMul
    OpSMul
    OpUDiv
    OpSDiv
    OpUMod
    OpSMod
    OpAnd
    OpOr
    OpXor
    OpShl
    OpShr
    OpSar
    OpEq
    OpNe
    OpLt
    OpLe
    OpGt
    OpGe
    OpUlt
    OpUle
    OpUgt
    OpUge
)

var _BinaryOpNames = [...]string {
    OpAdd  : " + ",
    OpSub  : " - ",
    OpMul  : " * ",
    OpUMul : " *u ",
    OpSMul : " *s ",
    OpUDiv : " /u ",
    OpSDiv : " / ",
    OpUMod : " %u ",
    OpSMod : " % ",
    OpAnd  : " & ",
    OpOr   : " | ",
    OpXor  : " ^ ",
    OpShl  : " << ",
    OpShr  : " >>u ",
    OpSar  : " >> ",
    OpEq   : " == ",
    OpNe   : " != ",
    OpLt   : " < ",
    OpLe   : " <= ",
    OpGt   : " > ",
    OpGe   : " >= ",
    OpUlt  : " <u ",
    OpUle  : " <=u ",
    OpUgt  : " >u ",
    OpUge  : " >=u ",
}

func (self BinaryOp) String() string {
    if int(self) < len(_BinaryOpNames) {
        return _BinaryOpNames[self]
    } else {
        return fmt.Sprintf("<binop %d>", self)
    }
}

// IsValid reports whether the operator is one Apply knows how to evaluate.
func (self BinaryOp) IsValid() bool {
    return self <= OpUge
}

// IsCompare reports whether the operator produces a boolean.
func (self BinaryOp) IsCompare() bool {
    return self >= OpEq && self <= OpUge
}

func cond(v bool) uint64 {
    if v {
        return 1
    } else {
        return 0
    }
}

// Apply evaluates the operator on two constants at the width of dt. It
// reports false when the operation has no defined result (division by zero).
func (self BinaryOp) Apply(dt DataType, x *Constant, y *Constant) (*Constant, bool) {
    var r uint64
    var u uint64 = x.Value
    var v uint64 = y.Value
    var s int64 = sext(x.Value, dt.Bits)
    var t int64 = sext(y.Value, dt.Bits)

    /* comparisons produce booleans */
    if self.IsCompare() {
        dt = Bool
    }

    /* evaluate the operator */
    switch self {
        case OpAdd  : r = u + v
        case OpSub  : r = u - v
        case OpMul  : r = u * v
        case OpUMul : r = u * v
        case OpSMul : r = uint64(s * t)
        case OpAnd  : r = u & v
        case OpOr   : r = u | v
        case OpXor  : r = u ^ v
        case OpShl  : r = u << v
        case OpShr  : r = (u & x.Type.Mask()) >> v
        case OpSar  : r = uint64(s >> v)
        case OpEq   : r = cond(u == v)
        case OpNe   : r = cond(u != v)
        case OpLt   : r = cond(s <  t)
        case OpLe   : r = cond(s <= t)
        case OpGt   : r = cond(s >  t)
        case OpGe   : r = cond(s >= t)
        case OpUlt  : r = cond(u <  v)
        case OpUle  : r = cond(u <= v)
        case OpUgt  : r = cond(u >  v)
        case OpUge  : r = cond(u >= v)

        /* division by zero has no result */
        case OpUDiv, OpSDiv, OpUMod, OpSMod: {
            if v == 0 {
                return nil, false
            }

            /* evaluate the division */
            switch self {
                case OpUDiv : r = u / v
                case OpSDiv : r = uint64(s / t)
                case OpUMod : r = u % v
                case OpSMod : r = uint64(s % t)
            }
        }

        /* should never happen */
        default: {
            panic(fmt.Sprintf("cfg: invalid binary operator: %d", self))
        }
    }

    /* truncate to the declared width */
    return Const(dt, r), true
}

type UnaryOp uint8

const (
    OpNeg UnaryOp = iota
    OpCom
    OpNot
)

func (self UnaryOp) String() string {
    switch self {
        case OpNeg : return "-"
        case OpCom : return "~"
        case OpNot : return "!"
        default    : return fmt.Sprintf("<unop %d>", self)
    }
}

func (self UnaryOp) IsValid() bool {
    return self <= OpNot
}

// Apply evaluates the operator on a constant at the width of dt.
func (self UnaryOp) Apply(dt DataType, x *Constant) *Constant {
    switch self {
        case OpNeg : return Const(dt, -x.Value)
        case OpCom : return Const(dt, ^x.Value)
        case OpNot : return Const(Bool, cond(x.Value == 0))
        default    : panic(fmt.Sprintf("cfg: invalid unary operator: %d", self))
    }
}
