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
    `strings`
)

type Expression interface {
    fmt.Stringer
    DataType() DataType
    expression()
}

func (*Identifier)        expression() {}
func (*Constant)          expression() {}
func (*BinaryExpression)  expression() {}
func (*UnaryExpression)   expression() {}
func (*MemoryAccess)      expression() {}
func (*ProcedureConstant) expression() {}
func (*ConditionOf)       expression() {}
func (*Slice)             expression() {}
func (*MkSequence)        expression() {}
func (*Conversion)        expression() {}

// Identifier names a storage.
type Identifier struct {
    Name    string
    Type    DataType
    Storage Storage
}

func (self *Identifier) DataType() DataType {
    return self.Type
}

func (self *Identifier) String() string {
    return self.Name
}

type BinaryExpression struct {
    Op    BinaryOp
    Type  DataType
    Left  Expression
    Right Expression
}

func (self *BinaryExpression) DataType() DataType {
    return self.Type
}

func (self *BinaryExpression) String() string {
    return fmt.Sprintf("(%s%s%s)", self.Left, self.Op, self.Right)
}

type UnaryExpression struct {
    Op   UnaryOp
    Type DataType
    Expr Expression
}

func (self *UnaryExpression) DataType() DataType {
    return self.Type
}

func (self *UnaryExpression) String() string {
    return fmt.Sprintf("%s%s", self.Op, self.Expr)
}

// MemoryAccess reads Type bits from the memory named by MemoryId.
type MemoryAccess struct {
    Type     DataType
    MemoryId *Identifier
    Address  Expression
}

func (self *MemoryAccess) DataType() DataType {
    return self.Type
}

func (self *MemoryAccess) String() string {
    return fmt.Sprintf("%s[%s:%s]", self.MemoryId, self.Address, self.Type)
}

// ProcedureConstant refers to a procedure by name.
type ProcedureConstant struct {
    Type     DataType
    Name     string
    External bool
}

func (self *ProcedureConstant) DataType() DataType {
    return self.Type
}

func (self *ProcedureConstant) String() string {
    return self.Name
}

// ConditionOf is the condition codes resulting from evaluating Expr.
type ConditionOf struct {
    Expr Expression
}

func (self *ConditionOf) DataType() DataType {
    return Word(32)
}

func (self *ConditionOf) String() string {
    return fmt.Sprintf("cond(%s)", self.Expr)
}

// Slice extracts Type.Bits bits of Expr starting at bit Offset.
type Slice struct {
    Type   DataType
    Expr   Expression
    Offset int
}

func (self *Slice) DataType() DataType {
    return self.Type
}

func (self *Slice) String() string {
    return fmt.Sprintf("SLICE(%s, %s, %d)", self.Expr, self.Type, self.Offset)
}

// MkSequence concatenates its elements, most significant element first.
type MkSequence struct {
    Type  DataType
    Elems []Expression
}

func (self *MkSequence) DataType() DataType {
    return self.Type
}

func (self *MkSequence) String() string {
    ret := make([]string, 0, len(self.Elems))
    for _, e := range self.Elems { ret = append(ret, e.String()) }
    return fmt.Sprintf("SEQ(%s)", strings.Join(ret, ", "))
}

// Conversion changes the representation of a value.
type Conversion struct {
    Expr Expression
    From DataType
    To   DataType
}

func (self *Conversion) DataType() DataType {
    return self.To
}

func (self *Conversion) String() string {
    return fmt.Sprintf("CONVERT(%s, %s, %s)", self.Expr, self.From, self.To)
}
