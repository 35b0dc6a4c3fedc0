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

// Domain identifies a group of storages that alias each other, such as all
// the sub-registers of one physical register.
type Domain int

type Storage interface {
    fmt.Stringer
    Name() string
    DataType() DataType
    storage()
}

func (*Register)         storage() {}
func (*MemoryStorage)    storage() {}
func (*TemporaryStorage) storage() {}
func (*FlagGroup)        storage() {}

// Register is a bit-range of a register domain.
type Register struct {
    name   string
    Domain Domain
    Range  BitRange
}

func NewRegister(name string, domain Domain, r BitRange) *Register {
    return &Register {
        name   : name,
        Domain : domain,
        Range  : r,
    }
}

func (self *Register) Name() string {
    return self.name
}

func (self *Register) String() string {
    return self.name
}

func (self *Register) DataType() DataType {
    return Word(self.Range.Extent())
}

// Covers reports whether every bit of r is also a bit of this register.
func (self *Register) Covers(r *Register) bool {
    return self.Domain == r.Domain && self.Range.Covers(r.Range)
}

func (self *Register) Overlaps(r *Register) bool {
    return self.Domain == r.Domain && self.Range.Overlaps(r.Range)
}

func (self *Register) Contains(domain Domain, bit int) bool {
    return self.Domain == domain && self.Range.Contains(bit)
}

// MemoryStorage is the single memory state of a procedure.
type MemoryStorage struct {
    name string
}

func NewMemory(name string) *MemoryStorage {
    return &MemoryStorage{name}
}

func (self *MemoryStorage) Name() string {
    return self.name
}

func (self *MemoryStorage) String() string {
    return self.name
}

func (self *MemoryStorage) DataType() DataType {
    return Word(0)
}

// TemporaryStorage is a compiler temporary, local to a procedure and never
// live outside of it.
type TemporaryStorage struct {
    name string
    Type DataType
}

func NewTemporary(name string, dt DataType) *TemporaryStorage {
    return &TemporaryStorage {
        name: name,
        Type: dt,
    }
}

func (self *TemporaryStorage) Name() string {
    return self.name
}

func (self *TemporaryStorage) String() string {
    return self.name
}

func (self *TemporaryStorage) DataType() DataType {
    return self.Type
}

// FlagGroup is a set of bits of a flag register.
type FlagGroup struct {
    name         string
    FlagRegister *Register
    Bits         uint32
}

func NewFlagGroup(name string, reg *Register, bits uint32) *FlagGroup {
    return &FlagGroup {
        name         : name,
        FlagRegister : reg,
        Bits         : bits,
    }
}

func (self *FlagGroup) Name() string {
    return self.name
}

func (self *FlagGroup) String() string {
    return self.name
}

func (self *FlagGroup) DataType() DataType {
    return self.FlagRegister.DataType()
}
