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
    `math/bits`
    `strings`
)

// Architecture maps storage coordinates back to canonical storage objects.
type Architecture interface {
    Memory() *MemoryStorage
    PointerType() DataType
    GetRegister(domain Domain, r BitRange) *Register
    GetFlagGroup(reg *Register, bits uint32) *FlagGroup
}

type _RegKey struct {
    d Domain
    r BitRange
}

type _FlagKey struct {
    r *Register
    b uint32
}

// RegisterFile is a table driven Architecture. Lookups of bit-ranges or flag
// bits that were never declared synthesize (and remember) a canonical storage,
// so every lookup with the same coordinates returns the same object.
type RegisterFile struct {
    mem   *MemoryStorage
    ptr   DataType
    regs  map[_RegKey]*Register
    name  map[string]*Register
    base  map[Domain]*Register
    flags map[_FlagKey]*FlagGroup
}

func NewRegisterFile(ptrbits int) *RegisterFile {
    return &RegisterFile {
        mem   : NewMemory("Mem"),
        ptr   : Ptr(ptrbits),
        regs  : make(map[_RegKey]*Register),
        name  : make(map[string]*Register),
        base  : make(map[Domain]*Register),
        flags : make(map[_FlagKey]*FlagGroup),
    }
}

// AddRegister declares a named register. The widest register of a domain
// becomes the base name for synthesized sub-registers of that domain.
func (self *RegisterFile) AddRegister(name string, domain Domain, lsb int, msb int) *Register {
    reg := NewRegister(name, domain, Bits(lsb, msb))
    key := _RegKey { d: domain, r: reg.Range }

    /* check for duplications */
    if _, ok := self.name[name]; ok {
        panic("cfg: register " + name + " has already been declared")
    }

    /* update the base register of this domain */
    if b := self.base[domain]; b == nil || b.Range.Extent() < reg.Range.Extent() {
        self.base[domain] = reg
    }

    /* add to register tables */
    self.regs[key] = reg
    self.name[name] = reg
    return reg
}

// AddFlagGroup declares a named group of bits of a flag register.
func (self *RegisterFile) AddFlagGroup(name string, reg *Register, bits uint32) *FlagGroup {
    grf := NewFlagGroup(name, reg, bits)
    self.flags[_FlagKey { r: reg, b: bits }] = grf
    return grf
}

func (self *RegisterFile) Register(name string) *Register {
    if reg, ok := self.name[name]; !ok {
        panic("cfg: undefined register: " + name)
    } else {
        return reg
    }
}

func (self *RegisterFile) Memory() *MemoryStorage {
    return self.mem
}

func (self *RegisterFile) PointerType() DataType {
    return self.ptr
}

func (self *RegisterFile) GetRegister(domain Domain, r BitRange) *Register {
    var ok  bool
    var reg *Register
    var key = _RegKey { d: domain, r: r }

    /* find the canonical register */
    if reg, ok = self.regs[key]; ok {
        return reg
    }

    /* synthesize a sub-register from the domain base name */
    if b := self.base[domain]; b != nil {
        reg = NewRegister(fmt.Sprintf("%s%s", b.Name(), r), domain, r)
    } else {
        reg = NewRegister(fmt.Sprintf("reg%d%s", domain, r), domain, r)
    }

    /* remember it */
    self.regs[key] = reg
    return reg
}

func (self *RegisterFile) GetFlagGroup(reg *Register, mask uint32) *FlagGroup {
    var ok  bool
    var grf *FlagGroup
    var key = _FlagKey { r: reg, b: mask }

    /* find the canonical flag group */
    if grf, ok = self.flags[key]; ok {
        return grf
    }

    /* synthesize the name from single bit groups if possible */
    grf = NewFlagGroup(self.flagName(reg, mask), reg, mask)
    self.flags[key] = grf
    return grf
}

func (self *RegisterFile) flagName(reg *Register, mask uint32) string {
    var sb strings.Builder
    var rem = mask

    /* concatenate names of single-bit groups, lowest bit first */
    for rem != 0 {
        bit := uint32(1) << uint(bits.TrailingZeros32(rem))
        rem &^= bit

        /* every bit must be known to use the short form */
        if g, ok := self.flags[_FlagKey { r: reg, b: bit }]; !ok {
            return fmt.Sprintf("%s_%X", reg.Name(), mask)
        } else {
            sb.WriteString(g.Name())
        }
    }

    /* all bits are named */
    return sb.String()
}
