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

package loader

import (
    `github.com/cloudwego/seaofnodes/cfg`
    `github.com/cloudwego/seaofnodes/nodes`
)

// _Worker implements the per-block definitions of one class of storages.
type _Worker interface {
    define()
    storage() cfg.Storage
    makeDef() nodes.Node
    read(bb *cfg.Block) (nodes.Node, bool)
    write(st *_BlockState, n nodes.Node)
}

/** Registers **/

type _RegisterWorker struct {
    b      *SSABuilder
    domain cfg.Domain
    rng    cfg.BitRange
}

func (self *_RegisterWorker) storage() cfg.Storage {
    return self.b.arch.GetRegister(self.domain, self.rng)
}

func (self *_RegisterWorker) define() {
    if r, ok := self.b.regs[self.domain]; !ok {
        self.b.regs[self.domain] = self.rng
    } else {
        self.b.regs[self.domain] = r.Union(self.rng)
    }
}

func (self *_RegisterWorker) makeDef() nodes.Node {
    return self.b.factory.Def(self.b.factory.Start(), self.storage())
}

// write discards every fragment covered by the new one. Fragments that are
// only partially overwritten are kept, the newer fragment shadows them.
func (self *_RegisterWorker) write(st *_BlockState, n nodes.Node) {
    old := st.regs[self.domain]
    ret := make([]_Fragment, 0, len(old) + 1)

    /* keep what is still visible */
    for _, f := range old {
        if !self.rng.Covers(f.r) {
            ret = append(ret, f)
        }
    }

    /* add the new fragment */
    ret = append(ret, _Fragment { r: self.rng, n: n })
    st.regs[self.domain] = ret
}

func (self *_RegisterWorker) read(bb *cfg.Block) (nodes.Node, bool) {
    var ok bool
    var fv []_Fragment

    /* no definitions in this domain */
    if fv, ok = self.b.state(bb).regs[self.domain]; !ok || len(fv) == 0 {
        return nil, false
    }

    /* exact match, not shadowed by any newer fragment */
    for i := len(fv) - 1; i >= 0; i-- {
        if fv[i].r == self.rng {
            return self.b.resolve(fv[i].n), true
        } else if fv[i].r.Overlaps(self.rng) {
            break
        }
    }

    /* nothing overlaps, the value comes from the predecessors */
    if !anyOverlaps(fv, self.rng) {
        return nil, false
    }

    /* stitch the fragments, from the least significant bit upwards */
    var elems []nodes.Node
    var offs = self.rng.Lsb

    /* walk through the requested range */
    for offs < self.rng.Msb {
        i, lo, hi := nextFragment(fv, self.rng, offs)

        /* fill the gap before the fragment */
        if lo > offs {
            elems = append(elems, self.readGap(bb, cfg.Bits(offs, lo)))
        }

        /* no more fragments */
        if i < 0 {
            break
        }

        /* add the visible part of the fragment */
        elems = append(elems, self.slice(fv[i], lo, hi))
        offs = hi
    }

    /* a single part needs no sequence */
    if len(elems) == 1 {
        return elems[0], true
    }

    /* sequences are big-endian */
    for i, j := 0, len(elems) - 1; i < j; i, j = i + 1, j - 1 {
        elems[i], elems[j] = elems[j], elems[i]
    }

    /* concatenate the parts */
    return self.b.factory.Sequence(cfg.Word(self.rng.Extent()), elems...), true
}

func (self *_RegisterWorker) readGap(bb *cfg.Block, r cfg.BitRange) nodes.Node {
    w := &_RegisterWorker { b: self.b, domain: self.domain, rng: r }
    return self.b.readRecursive(w, bb)
}

func (self *_RegisterWorker) slice(f _Fragment, lo int, hi int) nodes.Node {
    if n := self.b.resolve(f.n); f.r.Lsb == lo && f.r.Msb == hi {
        return n
    } else {
        return self.b.factory.Slice(cfg.Word(hi - lo), n, lo - f.r.Lsb)
    }
}

func anyOverlaps(fv []_Fragment, r cfg.BitRange) bool {
    for _, f := range fv {
        if f.r.Overlaps(r) {
            return true
        }
    }
    return false
}

// owner returns the index of the newest fragment holding bit, or -1.
func owner(fv []_Fragment, r cfg.BitRange, bit int) int {
    if !r.Contains(bit) {
        return -1
    }

    /* newer fragments shadow the older ones */
    for i := len(fv) - 1; i >= 0; i-- {
        if fv[i].r.Contains(bit) {
            return i
        }
    }

    /* not defined in this block */
    return -1
}

// nextFragment finds the first visible fragment at or after offs within r,
// and the range [lo, hi) of r where it stays visible. A fragment starting
// earlier is clipped to offs; when fragments overlap the most recently
// written one wins. Returns -1 and r.Msb if there is none.
func nextFragment(fv []_Fragment, r cfg.BitRange, offs int) (int, int, int) {
    for lo := offs; lo < r.Msb; lo++ {
        if i := owner(fv, r, lo); i >= 0 {
            hi := lo + 1
            for hi < r.Msb && owner(fv, r, hi) == i {
                hi++
            }
            return i, lo, hi
        }
    }
    return -1, r.Msb, r.Msb
}

/** Memory **/

type _MemoryWorker struct {
    b   *SSABuilder
    mem *cfg.MemoryStorage
}

func (self *_MemoryWorker) storage() cfg.Storage {
    return self.mem
}

func (self *_MemoryWorker) define() {
    self.b.memory = self.mem
}

func (self *_MemoryWorker) makeDef() nodes.Node {
    return self.b.factory.Def(self.b.factory.Start(), self.mem)
}

func (self *_MemoryWorker) write(st *_BlockState, n nodes.Node) {
    st.mem = n
}

func (self *_MemoryWorker) read(bb *cfg.Block) (nodes.Node, bool) {
    if st := self.b.state(bb); st.mem == nil {
        return nil, false
    } else {
        return self.b.resolve(st.mem), true
    }
}

/** Temporaries **/

type _TemporaryWorker struct {
    b   *SSABuilder
    tmp *cfg.TemporaryStorage
}

func (self *_TemporaryWorker) storage() cfg.Storage {
    return self.tmp
}

// define does nothing, temporaries never leave the procedure.
func (self *_TemporaryWorker) define() {}

func (self *_TemporaryWorker) makeDef() nodes.Node {
    return self.b.factory.Def(self.b.factory.Start(), self.tmp)
}

func (self *_TemporaryWorker) write(st *_BlockState, n nodes.Node) {
    st.temps[self.tmp] = n
}

func (self *_TemporaryWorker) read(bb *cfg.Block) (nodes.Node, bool) {
    if n, ok := self.b.state(bb).temps[self.tmp]; !ok {
        return nil, false
    } else {
        return self.b.resolve(n), true
    }
}

/** Flag Groups **/

type _FlagWorker struct {
    b   *SSABuilder
    grf *cfg.FlagGroup
}

func (self *_FlagWorker) storage() cfg.Storage {
    return self.grf
}

func (self *_FlagWorker) define() {
    self.b.flags[self.grf.FlagRegister] |= self.grf.Bits
}

func (self *_FlagWorker) makeDef() nodes.Node {
    return self.b.factory.Def(self.b.factory.Start(), self.grf)
}

func (self *_FlagWorker) write(st *_BlockState, n nodes.Node) {
    reg := self.grf.FlagRegister
    old := st.flags[reg]
    ret := make([]_FlagFragment, 0, len(old) + 1)

    /* discard the groups that are entirely overwritten */
    for _, f := range old {
        if f.m &^ self.grf.Bits != 0 {
            ret = append(ret, f)
        }
    }

    /* add the new group */
    ret = append(ret, _FlagFragment { m: self.grf.Bits, n: n })
    st.flags[reg] = ret
}

// read combines the newest definitions of every requested bit. Groups that
// are only partially requested are masked with And, and disjoint groups are
// merged with Or.
func (self *_FlagWorker) read(bb *cfg.Block) (nodes.Node, bool) {
    var ok bool
    var fv []_FlagFragment

    /* no flags of this register are defined */
    reg := self.grf.FlagRegister
    fv, ok = self.b.state(bb).flags[reg]

    /* nothing in this block */
    if !ok || len(fv) == 0 {
        return nil, false
    }

    /* the newest definitions win */
    var vals []nodes.Node
    var mask = self.grf.Bits

    /* pick the bits from the fragments */
    for i := len(fv) - 1; i >= 0 && mask != 0; i-- {
        if m := fv[i].m & mask; m != 0 {
            vals = append(vals, self.mask(fv[i], m))
            mask &^= fv[i].m
        }
    }

    /* the remaining bits come from the predecessors */
    if mask != 0 {
        w := &_FlagWorker { b: self.b, grf: self.b.arch.GetFlagGroup(reg, mask) }
        vals = append(vals, self.b.readRecursive(w, bb))
    }

    /* merge them together */
    ret := vals[0]
    for _, v := range vals[1:] {
        ret = self.b.factory.Binary(cfg.OpOr, reg.DataType(), ret, v)
    }
    return ret, true
}

func (self *_FlagWorker) mask(f _FlagFragment, m uint32) nodes.Node {
    if n := self.b.resolve(f.n); f.m == m {
        return n
    } else {
        dt := self.grf.FlagRegister.DataType()
        return self.b.factory.Binary(cfg.OpAnd, dt, n, self.b.factory.Constant(cfg.Const(dt, uint64(m))))
    }
}
