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
    `fmt`
    `sort`
    `sync/atomic`

    `github.com/bits-and-blooms/bitset`
    `github.com/cloudwego/seaofnodes/cfg`
    `github.com/cloudwego/seaofnodes/internal/logger`
    `github.com/cloudwego/seaofnodes/nodes`
    `go.uber.org/zap`
)

var (
    PhiCount        uint64
    TrivialPhiCount uint64
)

type _Fragment struct {
    r cfg.BitRange
    n nodes.Node
}

type _FlagFragment struct {
    m uint32
    n nodes.Node
}

type _BlockState struct {
    mem   nodes.Node
    regs  map[cfg.Domain][]_Fragment
    flags map[*cfg.Register][]_FlagFragment
    temps map[*cfg.TemporaryStorage]nodes.Node
}

func newBlockState() *_BlockState {
    return &_BlockState {
        regs  : make(map[cfg.Domain][]_Fragment),
        flags : make(map[*cfg.Register][]_FlagFragment),
        temps : make(map[*cfg.TemporaryStorage]nodes.Node),
    }
}

type _Pending struct {
    w   _Worker
    phi *nodes.Phi
}

// SSABuilder tracks the definitions of every storage in every block, and
// builds phis on demand when a storage is read.
type SSABuilder struct {
    arch    cfg.Architecture
    factory *nodes.Factory
    blocks  map[*cfg.Block]*nodes.Block
    states  map[*cfg.Block]*_BlockState
    sealed  *bitset.BitSet
    memory  *cfg.MemoryStorage
    regs    map[cfg.Domain]cfg.BitRange
    flags   map[*cfg.Register]uint32
    pending []_Pending
    owner   map[*nodes.Phi]_Worker
    forward map[*nodes.Phi]nodes.Node
    filling map[*nodes.Phi]bool
}

func NewSSABuilder(arch cfg.Architecture, f *nodes.Factory, blocks map[*cfg.Block]*nodes.Block) *SSABuilder {
    return &SSABuilder {
        arch    : arch,
        factory : f,
        blocks  : blocks,
        states  : make(map[*cfg.Block]*_BlockState),
        sealed  : bitset.New(uint(len(blocks))),
        regs    : make(map[cfg.Domain]cfg.BitRange),
        flags   : make(map[*cfg.Register]uint32),
        owner   : make(map[*nodes.Phi]_Worker),
        forward : make(map[*nodes.Phi]nodes.Node),
        filling : make(map[*nodes.Phi]bool),
    }
}

// EnterBlock starts the definitions of bb afresh.
func (self *SSABuilder) EnterBlock(bb *cfg.Block) {
    self.states[bb] = newBlockState()
}

// SealBlock marks the predecessors of bb as final.
func (self *SSABuilder) SealBlock(bb *cfg.Block) {
    self.sealed.Set(uint(bb.Id))
}

func (self *SSABuilder) IsSealed(bb *cfg.Block) bool {
    return self.sealed.Test(uint(bb.Id))
}

func (self *SSABuilder) state(bb *cfg.Block) *_BlockState {
    if st, ok := self.states[bb]; ok {
        return st
    } else {
        st = newBlockState()
        self.states[bb] = st
        return st
    }
}

func (self *SSABuilder) worker(st cfg.Storage) _Worker {
    switch v := st.(type) {
        case *cfg.Register         : return &_RegisterWorker { b: self, domain: v.Domain, rng: v.Range }
        case *cfg.MemoryStorage    : return &_MemoryWorker { b: self, mem: v }
        case *cfg.TemporaryStorage : return &_TemporaryWorker { b: self, tmp: v }
        case *cfg.FlagGroup        : return &_FlagWorker { b: self, grf: v }
        default                    : panic(UnsupportedError { Kind: "storage", Text: fmt.Sprintf("%T %s", st, st) })
    }
}

// ReadStorage returns the value of st as seen at the end of bb.
func (self *SSABuilder) ReadStorage(st cfg.Storage, bb *cfg.Block) nodes.Node {
    return self.readStorage(self.worker(st), bb)
}

// WriteStorage makes n the newest value of st in bb.
func (self *SSABuilder) WriteStorage(st cfg.Storage, bb *cfg.Block, n nodes.Node) nodes.Node {
    return self.writeStorage(self.worker(st), bb, n)
}

func (self *SSABuilder) writeStorage(w _Worker, bb *cfg.Block, n nodes.Node) nodes.Node {
    w.define()
    w.write(self.state(bb), n)
    return n
}

func (self *SSABuilder) readStorage(w _Worker, bb *cfg.Block) nodes.Node {
    if v, ok := w.read(bb); ok {
        return v
    } else {
        return self.readRecursive(w, bb)
    }
}

func (self *SSABuilder) readRecursive(w _Worker, bb *cfg.Block) nodes.Node {
    var val nodes.Node
    var preds = bb.Pred

    /* live-in of the procedure */
    if len(preds) == 0 {
        return w.makeDef()
    }

    /* incomplete CFG, resolve the operands later */
    for _, p := range preds {
        if !self.IsSealed(p) {
            phi := self.newPhi(w, bb)
            self.pending = append(self.pending, _Pending { w: w, phi: phi })
            self.writeStorage(w, bb, phi)
            return phi
        }
    }

    /* single predecessor, no phi needed */
    if len(preds) == 1 {
        val = self.readStorage(w, preds[0])
    } else {
        phi := self.newPhi(w, bb)
        self.writeStorage(w, bb, phi)
        val = self.addPhiOperands(w, phi)
    }

    /* remember the value in this block */
    self.writeStorage(w, bb, val)
    return val
}

func (self *SSABuilder) newPhi(w _Worker, bb *cfg.Block) *nodes.Phi {
    phi := self.factory.Phi(self.blocks[bb])
    self.owner[phi] = w
    atomic.AddUint64(&PhiCount, 1)
    return phi
}

func (self *SSABuilder) addPhiOperands(w _Worker, phi *nodes.Phi) nodes.Node {
    self.filling[phi] = true
    bb := phi.Block().Block

    /* one operand per predecessor, in predecessor order */
    for _, p := range bb.Pred {
        phi.AddInput(self.readStorage(w, p))
    }

    /* the phi is complete */
    delete(self.filling, phi)
    return self.tryRemoveTrivialPhi(phi)
}

func (self *SSABuilder) tryRemoveTrivialPhi(phi *nodes.Phi) nodes.Node {
    var same nodes.Node
    var users []nodes.Node

    /* already replaced, or operands still being collected */
    if _, ok := self.forward[phi]; ok {
        return self.resolve(phi)
    } else if self.filling[phi] {
        return phi
    }

    /* check for the unique operand */
    for _, op := range phi.Operands() {
        if op == same || op == phi {
            continue
        } else if same != nil {
            return phi
        } else {
            same = op
        }
    }

    /* the phi is unreachable or only references itself */
    if same == nil {
        same = self.owner[phi].makeDef()
    }

    /* reroute all the users and remove the phi */
    users = nodes.ReplaceUses(phi, same)
    nodes.Disconnect(phi)
    self.forward[phi] = same
    atomic.AddUint64(&TrivialPhiCount, 1)

    /* removing this phi might make the phis using it trivial */
    for _, u := range users {
        if p, ok := u.(*nodes.Phi); ok {
            self.tryRemoveTrivialPhi(p)
        }
    }

    /* the replacement itself might have been removed meanwhile */
    return self.resolve(same)
}

// resolve follows the replacements of removed phis.
func (self *SSABuilder) resolve(n nodes.Node) nodes.Node {
    for {
        if p, ok := n.(*nodes.Phi); !ok {
            return n
        } else if r, ok := self.forward[p]; !ok {
            return n
        } else {
            n = r
        }
    }
}

// ProcessIncompletePhis fills the operands of the phis created before their
// blocks were sealed. It must be called after every block is sealed.
func (self *SSABuilder) ProcessIncompletePhis() {
    for round := 0; len(self.pending) != 0; round++ {
        work := self.pending
        self.pending = nil

        /* the diagnostic channel */
        if ce := logger.Logger().Check(zap.DebugLevel, "incomplete phis"); ce != nil {
            ce.Write(zap.Int("round", round), zap.Int("count", len(work)))
        }

        /* new incomplete phis might be created meanwhile */
        for _, v := range work {
            if _, ok := self.forward[v.phi]; !ok {
                self.addPhiOperands(v.w, v.phi)
            }
        }
    }
}

// UseDefinedStorages creates a Use at the exit block for every storage
// written anywhere in the procedure, and ties it to Stop. Memory goes first,
// then registers by domain, then flag groups by register.
func (self *SSABuilder) UseDefinedStorages(exit *cfg.Block) {
    var ws []_Worker
    var rd []cfg.Domain
    var fr []*cfg.Register

    /* memory */
    if self.memory != nil {
        ws = append(ws, &_MemoryWorker { b: self, mem: self.memory })
    }

    /* registers, one use per domain */
    for d := range self.regs {
        rd = append(rd, d)
    }

    /* sort by domain */
    sort.Slice(rd, func(i int, j int) bool { return rd[i] < rd[j] })
    for _, d := range rd {
        ws = append(ws, &_RegisterWorker { b: self, domain: d, rng: self.regs[d] })
    }

    /* flag groups, one use per flag register */
    for r := range self.flags {
        fr = append(fr, r)
    }

    /* sort by register */
    sort.Slice(fr, func(i int, j int) bool {
        if fr[i].Domain != fr[j].Domain {
            return fr[i].Domain < fr[j].Domain
        } else {
            return fr[i].Name() < fr[j].Name()
        }
    })

    /* build the flag group workers */
    for _, r := range fr {
        ws = append(ws, &_FlagWorker { b: self, grf: self.arch.GetFlagGroup(r, self.flags[r]) })
    }

    /* read the final values */
    ctrl := self.blocks[exit]
    stop := self.factory.Stop()

    /* tie them to the stop node */
    for _, w := range ws {
        val := self.readStorage(w, exit)
        stop.AddInput(self.factory.Use(ctrl, w.storage(), val))
    }
}
