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
    `sync/atomic`

    `go.uber.org/zap`

    `github.com/cloudwego/seaofnodes/internal/logger`
    `github.com/cloudwego/seaofnodes/internal/opts`
    `github.com/cloudwego/seaofnodes/nodes`
)

var (
    ReplaceCount uint64
    RemoveCount  uint64
)

// Propagator drives the peephole rules over a graph until nothing changes.
type Propagator struct {
    wl    *Worklist
    rules *Peephole
    trace bool
}

func NewPropagator(f *nodes.Factory, opt opts.Options) *Propagator {
    return &Propagator {
        wl    : NewWorklist(),
        rules : NewPeephole(f),
        trace : opt.Trace,
    }
}

// Transform optimizes the graph reachable from root in place, and returns
// the root.
func (self *Propagator) Transform(root nodes.Node) nodes.Node {
    NewNodeIter(root).ForEach(self.wl.Add)

    /* drain the worklist */
    for !self.wl.Empty() {
        self.visit(self.wl.Next())
    }

    /* the root itself never changes */
    return root
}

func (self *Propagator) visit(n nodes.Node) {
    if n.IsDead() {
        return
    }

    /* nodes without any consumer are removed, except for the exit */
    if _, ok := n.(*nodes.Stop); !ok && n.IsUnused() {
        self.remove(n)
        return
    }

    /* trace the attempt */
    if self.trace {
        if ce := logger.Logger().Check(zap.DebugLevel, "peephole"); ce != nil {
            ce.Write(zap.String("node", n.Label()), zap.Int("id", n.Id()))
        }
    }

    /* apply the rules */
    if rep := nodes.Accept[nodes.Node](n, self.rules); rep != nil && rep != n {
        self.replace(n, rep)
    }
}

// remove detaches n from its inputs, inputs left without consumers are
// queued for removal as well.
func (self *Propagator) remove(n nodes.Node) {
    if ce := logger.Logger().Check(zap.DebugLevel, "remove"); ce != nil {
        ce.Write(zap.String("node", n.Label()), zap.Int("id", n.Id()))
    }

    /* cascade into the inputs */
    for _, p := range nodes.Disconnect(n) {
        self.wl.Add(p)
    }

    /* the node is dead now */
    n.ClearUses()
    atomic.AddUint64(&RemoveCount, 1)
}

func (self *Propagator) replace(old nodes.Node, rep nodes.Node) {
    if ce := logger.Logger().Check(zap.DebugLevel, "replace"); ce != nil {
        ce.Write(zap.Stringer("old", old), zap.Stringer("new", rep))
    }

    /* every consumer has changed inputs, look at them again */
    for _, u := range nodes.ReplaceUses(old, rep) {
        self.wl.Add(u)
    }

    /* the replacement may be simplified further */
    self.wl.Add(rep)
    atomic.AddUint64(&ReplaceCount, 1)

    /* the old node has no consumers left */
    old.ClearUses()
    self.remove(old)
}
