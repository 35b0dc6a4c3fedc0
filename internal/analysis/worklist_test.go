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
    `testing`

    `github.com/cloudwego/seaofnodes/cfg`
    `github.com/cloudwego/seaofnodes/nodes`
    `github.com/stretchr/testify/require`
)

func TestWorklist_Dedupe(t *testing.T) {
    f := nodes.NewFactory(nil)
    a := f.Constant(cfg.Word32(1))
    b := f.Constant(cfg.Word32(2))
    wl := NewWorklist()
    wl.Add(a)
    wl.Add(b)
    wl.Add(a)
    require.Same(t, a, wl.Next())
    require.Same(t, b, wl.Next())
    require.Nil(t, wl.Next())
    require.True(t, wl.Empty())
    wl.Add(a)
    require.Same(t, a, wl.Next())
}

func TestNodeIter_PostOrder(t *testing.T) {
    f := nodes.NewFactory(nil)
    a := f.Constant(cfg.Word32(1))
    b := f.Unary(cfg.OpNeg, cfg.Word(32), a)
    c := f.Unary(cfg.OpCom, cfg.Word(32), a)
    d := f.Binary(cfg.OpAdd, cfg.Word(32), b, c)
    seq := PostOrder(d)
    pos := make(map[nodes.Node]int)
    for i, n := range seq {
        _, dup := pos[n]
        require.False(t, dup, "%s visited twice", n)
        pos[n] = i
    }
    require.Len(t, seq, 5)
    require.Same(t, d, seq[len(seq) - 1])
    for _, n := range seq {
        for _, p := range n.Ins() {
            if p != nil {
                require.Less(t, pos[p], pos[n], "%s must come before %s", p, n)
            }
        }
    }
}

func TestNodeIter_Cycle(t *testing.T) {
    f := nodes.NewFactory(nil)
    bb := f.Block(&cfg.Block { Name: "loop" })
    phi := f.Phi(bb)
    add := f.Binary(cfg.OpAdd, cfg.Word(32), phi, f.Constant(cfg.Word32(1)))
    phi.AddInput(add)
    seq := PostOrder(phi)
    require.Len(t, seq, 5)
    require.Same(t, phi, seq[len(seq) - 1])
}
