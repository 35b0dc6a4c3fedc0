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
    `testing`

    `github.com/cloudwego/seaofnodes/cfg`
    `github.com/stretchr/testify/assert`
    `github.com/stretchr/testify/require`
)

func newTestFactory() (*Factory, *cfg.RegisterFile) {
    arch := cfg.NewRegisterFile(32)
    arch.AddRegister("r0", 0, 0, 32)
    arch.AddRegister("r1", 1, 0, 32)
    return NewFactory(cfg.NewProcedure("test", arch)), arch
}

func TestFactory_Singletons(t *testing.T) {
    f, _ := newTestFactory()
    require.Equal(t, 1, f.Start().Id())
    require.Equal(t, 2, f.Stop().Id())
    require.Equal(t, []Node { f.Start() }, f.Stop().Ins())
    require.Equal(t, []Node { f.Stop() }, f.Start().Outs())
    require.Equal(t, "Start:1", f.Start().String())
    require.Equal(t, "Stop:2", f.Stop().String())
    require.Same(t, f.Start(), f.Node(1))
    require.Nil(t, f.Node(0))
    require.Nil(t, f.Node(3))
}

func TestFactory_IdentityMonotonic(t *testing.T) {
    f, arch := newTestFactory()
    r0 := arch.Register("r0")
    last := f.Stop().Id()

    /* create some nodes, remove a few in between */
    for i := 0; i < 50; i++ {
        a := f.Constant(cfg.Word32(uint64(i)))
        b := f.Def(f.Start(), r0)
        c := f.Binary(cfg.OpAdd, cfg.Word(32), a, b)
        for _, n := range []Node { a, b, c } {
            require.Greater(t, n.Id(), last)
            last = n.Id()
        }
        if i % 3 == 0 {
            Disconnect(c)
            require.True(t, c.IsDead())
        }
    }

    /* identities are never reused */
    require.Equal(t, last, f.Count())
    seen := make(map[int]bool)
    for id := 1; id <= f.Count(); id++ {
        n := f.Node(id)
        require.NotNil(t, n)
        require.False(t, seen[n.Id()])
        seen[n.Id()] = true
    }
}

func TestNode_EdgesMirrored(t *testing.T) {
    f, _ := newTestFactory()
    a := f.Constant(cfg.Word32(1))
    b := f.Constant(cfg.Word32(2))
    c := f.Binary(cfg.OpAdd, cfg.Word(32), a, b)
    require.Equal(t, []Node { nil, a, b }, c.Ins())
    require.Equal(t, []Node { c }, a.Outs())
    require.Equal(t, []Node { c }, b.Outs())
    require.True(t, c.IsUnused())
    require.False(t, c.IsDead())

    /* move an input */
    c.SetInput(2, a)
    require.True(t, b.IsUnused())
    require.Equal(t, []Node { c, c }, a.Outs())

    /* replace both slots at once */
    require.True(t, c.ReplaceInput(a, b))
    require.True(t, a.IsUnused())
    require.Equal(t, []Node { c, c }, b.Outs())
    require.False(t, c.ReplaceInput(a, b))
}

func TestNode_RemoveUse(t *testing.T) {
    f, _ := newTestFactory()
    x := f.Constant(cfg.Word32(0))
    n1 := f.Constant(cfg.Word32(1))
    n3 := f.Constant(cfg.Word32(3))
    n4 := f.Constant(cfg.Word32(4))
    for _, n := range []Node { n1, n3, n1, n4 } {
        x.AddUse(n)
    }

    /* only one occurrence goes away */
    require.True(t, x.RemoveUse(n1))
    assert.Equal(t, []Node { n4, n3, n1 }, x.Outs())
    require.True(t, x.RemoveUse(n1))
    assert.Equal(t, []Node { n4, n3 }, x.Outs())
    require.False(t, x.RemoveUse(n1))
    assert.Equal(t, []Node { n4, n3 }, x.Outs())

    /* down to empty */
    require.True(t, x.RemoveUse(n4))
    require.True(t, x.RemoveUse(n3))
    require.True(t, x.IsUnused())
    require.False(t, x.RemoveUse(n3))
}

func TestNode_ReplaceUses(t *testing.T) {
    f, _ := newTestFactory()
    bb := f.Block(f.Start().Procedure.Entry)
    phi := f.Phi(bb)
    one := f.Constant(cfg.Word32(1))
    phi.AddInput(one)
    phi.AddInput(phi)
    add := f.Binary(cfg.OpAdd, cfg.Word(32), phi, phi)

    /* self references are kept */
    ret := ReplaceUses(phi, one)
    require.Equal(t, []Node { add }, ret)
    require.Equal(t, []Node { nil, one, one }, add.Ins())
    require.Equal(t, []Node { phi }, phi.Outs())
    require.ElementsMatch(t, []Node { phi, add, add }, one.Outs())

    /* disconnecting the phi leaves the constant alive */
    require.Equal(t, []Node { bb }, Disconnect(phi))
    require.True(t, phi.IsDead())
    require.Equal(t, []Node { add, add }, one.Outs())
}

func TestNode_Disconnect(t *testing.T) {
    f, _ := newTestFactory()
    a := f.Constant(cfg.Word32(1))
    b := f.Constant(cfg.Word32(2))
    c := f.Binary(cfg.OpAdd, cfg.Word(32), a, a)
    d := f.Binary(cfg.OpSub, cfg.Word(32), c, b)
    e := f.Unary(cfg.OpNeg, cfg.Word(32), b)
    require.Equal(t, []Node { c }, Disconnect(d))
    require.True(t, d.IsDead())
    require.False(t, b.IsUnused())
    require.Equal(t, []Node { a }, Disconnect(c))
    require.Equal(t, []Node { b }, Disconnect(e))
}

func TestNode_Projections(t *testing.T) {
    f, arch := newTestFactory()
    bb := f.Block(f.Start().Procedure.Entry)
    bb.AddInput(f.Start())
    pred := f.Def(f.Start(), arch.Register("r0"))
    br := f.Branch(bb, pred)
    require.Nil(t, CFProject(br, BranchTrue))
    require.Nil(t, Project(br, BranchTrue))

    /* add the projections */
    pf := f.CFProjection(br, BranchFalse, "false")
    pt := f.CFProjection(br, BranchTrue, "true")
    require.Same(t, pf, CFProject(br, BranchFalse))
    require.Same(t, pt, CFProject(br, BranchTrue))
    require.Nil(t, Project(br, BranchTrue))
    require.Nil(t, CFProject(br, 2))
    require.Same(t, br, pt.Head())
    require.Equal(t, "5.true", pt.Label())
    require.Equal(t, "<Entry>", bb.Label())

    /* stores split into control and memory */
    mem := f.Def(f.Start(), arch.Memory())
    st := f.Store(cfg.Word(32), bb, mem, pred, pred)
    pc := f.CFProjection(st, StoreCtrl, "ctrl")
    pm := f.Projection(st, StoreMemory, "mem")
    require.Same(t, pc, CFProject(st, StoreCtrl))
    require.Same(t, pm, Project(st, StoreMemory))
    require.Nil(t, Project(st, StoreCtrl))
    require.True(t, IsMultiHead(st))
    require.True(t, IsMultiTail(pm))
    require.True(t, IsControl(pc))
    require.False(t, IsControl(pm))
}

func TestNode_ControlInput(t *testing.T) {
    f, arch := newTestFactory()
    r0 := arch.Register("r0")
    use := f.Use(f.Start(), r0, f.Def(f.Start(), r0))
    require.Same(t, f.Start(), use.Ctrl())
    require.Equal(t, "use_r0", use.Label())
    require.Panics(t, func() { ControlInput(use, 1) })
    require.Panics(t, func() { f.Phi(nil) })
}

type _Counter struct {
    ctrl int
    data int
}

func (self *_Counter) ctl(n Node) int   { self.ctrl++; return n.Id() }
func (self *_Counter) dat(n Node) int   { self.data++; return n.Id() }

func (self *_Counter) VisitStart(n *Start) int                          { return self.ctl(n) }
func (self *_Counter) VisitStop(n *Stop) int                            { return self.ctl(n) }
func (self *_Counter) VisitBlock(n *Block) int                          { return self.ctl(n) }
func (self *_Counter) VisitBranch(n *Branch) int                        { return self.ctl(n) }
func (self *_Counter) VisitCall(n *Call) int                            { return self.ctl(n) }
func (self *_Counter) VisitReturn(n *Return) int                        { return self.ctl(n) }
func (self *_Counter) VisitCFProjection(n *CFProjection) int            { return self.ctl(n) }
func (self *_Counter) VisitConstant(n *Constant) int                    { return self.dat(n) }
func (self *_Counter) VisitProcedureConstant(n *ProcedureConstant) int  { return self.dat(n) }
func (self *_Counter) VisitBinary(n *Binary) int                        { return self.dat(n) }
func (self *_Counter) VisitUnary(n *Unary) int                          { return self.dat(n) }
func (self *_Counter) VisitPhi(n *Phi) int                              { return self.dat(n) }
func (self *_Counter) VisitMemoryAccess(n *MemoryAccess) int            { return self.dat(n) }
func (self *_Counter) VisitStore(n *Store) int                          { return self.dat(n) }
func (self *_Counter) VisitSlice(n *Slice) int                          { return self.dat(n) }
func (self *_Counter) VisitSequence(n *Sequence) int                    { return self.dat(n) }
func (self *_Counter) VisitProjection(n *Projection) int                { return self.dat(n) }
func (self *_Counter) VisitDef(n *Def) int                              { return self.dat(n) }
func (self *_Counter) VisitUse(n *Use) int                              { return self.dat(n) }
func (self *_Counter) VisitConditionOf(n *ConditionOf) int              { return self.dat(n) }

func TestVisitor_Accept(t *testing.T) {
    f, _ := newTestFactory()
    v := new(_Counter)
    c := f.Constant(cfg.Word32(7))
    require.Equal(t, 1, Accept[int](f.Start(), v))
    require.Equal(t, 2, Accept[int](f.Stop(), v))
    require.Equal(t, c.Id(), Accept[int](c, v))
    require.Equal(t, 2, v.ctrl)
    require.Equal(t, 1, v.data)
}

func TestFormat(t *testing.T) {
    f, _ := newTestFactory()
    a := f.Constant(cfg.Word32(1))
    b := f.Constant(cfg.Word32(41))
    c := f.Binary(cfg.OpAdd, cfg.Word(32), a, b)
    require.Equal(t, "#1<32>", a.Label())
    require.Equal(t, " + (_, #1<32>(Start), #0x29<32>(Start))", Format(c, 2))
    require.Equal(t, " + (_, #1<32>, #0x29<32>)", Format(c, 1))
}
