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


package printer

import (
    `fmt`
    `strings`
    `testing`

    `github.com/cloudwego/seaofnodes/cfg`
    `github.com/cloudwego/seaofnodes/nodes`
    `github.com/stretchr/testify/require`
)

func newTestGraph() *nodes.Factory {
    arch := cfg.NewRegisterFile(32)
    r0 := arch.AddRegister("r0", 0, 0, 32)
    f := nodes.NewFactory(nil)
    c := f.Constant(cfg.Word32(7))
    n := f.Unary(cfg.OpNeg, cfg.Word(32), c)
    f.Stop().AddInput(f.Use(f.Start(), r0, n))
    return f
}

func TestPrinter_WriteLine(t *testing.T) {
    var sb strings.Builder
    f := nodes.NewFactory(nil)
    c := f.Constant(cfg.Word32(0x12345678))
    n := f.Unary(cfg.OpCom, cfg.Word(32), c)
    WriteLine(&sb, n)
    require.Equal(t, "{ id:4, lbl:~, in:[_,3], out:[] }\n", sb.String())
    sb.Reset()
    WriteLine(&sb, f.Sequence(cfg.Word(64), c, n, c))
    require.Equal(t, "{ id:5, lbl:SEQ, in:[_,3,4,3], out:[] }\n", sb.String())
    sb.Reset()
    nodes.Disconnect(n)
    n.ClearUses()
    WriteLine(&sb, n)
    require.Equal(t, "{ id:4, lbl:~, DEAD }\n", sb.String())
}

func TestPrinter_LongLabel(t *testing.T) {
    var sb strings.Builder
    f := nodes.NewFactory(nil)
    WriteLine(&sb, f.Constant(cfg.Word32(0x12345678)))
    require.Equal(t, "{ id:3, lbl:#0x12345678<, in:[1], out:[] }\n", sb.String())
}

func TestPrinter_PrettyPrint(t *testing.T) {
    f := newTestGraph()
    require.Equal(t, "\n" +
        "{ id:1, lbl:Start, in:[], out:[2,3,5] }\n" +
        "\n" +
        "{ id:3, lbl:#7<32>, in:[1], out:[4] }\n" +
        "{ id:4, lbl:-, in:[_,3], out:[5] }\n" +
        "{ id:5, lbl:use_r0, in:[1,4], out:[2] }\n" +
        "\n" +
        "{ id:2, lbl:Stop, in:[1,5], out:[] }\n" +
        "\n",
        PrettyPrint(f.Stop(), 99),
    )
}

func TestPrinter_PrettyPrintDepth(t *testing.T) {
    f := newTestGraph()
    require.Equal(t, "\n{ id:2, lbl:Stop, in:[1,5], out:[] }\n\n", PrettyPrint(f.Stop(), 0))
    s := PrettyPrint(f.Stop(), 1)
    require.Contains(t, s, "lbl:use_r0")
    require.Contains(t, s, "lbl:Start")
    require.NotContains(t, s, "lbl:-")
    require.NotContains(t, s, "lbl:#7<32>")
}

func TestPrinter_Projections(t *testing.T) {
    f := nodes.NewFactory(nil)
    br := f.Branch(f.Start(), f.Constant(cfg.Const(cfg.Bool, 1)))
    pf := f.CFProjection(br, nodes.BranchFalse, "false")
    pt := f.CFProjection(br, nodes.BranchTrue, "true")
    f.Stop().AddInput(pf)
    f.Stop().AddInput(pt)
    lines := strings.Split(PrettyPrint(f.Stop(), 99), "\n")
    at := -1
    for i, v := range lines {
        if strings.HasPrefix(v, "{ id:4, lbl:branch") {
            at = i
        }
    }
    require.NotEqual(t, -1, at)
    require.Equal(t, "", lines[at - 1])
    require.Contains(t, []string { lines[at + 1], lines[at + 2] }, "{ id:5, lbl:4.false, in:[4], out:[2] }")
    require.Contains(t, []string { lines[at + 1], lines[at + 2] }, "{ id:6, lbl:4.true, in:[4], out:[2] }")
    require.Equal(t, "", lines[at + 3])
}

func TestPrinter_Dot(t *testing.T) {
    proc := cfg.NewProcedure("loop", cfg.NewRegisterFile(32))
    bb := proc.AddBlock("body")
    f := nodes.NewFactory(proc)
    blk := f.Block(bb)
    blk.AddInput(f.Start())
    phi := f.Phi(blk)
    phi.AddInput(f.Constant(cfg.Word32(0)))
    phi.AddInput(phi)
    f.Stop().AddInput(phi)
    buf, err := Dot(f.Stop(), "loop")
    require.NoError(t, err)
    s := string(buf)
    require.Contains(t, s, "digraph loop {")
    require.Contains(t, s, "phi_")
    require.Contains(t, s, "body")
    require.Contains(t, s, "color=red")
}

func TestPrinter_DotParallelEdges(t *testing.T) {
    f := nodes.NewFactory(nil)
    x := f.Constant(cfg.Word32(3))
    n := f.Binary(cfg.OpAdd, cfg.Word(32), x, x)
    f.Stop().AddInput(n)
    buf, err := Dot(f.Stop(), "twice")
    require.NoError(t, err)
    s := string(buf)
    edge := fmt.Sprintf("%d -> %d", x.Id(), n.Id())
    require.Equal(t, 2, strings.Count(s, edge), s)
    require.Equal(t, 1, strings.Count(s, "headlabel=2"), s)
    for _, v := range strings.Split(s, "\n") {
        if strings.Contains(v, edge) {
            require.Regexp(t, `headlabel=[12]`, v)
        }
    }
}

func TestPrinter_SSA(t *testing.T) {
    arch := cfg.NewRegisterFile(32)
    r0 := arch.AddRegister("r0", 0, 0, 32)
    proc := cfg.NewProcedure("inc", arch)
    f := nodes.NewFactory(proc)
    d := f.Def(f.Start(), r0)
    n := f.Binary(cfg.OpAdd, cfg.Word(32), d, f.Constant(cfg.Word32(1)))
    m := f.Unary(cfg.OpNeg, cfg.Word(32), n)
    f.Stop().AddInput(f.Use(f.Start(), r0, m))
    s := SSA(f.Stop())
    require.True(t, strings.HasPrefix(s, "def inc():\n"), s)
    require.Contains(t, s, fmt.Sprintf("    v%d = r0\n", d.Id()))
    require.Contains(t, s, fmt.Sprintf("    v%d = v%d + 1<32>\n", n.Id(), d.Id()))
    require.Contains(t, s, fmt.Sprintf("    v%d = -v%d\n", m.Id(), n.Id()))
    require.True(t, strings.HasSuffix(s, fmt.Sprintf("    use r0:v%d\n", m.Id())), s)
    require.NotContains(t, s, "Stop")
}

func TestPrinter_SSAPhi(t *testing.T) {
    proc := cfg.NewProcedure("loop", cfg.NewRegisterFile(32))
    f := nodes.NewFactory(proc)
    blk := f.Block(proc.AddBlock("body"))
    blk.AddInput(f.Start())
    phi := f.Phi(blk)
    phi.AddInput(f.Constant(cfg.Word32(0)))
    phi.AddInput(phi)
    f.Stop().AddInput(phi)
    var sb strings.Builder
    WriteSSA(&sb, blk)
    WriteSSA(&sb, phi)
    require.Equal(t, fmt.Sprintf("body:\n    v%d = PHI(0<32>,v%d)\n", phi.Id(), phi.Id()), sb.String())
}
