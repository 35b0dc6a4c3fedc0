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


package seaofnodes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cloudwego/seaofnodes/cfg"
	"github.com/cloudwego/seaofnodes/internal/opts"
	"github.com/cloudwego/seaofnodes/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestArch() *cfg.RegisterFile {
	arch := cfg.NewRegisterFile(32)
	arch.AddRegister("r0", 0, 0, 32)
	arch.AddRegister("r1", 1, 0, 32)
	return arch
}

func buildFold() *cfg.Procedure {
	arch := newTestArch()
	m := cfg.CreateProcedureBuilder(arch, "fold", 0x1000)
	r0 := m.Reg(arch.Register("r0"))
	r1 := m.Reg(arch.Register("r1"))
	m.AssignConst(r0, 1)
	m.AssignConst(r1, 41)
	m.Assign(r0, m.IAdd(r0, r1))
	m.Return(nil)
	return m.Procedure()
}

func TestGraph_LoadAndOptimize(t *testing.T) {
	g, err := Load(buildFold())
	require.NoError(t, err)
	require.Contains(t, g.String(), "lbl: + ")
	root, err := g.Optimize()
	require.NoError(t, err)
	require.Same(t, g.Root(), root)
	uses := make(map[string]string)
	for _, u := range g.Root().Uses() {
		uses[u.Storage.Name()] = u.Value().Label()
	}
	assert.Equal(t, map[string]string{"r0": "#0x2A<32>", "r1": "#0x29<32>"}, uses)
	s := g.String()
	assert.NotContains(t, s, "lbl: + ")
	assert.Contains(t, s, "lbl:#0x2A<32>")
	assert.Contains(t, s, "lbl:<Exit>")
	assert.Same(t, g.Root(), g.Node(g.Root().Id()))
}

func TestGraph_Dot(t *testing.T) {
	g, err := Load(buildFold())
	require.NoError(t, err)
	buf, err := g.Dot()
	require.NoError(t, err)
	require.Contains(t, string(buf), "digraph fold {")
}

func TestGraph_SSA(t *testing.T) {
	g, err := Load(buildFold())
	require.NoError(t, err)
	_, err = g.Optimize()
	require.NoError(t, err)
	s := g.SSA()
	assert.Regexp(t, "^def fold\\(\\):\n", s)
	assert.Contains(t, s, "<Exit>:\n")
	assert.Contains(t, s, "    return\n")
	assert.Contains(t, s, "    use r0:0x2A<32>\n")
	assert.NotContains(t, s, " + ")
}

func TestGraph_LoadUnsupported(t *testing.T) {
	arch := newTestArch()
	m := cfg.CreateProcedureBuilder(arch, "switch", 0x1000)
	m.Switch(m.Reg(arch.Register("r0")))
	m.Return(nil)
	g, err := Load(m.Procedure())
	require.Nil(t, g)
	var e UnsupportedInstructionError
	require.True(t, errors.As(err, &e), "%v", err)
	require.Equal(t, "instruction", e.Kind)
}

func TestGraph_OptimizeUnsupported(t *testing.T) {
	arch := newTestArch()
	m := cfg.CreateProcedureBuilder(arch, "badop", 0x1000)
	r0 := m.Reg(arch.Register("r0"))
	m.Assign(r0, m.Bin(cfg.BinaryOp(200), cfg.Word(32), cfg.Word32(1), cfg.Word32(2)))
	m.Return(nil)
	g, err := Load(m.Procedure())
	require.NoError(t, err)
	_, err = g.Optimize()
	var e UnsupportedNodeError
	require.True(t, errors.As(err, &e), "%v", err)
	_, ok := e.Node.(*nodes.Binary)
	require.True(t, ok)
}

func TestGraph_InvariantViolationPropagates(t *testing.T) {
	defer func() {
		require.Equal(t, "boom", recover())
	}()
	func() (err error) {
		defer recoverAs[UnsupportedNodeError](&err)
		panic("boom")
	}()
}

func TestOptions_PrintDepth(t *testing.T) {
	require.Panics(t, func() { WithPrintDepth(0) })
	g, err := Load(buildFold(), WithPrintDepth(1))
	require.NoError(t, err)
	s := g.String()
	require.Contains(t, s, "lbl:use_r0")
	require.NotContains(t, s, "lbl: + ")
	old := SetPrintDepth(5)
	defer SetPrintDepth(old)
	require.Equal(t, 5, opts.GetDefaultOptions().PrintDepth)
}

func TestOptions_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)
	g, err := Load(buildFold(), WithTrace(true))
	require.NoError(t, err)
	_, err = g.Optimize()
	require.NoError(t, err)
	peeps := logs.FilterMessage("peephole").All()
	require.NotEmpty(t, peeps)
	seen := make(map[string]bool)
	for _, e := range peeps {
		seen[fmt.Sprint(e.ContextMap()["node"])] = true
	}
	require.True(t, seen[" + "], "%v", seen)
	require.NotEmpty(t, logs.FilterMessage("block").All())
}
