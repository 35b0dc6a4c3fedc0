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

    `github.com/cloudwego/seaofnodes/internal/analysis`
    `github.com/cloudwego/seaofnodes/nodes`
)

type _SSAPrinter struct{}

func ssavar(n nodes.Node) string {
    return fmt.Sprintf("v%d", n.Id())
}

func ssaval(n nodes.Node) string {
    switch v := n.(type) {
        case nil                      : return "(null)"
        case *nodes.Constant          : return v.Value.String()
        case *nodes.ProcedureConstant : return v.Procedure.Name
        default                       : return ssavar(n)
    }
}

func ssalist(sb *strings.Builder, ns []nodes.Node, render func(nodes.Node) string) {
    for i, p := range ns {
        if i != 0 {
            sb.WriteByte(',')
        }
        sb.WriteString(render(p))
    }
}

func (_SSAPrinter) VisitStart(n *nodes.Start, sb *strings.Builder) *strings.Builder {
    if n.Procedure == nil {
        sb.WriteString("def proc():\n")
    } else {
        fmt.Fprintf(sb, "def %s():\n", n.Procedure.Name)
    }
    return sb
}

func (_SSAPrinter) VisitStop(_ *nodes.Stop, sb *strings.Builder) *strings.Builder {
    return sb
}

func (_SSAPrinter) VisitBlock(n *nodes.Block, sb *strings.Builder) *strings.Builder {
    fmt.Fprintf(sb, "%s:\n", n.Label())
    return sb
}

func (_SSAPrinter) VisitBranch(n *nodes.Branch, sb *strings.Builder) *strings.Builder {
    var target nodes.Node

    /* the taken edge leads to the block after the true projection */
    if p := nodes.CFProject(n, nodes.BranchTrue); p != nil {
        for _, v := range p.Outs() {
            if bb, ok := v.(*nodes.Block); ok {
                target = bb
                break
            }
        }
    }

    /* no target block means the taken edge was removed */
    if target == nil {
        fmt.Fprintf(sb, "    branch %s (null)\n", ssaval(n.Predicate()))
    } else {
        fmt.Fprintf(sb, "    branch %s %s\n", ssaval(n.Predicate()), target.Label())
    }
    return sb
}

func (_SSAPrinter) VisitCall(n *nodes.Call, sb *strings.Builder) *strings.Builder {
    var defs []*nodes.Def
    fmt.Fprintf(sb, "    call %s\n", ssaval(n.Callee()))

    /* storages read by the callee */
    if uses := n.Uses(); len(uses) != 0 {
        sb.WriteString("        ")
        for i, u := range uses {
            if i != 0 {
                sb.WriteByte(',')
            }
            fmt.Fprintf(sb, "%s:%s", u.Storage.Name(), ssaval(u.Value()))
        }
        sb.WriteByte('\n')
    }

    /* storages clobbered by the callee */
    for _, v := range n.Outs() {
        if d, ok := v.(*nodes.Def); ok {
            defs = append(defs, d)
        }
    }

    /* one line for all of them */
    if len(defs) != 0 {
        sb.WriteString("        ")
        for i, d := range defs {
            if i != 0 {
                sb.WriteByte(',')
            }
            fmt.Fprintf(sb, "%s:%s", d.Storage.Name(), ssavar(d))
        }
        sb.WriteByte('\n')
    }
    return sb
}

func (_SSAPrinter) VisitReturn(n *nodes.Return, sb *strings.Builder) *strings.Builder {
    if v := n.Value(); v == nil {
        sb.WriteString("    return\n")
    } else {
        fmt.Fprintf(sb, "    return %s\n", ssaval(v))
    }
    return sb
}

func (_SSAPrinter) VisitCFProjection(_ *nodes.CFProjection, sb *strings.Builder) *strings.Builder {
    return sb
}

func (_SSAPrinter) VisitConstant(_ *nodes.Constant, sb *strings.Builder) *strings.Builder {
    return sb
}

func (_SSAPrinter) VisitProcedureConstant(_ *nodes.ProcedureConstant, sb *strings.Builder) *strings.Builder {
    return sb
}

func (_SSAPrinter) VisitBinary(n *nodes.Binary, sb *strings.Builder) *strings.Builder {
    fmt.Fprintf(sb, "    %s = %s%s%s\n", ssavar(n), ssaval(n.Left()), n.Op, ssaval(n.Right()))
    return sb
}

func (_SSAPrinter) VisitUnary(n *nodes.Unary, sb *strings.Builder) *strings.Builder {
    fmt.Fprintf(sb, "    %s = %s%s\n", ssavar(n), n.Op, ssaval(n.Operand()))
    return sb
}

func (_SSAPrinter) VisitPhi(n *nodes.Phi, sb *strings.Builder) *strings.Builder {
    fmt.Fprintf(sb, "    %s = PHI(", ssavar(n))
    ssalist(sb, n.Operands(), ssaval)
    sb.WriteString(")\n")
    return sb
}

func (_SSAPrinter) VisitMemoryAccess(n *nodes.MemoryAccess, sb *strings.Builder) *strings.Builder {
    fmt.Fprintf(sb, "    %s = Mem%d[%s]\n", ssavar(n), n.Memory().Id(), ssaval(n.Address()))
    return sb
}

func (_SSAPrinter) VisitStore(n *nodes.Store, sb *strings.Builder) *strings.Builder {
    var mem nodes.Node = n

    /* name the memory after the projection carrying it, if any */
    if p := nodes.Project(n, nodes.StoreMemory); p != nil {
        mem = p
    }

    /* Mem<out>[ea:type] = value */
    fmt.Fprintf(sb, "    Mem%d[%s:%s] = %s\n", mem.Id(), ssaval(n.Address()), n.Type, ssaval(n.Value()))
    return sb
}

func (_SSAPrinter) VisitSlice(n *nodes.Slice, sb *strings.Builder) *strings.Builder {
    fmt.Fprintf(sb, "    %s = SLICE(%s, %s, %d)\n", ssavar(n), ssaval(n.Value()), n.Type, n.Offset)
    return sb
}

func (_SSAPrinter) VisitSequence(n *nodes.Sequence, sb *strings.Builder) *strings.Builder {
    fmt.Fprintf(sb, "    %s = SEQ(", ssavar(n))
    ssalist(sb, n.Elems(), ssaval)
    sb.WriteString(")\n")
    return sb
}

func (_SSAPrinter) VisitProjection(_ *nodes.Projection, sb *strings.Builder) *strings.Builder {
    return sb
}

func (_SSAPrinter) VisitDef(n *nodes.Def, sb *strings.Builder) *strings.Builder {
    fmt.Fprintf(sb, "    %s = %s\n", ssavar(n), n.Storage.Name())
    return sb
}

func (_SSAPrinter) VisitUse(n *nodes.Use, sb *strings.Builder) *strings.Builder {
    fmt.Fprintf(sb, "    use %s:%s\n", n.Storage.Name(), ssaval(n.Value()))
    return sb
}

func (_SSAPrinter) VisitConditionOf(n *nodes.ConditionOf, sb *strings.Builder) *strings.Builder {
    fmt.Fprintf(sb, "    %s = cond(%s)\n", ssavar(n), ssaval(n.Expr()))
    return sb
}

// WriteSSA writes n in a three-address form, e.g. "v5 = v3 + 1". Constants,
// projections and Stop write nothing, they only show up as operands.
func WriteSSA(sb *strings.Builder, n nodes.Node) {
    nodes.AcceptContext[*strings.Builder, *strings.Builder](n, _SSAPrinter{}, sb)
}

// SSA lists every node reachable from root in three-address form, inputs
// before the nodes using them.
func SSA(root nodes.Node) string {
    var sb strings.Builder
    for _, n := range analysis.PostOrder(root) {
        WriteSSA(&sb, n)
    }
    return sb.String()
}
