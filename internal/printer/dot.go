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
    `strconv`

    `gonum.org/v1/gonum/graph`
    `gonum.org/v1/gonum/graph/encoding`
    `gonum.org/v1/gonum/graph/encoding/dot`
    `gonum.org/v1/gonum/graph/multi`

    `github.com/cloudwego/seaofnodes/internal/analysis`
    `github.com/cloudwego/seaofnodes/nodes`
)

type _DotNode struct {
    n nodes.Node
}

func (self _DotNode) ID() int64 {
    return int64(self.n.Id())
}

func (self _DotNode) Attributes() []encoding.Attribute {
    attrs := []encoding.Attribute {
        { Key: "label", Value: self.n.String() },
    }

    /* control nodes are boxes */
    if nodes.IsControl(self.n) {
        attrs = append(attrs, encoding.Attribute { Key: "shape", Value: "box" })
    }

    /* all done */
    return attrs
}

type _DotEdge struct {
    multi.Line
    slot int
    ctrl bool
}

func (self _DotEdge) ReversedLine() graph.Line {
    return _DotEdge { Line: multi.Line { F: self.T, T: self.F, UID: self.UID }, slot: self.slot, ctrl: self.ctrl }
}

func (self _DotEdge) Attributes() []encoding.Attribute {
    attrs := []encoding.Attribute {
        { Key: "headlabel", Value: strconv.Itoa(self.slot) },
    }

    /* control edges are red */
    if self.ctrl {
        attrs = append(attrs, encoding.Attribute { Key: "color", Value: "red" })
    }

    /* all done */
    return attrs
}

// Dot renders every node reachable from root as a DOT digraph, with one
// edge per input slot going from the definition to its consumer, so a node
// using the same value twice gets two edges. Self-loops of phi nodes are
// left out.
func Dot(root nodes.Node, name string) ([]byte, error) {
    g := multi.NewDirectedGraph()
    vs := analysis.PostOrder(root)

    /* add all the nodes first, loops may refer to nodes visited later */
    for _, n := range vs {
        g.AddNode(_DotNode{n})
    }

    /* add the def-use edges, one line per slot */
    for _, n := range vs {
        for i, p := range n.Ins() {
            if p != nil && p != n {
                g.SetLine(_DotEdge {
                    Line : g.NewLine(g.Node(int64(p.Id())), g.Node(int64(n.Id()))).(multi.Line),
                    slot : i,
                    ctrl : nodes.IsControl(p),
                })
            }
        }
    }

    /* marshal the graph */
    return dot.MarshalMulti(g, name, "", "  ")
}
