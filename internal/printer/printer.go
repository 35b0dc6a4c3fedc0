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


// Package printer renders node graphs as text, one line per node, and as
// DOT documents.
package printer

import (
    `fmt`
    `strings`

    `github.com/bits-and-blooms/bitset`

    `github.com/cloudwego/seaofnodes/nodes`
)

const (
    _MaxLabel = 12
)

func label(n nodes.Node) string {
    if s := n.Label(); len(s) <= _MaxLabel {
        return s
    } else {
        return s[:_MaxLabel]
    }
}

func idlist(sb *strings.Builder, ns []nodes.Node) {
    for i, p := range ns {
        if i != 0 {
            sb.WriteByte(',')
        }

        /* empty slots are written as "_" */
        if p == nil {
            sb.WriteByte('_')
        } else {
            fmt.Fprintf(sb, "%d", p.Id())
        }
    }
}

// WriteLine writes n as "{ id:N, lbl:L, in:[..], out:[..] }" on a line.
func WriteLine(sb *strings.Builder, n nodes.Node) {
    fmt.Fprintf(sb, "{ id:%d, lbl:%s", n.Id(), label(n))

    /* removed nodes */
    if n.IsDead() {
        sb.WriteString(", DEAD }\n")
        return
    }

    /* inputs and outputs */
    sb.WriteString(", in:[")
    idlist(sb, n.Ins())
    sb.WriteString("], out:[")
    idlist(sb, n.Outs())
    sb.WriteString("] }\n")
}

type _BFS struct {
    nodes []nodes.Node
    bs    *bitset.BitSet
    lim   int
}

// newBFS collects the nodes at most depth input edges away from root. Nodes
// in nodes[lim:] have no inputs in the set, and serve as roots of the
// forward walk.
func newBFS(root nodes.Node, depth int) *_BFS {
    idx := 0
    lim := 1
    ret := &_BFS { bs: bitset.New(64) }

    /* prime the pump */
    ret.add(root)

    /* walk level by level */
    for idx < len(ret.nodes) {
        n := ret.nodes[idx]
        idx++

        /* add all the unvisited inputs */
        for _, p := range n.Ins() {
            if p != nil && !ret.bs.Test(uint(p.Id())) {
                ret.add(p)
            }
        }

        /* depth changes at the limit */
        if idx == lim {
            if depth--; depth < 0 {
                break
            }
            lim = len(ret.nodes)
        }
    }

    /* toss everything past the limit */
    for _, n := range ret.nodes[idx:] {
        ret.bs.Clear(uint(n.Id()))
    }

    /* move the roots to the end */
    ret.nodes = ret.nodes[:idx]
    ret.lim = len(ret.nodes)

    /* a root has no inputs in the set */
    for i := len(ret.nodes) - 1; i >= 0; i-- {
        if !ret.anyVisited(ret.nodes[i]) {
            ret.lim--
            ret.nodes[i], ret.nodes[ret.lim] = ret.nodes[ret.lim], ret.nodes[i]
        }
    }

    /* all done */
    return ret
}

func (self *_BFS) add(n nodes.Node) {
    self.nodes = append(self.nodes, n)
    self.bs.Set(uint(n.Id()))
}

func (self *_BFS) anyVisited(n nodes.Node) bool {
    for _, p := range n.Ins() {
        if p != nil && self.bs.Test(uint(p.Id())) {
            return true
        }
    }
    return false
}

func postorder(n nodes.Node, rpos *[]nodes.Node, visit *bitset.BitSet, bfs *bitset.BitSet) {
    id := uint(n.Id())

    /* not in the set, or already walked */
    if !bfs.Test(id) || visit.Test(id) {
        return
    }

    /* the control flow goes first, control nodes with consumers before the others */
    if visit.Set(id); nodes.IsControl(n) {
        for _, u := range n.Outs() {
            if nodes.IsControl(u) && len(u.Outs()) != 0 {
                postorder(u, rpos, visit, bfs)
            }
        }
        for _, u := range n.Outs() {
            if nodes.IsControl(u) {
                postorder(u, rpos, visit, bfs)
            }
        }
    }

    /* then everything else */
    for _, u := range n.Outs() {
        postorder(u, rpos, visit, bfs)
    }

    /* post-order */
    *rpos = append(*rpos, n)
}

// PrettyPrint lists the nodes at most depth input edges away from root, in
// reverse post-order of the output edges. Control nodes and multi-output
// nodes are set apart by blank lines, followed by their projections.
func PrettyPrint(root nodes.Node, depth int) string {
    var gap bool
    var sb strings.Builder
    var rpos []nodes.Node

    /* walk forward from the roots of the set */
    bfs := newBFS(root, depth)
    vis := bitset.New(64)

    /* convert the set to a post-order */
    for _, n := range bfs.nodes[bfs.lim:] {
        postorder(n, &rpos, vis, bfs.bs)
    }

    /* reverse the post-order walk */
    for i := len(rpos) - 1; i >= 0; i-- {
        n := rpos[i]

        /* plain nodes */
        if !nodes.IsControl(n) && !nodes.IsMultiHead(n) {
            WriteLine(&sb, n)
            gap = false
            continue
        }

        /* blank line before the head */
        if !gap {
            sb.WriteByte('\n')
        }

        /* the head, then the projections that follow it */
        for WriteLine(&sb, n); i > 0 && nodes.IsMultiTail(rpos[i - 1]); i-- {
            WriteLine(&sb, rpos[i - 1])
        }

        /* blank line after the projections */
        sb.WriteByte('\n')
        gap = true
    }

    /* all done */
    return sb.String()
}
