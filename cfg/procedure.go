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

package cfg

import (
    `fmt`
    `strings`
)

type Block struct {
    Id         int
    Name       string
    Procedure  *Procedure
    Statements []Instruction
    Pred       []*Block
    Succ       []*Block
}

func (self *Block) Add(ins Instruction) {
    self.Statements = append(self.Statements, ins)
}

func (self *Block) IsEntry() bool {
    return self == self.Procedure.Entry
}

func (self *Block) IsExit() bool {
    return self == self.Procedure.Exit
}

func (self *Block) String() string {
    return self.Name
}

// Procedure is a control-flow graph with distinguished entry and exit blocks.
// Blocks are kept in creation order, entry first and exit second.
type Procedure struct {
    Name   string
    Arch   Architecture
    Entry  *Block
    Exit   *Block
    Blocks []*Block
}

func NewProcedure(name string, arch Architecture) *Procedure {
    ret := &Procedure {
        Name : name,
        Arch : arch,
    }

    /* create the entry and exit blocks */
    ret.Entry = ret.AddBlock(name + "_entry")
    ret.Exit = ret.AddBlock(name + "_exit")
    return ret
}

func (self *Procedure) AddBlock(name string) *Block {
    bb := &Block {
        Id        : len(self.Blocks),
        Name      : name,
        Procedure : self,
    }

    /* add to block list */
    self.Blocks = append(self.Blocks, bb)
    return bb
}

// AddEdge adds a control-flow edge. Duplicated edges are kept, so a block
// branching twice to the same successor sees it twice.
func (self *Procedure) AddEdge(from *Block, to *Block) {
    from.Succ = append(from.Succ, to)
    to.Pred = append(to.Pred, from)
}

func (self *Procedure) Predecessors(bb *Block) []*Block {
    return bb.Pred
}

func (self *Procedure) Successors(bb *Block) []*Block {
    return bb.Succ
}

func (self *Procedure) String() string {
    var ret []string
    ret = append(ret, fmt.Sprintf("proc %s {", self.Name))

    /* dump every block */
    for _, bb := range self.Blocks {
        pred := make([]string, 0, len(bb.Pred))
        for _, p := range bb.Pred { pred = append(pred, p.Name) }
        ret = append(ret, fmt.Sprintf("%s: ; pred = {%s}", bb.Name, strings.Join(pred, ", ")))

        /* dump the statements */
        for _, ins := range bb.Statements {
            for _, ss := range strings.Split(ins.String(), "\n") {
                ret = append(ret, "    " + ss)
            }
        }
    }

    /* join them together */
    ret = append(ret, "}")
    return strings.Join(ret, "\n")
}
