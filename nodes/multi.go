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

// Multi is a node with more than one result. Consumers of a Branch or a Store
// never read it directly, they go through a Projection or a CFProjection.
type Multi interface {
    Node
    multi()
}

func (*Branch) multi() {}
func (*Call)   multi() {}
func (*Store)  multi() {}

const (
    BranchFalse = 0
    BranchTrue  = 1
)

const (
    StoreCtrl   = 0
    StoreMemory = 1
)

// Project returns the value projection idx of m, or nil if there is none.
func Project(m Multi, idx int) *Projection {
    for _, p := range m.Outs() {
        if v, ok := p.(*Projection); ok && v.Index == idx {
            return v
        }
    }
    return nil
}

// CFProject returns the control projection idx of m, or nil if there is none.
func CFProject(m Multi, idx int) *CFProjection {
    for _, p := range m.Outs() {
        if v, ok := p.(*CFProjection); ok && v.Index == idx {
            return v
        }
    }
    return nil
}
