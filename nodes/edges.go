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

// ReplaceUses redirects every consumer of old to rep, except old itself.
// It returns the consumers that were redirected.
func ReplaceUses(old Node, rep Node) []Node {
    var ret []Node
    var keep []Node

    /* the consumer list is rebuilt, so take a snapshot */
    uses := append([]Node(nil), old.Outs()...)
    base := old.base()

    /* rewire all the consumers */
    for _, u := range uses {
        if u == old {
            keep = append(keep, u)
            continue
        }

        /* update the input slots of the consumer */
        moved := false
        ins := u.base().ins

        /* a consumer appears once per slot, later visits find nothing */
        for i, p := range ins {
            if p == old {
                if moved, ins[i] = true, rep; rep != nil {
                    rep.AddUse(u)
                }
            }
        }

        /* record the consumer */
        if moved {
            ret = append(ret, u)
        }
    }

    /* only self-references remain */
    base.outs = keep
    return ret
}

// Disconnect drops all the inputs of n, and returns the former inputs that
// no longer have any consumer.
func Disconnect(n Node) []Node {
    var ret []Node
    base := n.base()

    /* detach from every definition */
    for _, p := range base.ins {
        if p != nil && p.RemoveUse(n) && p != n && p.IsUnused() {
            ret = append(ret, p)
        }
    }

    /* the node is now dead if it has no consumers */
    base.ins = nil
    return ret
}
