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

type Instruction interface {
    fmt.Stringer
    instruction()
}

func (*Assignment)        instruction() {}
func (*Branch)            instruction() {}
func (*CallInstruction)   instruction() {}
func (*ReturnInstruction) instruction() {}
func (*Store)             instruction() {}
func (*SwitchInstruction) instruction() {}
func (*SideEffect)        instruction() {}

type Assignment struct {
    Dst *Identifier
    Src Expression
}

func (self *Assignment) String() string {
    return fmt.Sprintf("%s = %s", self.Dst, self.Src)
}

// Branch transfers control to Target when Cond holds, and falls through to
// the next block otherwise.
type Branch struct {
    Cond   Expression
    Target *Block
}

func (self *Branch) String() string {
    if self.Target == nil {
        return fmt.Sprintf("branch %s <unresolved>", self.Cond)
    } else {
        return fmt.Sprintf("branch %s %s", self.Cond, self.Target.Name)
    }
}

// CallBinding binds a storage to the expression passed into (or the value
// returned from) a call.
type CallBinding struct {
    Storage Storage
    Expr    Expression
}

type CallInstruction struct {
    Callee Expression
    Uses   []CallBinding
    Defs   []CallBinding
}

func (self *CallInstruction) String() string {
    uses := make([]string, 0, len(self.Uses))
    defs := make([]string, 0, len(self.Defs))

    /* dump the bindings */
    for _, u := range self.Uses { uses = append(uses, fmt.Sprintf("%s:%s", u.Storage, u.Expr)) }
    for _, d := range self.Defs { defs = append(defs, fmt.Sprintf("%s:%s", d.Storage, d.Expr)) }

    /* join them together */
    return fmt.Sprintf(
        "call %s (uses: %s) (defs: %s)",
        self.Callee,
        strings.Join(uses, ","),
        strings.Join(defs, ","),
    )
}

// ReturnInstruction returns from the procedure, Expr may be nil.
type ReturnInstruction struct {
    Expr Expression
}

func (self *ReturnInstruction) String() string {
    if self.Expr == nil {
        return "return"
    } else {
        return "return " + self.Expr.String()
    }
}

type Store struct {
    Dst *MemoryAccess
    Src Expression
}

func (self *Store) String() string {
    return fmt.Sprintf("%s = %s", self.Dst, self.Src)
}

type SwitchInstruction struct {
    Expr    Expression
    Targets []*Block
}

func (self *SwitchInstruction) String() string {
    return fmt.Sprintf("switch (%s) <%d targets>", self.Expr, len(self.Targets))
}

type SideEffect struct {
    Expr Expression
}

func (self *SideEffect) String() string {
    return self.Expr.String()
}
