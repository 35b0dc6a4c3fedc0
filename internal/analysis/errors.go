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


package analysis

import (
    `fmt`

    `github.com/cloudwego/seaofnodes/nodes`
)

// UnsupportedError is raised (as a panic value) when a peephole rule meets a
// node it has no rule for.
type UnsupportedError struct {
    Node nodes.Node
}

func (self UnsupportedError) Error() string {
    return fmt.Sprintf("unsupported node: %s", self.Node)
}
