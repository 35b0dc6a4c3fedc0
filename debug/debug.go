/*
 * Copyright 2022 CloudWeGo Authors
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


// Package debug exposes counters collected while building and optimizing
// node graphs.
package debug

import (
	"sync/atomic"

	"github.com/cloudwego/seaofnodes/internal/analysis"
	"github.com/cloudwego/seaofnodes/internal/loader"
	"github.com/cloudwego/seaofnodes/nodes"
)

// A Stats records statistics about graph construction and optimization.
type Stats struct {
	Nodes    int
	Phis     PhiStats
	Peephole PeepholeStats
}

// A PhiStats records statistics about the SSA construction.
type PhiStats struct {
	Created int
	Trivial int
}

// A PeepholeStats records statistics about the value propagator.
type PeepholeStats struct {
	Replaced int
	Removed  int
}

// GetStats returns statistics accumulated since the program started.
func GetStats() Stats {
	return Stats{
		Nodes: int(atomic.LoadUint64(&nodes.NodeCount)),
		Phis: PhiStats{
			Created: int(atomic.LoadUint64(&loader.PhiCount)),
			Trivial: int(atomic.LoadUint64(&loader.TrivialPhiCount)),
		},
		Peephole: PeepholeStats{
			Replaced: int(atomic.LoadUint64(&analysis.ReplaceCount)),
			Removed:  int(atomic.LoadUint64(&analysis.RemoveCount)),
		},
	}
}
