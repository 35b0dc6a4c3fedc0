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


// Package seaofnodes builds sea-of-nodes graphs out of procedure control flow
// graphs, and optimizes them.
//
// Control flow and data flow are both edges of one graph. Every storage a
// procedure writes (registers, flag groups, memory) ends up as a Use node
// feeding the Stop node of the graph, so anything not reachable from Stop is
// dead code.
package seaofnodes

import (
	"github.com/cloudwego/seaofnodes/cfg"
	"github.com/cloudwego/seaofnodes/internal/analysis"
	"github.com/cloudwego/seaofnodes/internal/loader"
	"github.com/cloudwego/seaofnodes/internal/logger"
	"github.com/cloudwego/seaofnodes/internal/opts"
	"github.com/cloudwego/seaofnodes/internal/printer"
	"github.com/cloudwego/seaofnodes/nodes"
	"go.uber.org/zap"
)

// Graph is the node graph of one procedure.
type Graph struct {
	proc    *cfg.Procedure
	stop    *nodes.Stop
	factory *nodes.Factory
	options opts.Options
}

// Load translates proc into a node graph in SSA form.
func Load(proc *cfg.Procedure, options ...Option) (g *Graph, err error) {
	o := opts.GetDefaultOptions()
	for _, fn := range options {
		fn(&o)
	}

	/* unsupported instructions abort the translation */
	defer recoverAs[loader.UnsupportedError](&err)
	f := nodes.NewFactory(proc)

	/* build the graph */
	return &Graph{
		proc:    proc,
		stop:    loader.New(proc, f).Load(),
		factory: f,
		options: o,
	}, nil
}

// Procedure returns the procedure the graph was built from.
func (self *Graph) Procedure() *cfg.Procedure {
	return self.proc
}

// Root returns the Stop node of the graph.
func (self *Graph) Root() *nodes.Stop {
	return self.stop
}

// Node returns the node with the given identity, or nil if there is none.
func (self *Graph) Node(id int) nodes.Node {
	return self.factory.Node(id)
}

// Optimize folds constants and removes dead nodes until nothing changes. It
// returns the root of the graph.
func (self *Graph) Optimize() (root nodes.Node, err error) {
	defer recoverAs[analysis.UnsupportedError](&err)
	return analysis.NewPropagator(self.factory, self.options).Transform(self.stop), nil
}

// String lists the nodes of the graph, up to the configured print depth.
func (self *Graph) String() string {
	return printer.PrettyPrint(self.stop, self.options.PrintDepth)
}

// SSA lists the nodes of the graph in three-address form.
func (self *Graph) SSA() string {
	return printer.SSA(self.stop)
}

// Dot renders the graph in the DOT language.
func (self *Graph) Dot() ([]byte, error) {
	return printer.Dot(self.stop, self.proc.Name)
}

// SetLogger sets the logger for diagnostic messages. Tracing messages are
// logged at the debug level. A nil logger discards everything.
func SetLogger(l *zap.Logger) {
	logger.SetLogger(l)
}

func recoverAs[E error](err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(E); ok {
			*err = e
		} else {
			panic(v)
		}
	}
}
