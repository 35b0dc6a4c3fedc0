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


package seaofnodes

import (
	"fmt"

	"github.com/cloudwego/seaofnodes/internal/opts"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithTrace logs every node the optimizer looks at, at the debug level of
// the logger set with SetLogger.
//
// The default value of this option is "false".
func WithTrace(v bool) Option {
	return func(o *opts.Options) { o.Trace = v }
}

// WithPrintDepth sets how many input edges away from the root the nodes
// printed by Graph.String may be.
//
// The default value of this option is "99".
func WithPrintDepth(depth int) Option {
	if depth < 1 {
		panic(fmt.Sprintf("seaofnodes: invalid print depth: %d", depth))
	} else {
		return func(o *opts.Options) { o.PrintDepth = depth }
	}
}

// SetTrace sets the default trace option for all graphs loaded from now on.
//
// This value can also be configured with the `SON_TRACE` environment
// variable.
//
// Returns the old opts.Trace value.
func SetTrace(v bool) bool {
	v, opts.Trace = opts.Trace, v
	return v
}

// SetPrintDepth sets the default print depth for all graphs loaded from now
// on.
//
// This value can also be configured with the `SON_PRINT_DEPTH` environment
// variable.
//
// Returns the old opts.PrintDepth value.
func SetPrintDepth(depth int) int {
	if depth < 1 {
		panic(fmt.Sprintf("seaofnodes: invalid print depth: %d", depth))
	}
	depth, opts.PrintDepth = opts.PrintDepth, depth
	return depth
}
