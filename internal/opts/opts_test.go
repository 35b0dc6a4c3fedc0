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
package opts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOrDefault(t *testing.T) {
	t.Setenv("SON_TEST_DEPTH", "")
	require.Equal(t, 99, parseOrDefault("SON_TEST_DEPTH", 99, 1))
	t.Setenv("SON_TEST_DEPTH", "0x10")
	require.Equal(t, 16, parseOrDefault("SON_TEST_DEPTH", 99, 1))
	t.Setenv("SON_TEST_DEPTH", "1")
	require.Equal(t, 1, parseOrDefault("SON_TEST_DEPTH", 99, 1))
	t.Setenv("SON_TEST_DEPTH", "0")
	require.Panics(t, func() { parseOrDefault("SON_TEST_DEPTH", 99, 1) })
	t.Setenv("SON_TEST_DEPTH", "deep")
	require.Panics(t, func() { parseOrDefault("SON_TEST_DEPTH", 99, 1) })
}

func TestParseOrDefault_PrintDepth(t *testing.T) {
	t.Setenv("SON_PRINT_DEPTH", "1")
	require.Equal(t, 1, parseOrDefault("SON_PRINT_DEPTH", _DefaultPrintDepth, 1))
	t.Setenv("SON_PRINT_DEPTH", "0")
	require.Panics(t, func() { parseOrDefault("SON_PRINT_DEPTH", _DefaultPrintDepth, 1) })
}

func TestParseBoolOrDefault(t *testing.T) {
	t.Setenv("SON_TEST_TRACE", "")
	require.False(t, parseBoolOrDefault("SON_TEST_TRACE", false))
	t.Setenv("SON_TEST_TRACE", "1")
	require.True(t, parseBoolOrDefault("SON_TEST_TRACE", false))
	t.Setenv("SON_TEST_TRACE", "maybe")
	require.Panics(t, func() { parseBoolOrDefault("SON_TEST_TRACE", false) })
}

func TestGetDefaultOptions(t *testing.T) {
	old := PrintDepth
	PrintDepth = 7
	defer func() { PrintDepth = old }()
	require.Equal(t, Options{Trace: Trace, PrintDepth: 7}, GetDefaultOptions())
}
