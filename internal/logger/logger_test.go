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
package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_Default(t *testing.T) {
	require.NotNil(t, Logger())
	require.False(t, Logger().Core().Enabled(zapcore.DebugLevel))
}

func TestLogger_SetLogger(t *testing.T) {
	old := Logger()
	defer SetLogger(old)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	Logger().Debug("peephole", zap.Int("id", 3))
	require.Equal(t, 1, logs.FilterMessage("peephole").Len())

	SetLogger(nil)
	require.NotNil(t, Logger())
	Logger().Debug("peephole")
	require.Equal(t, 1, logs.Len())
}
