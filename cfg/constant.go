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
)

// Constant is an immutable literal, always stored truncated to its width.
type Constant struct {
    Type  DataType
    Value uint64
}

func Const(dt DataType, v uint64) *Constant {
    return &Constant {
        Type  : dt,
        Value : v & dt.Mask(),
    }
}

func Word32(v uint64) *Constant {
    return Const(Word(32), v)
}

func Word16(v uint64) *Constant {
    return Const(Word(16), v)
}

func (self *Constant) DataType() DataType {
    return self.Type
}

// Signed returns the value sign-extended from its declared width.
func (self *Constant) Signed() int64 {
    return sext(self.Value, self.Type.Bits)
}

func (self *Constant) IsZero() bool {
    return self.Value == 0
}

func (self *Constant) String() string {
    if self.Value < 10 {
        return fmt.Sprintf("%d<%d>", self.Value, self.Type.Bits)
    } else {
        return fmt.Sprintf("0x%X<%d>", self.Value, self.Type.Bits)
    }
}

func sext(v uint64, bits int) int64 {
    if bits <= 0 || bits >= 64 {
        return int64(v)
    } else {
        sh := uint(64 - bits)
        return int64(v << sh) >> sh
    }
}
