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

type Kind uint8

const (
    KindWord Kind = iota
    KindInt
    KindUInt
    KindPtr
    KindBool
)

// DataType is the primitive type of a value: a kind and a bit width.
type DataType struct {
    Kind Kind
    Bits int
}

var Bool = DataType { Kind: KindBool, Bits: 1 }

func Word(bits int) DataType {
    return DataType { Kind: KindWord, Bits: bits }
}

func Int(bits int) DataType {
    return DataType { Kind: KindInt, Bits: bits }
}

func UInt(bits int) DataType {
    return DataType { Kind: KindUInt, Bits: bits }
}

func Ptr(bits int) DataType {
    return DataType { Kind: KindPtr, Bits: bits }
}

// Mask returns the mask that truncates a value to the width of this type.
func (self DataType) Mask() uint64 {
    if self.Bits >= 64 {
        return ^uint64(0)
    } else if self.Bits <= 0 {
        return 0
    } else {
        return (uint64(1) << uint(self.Bits)) - 1
    }
}

func (self DataType) String() string {
    switch self.Kind {
        case KindWord : return fmt.Sprintf("word%d", self.Bits)
        case KindInt  : return fmt.Sprintf("int%d", self.Bits)
        case KindUInt : return fmt.Sprintf("uint%d", self.Bits)
        case KindPtr  : return fmt.Sprintf("ptr%d", self.Bits)
        case KindBool : return "bool"
        default       : panic(fmt.Sprintf("cfg: invalid type kind: %d", self.Kind))
    }
}
