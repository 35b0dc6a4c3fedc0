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

// BitRange is a half-open range of bits [Lsb, Msb) inside a storage domain.
type BitRange struct {
    Lsb int
    Msb int
}

func Bits(lsb int, msb int) BitRange {
    if lsb < 0 || msb < lsb {
        panic(fmt.Sprintf("cfg: invalid bit range [%d, %d)", lsb, msb))
    } else {
        return BitRange { Lsb: lsb, Msb: msb }
    }
}

func (self BitRange) Extent() int {
    return self.Msb - self.Lsb
}

func (self BitRange) IsEmpty() bool {
    return self.Msb <= self.Lsb
}

// Contains reports whether bit i lies inside the range.
func (self BitRange) Contains(i int) bool {
    return i >= self.Lsb && i < self.Msb
}

// Covers reports whether every bit of r also lies inside the range.
func (self BitRange) Covers(r BitRange) bool {
    return self.Lsb <= r.Lsb && r.Msb <= self.Msb
}

func (self BitRange) Overlaps(r BitRange) bool {
    return self.Lsb < r.Msb && r.Lsb < self.Msb
}

// Union returns the smallest range covering both ranges.
func (self BitRange) Union(r BitRange) BitRange {
    if self.IsEmpty() {
        return r
    } else if r.IsEmpty() {
        return self
    } else {
        return BitRange { Lsb: minint(self.Lsb, r.Lsb), Msb: maxint(self.Msb, r.Msb) }
    }
}

// Intersect returns the overlapping part of both ranges, which may be empty.
func (self BitRange) Intersect(r BitRange) BitRange {
    lsb := maxint(self.Lsb, r.Lsb)
    msb := minint(self.Msb, r.Msb)

    /* no overlapping bits */
    if msb < lsb {
        msb = lsb
    }

    /* construct the result */
    return BitRange {
        Lsb: lsb,
        Msb: msb,
    }
}

func (self BitRange) String() string {
    return fmt.Sprintf("[%d..%d)", self.Lsb, self.Msb)
}

func minint(a int, b int) int {
    if a < b {
        return a
    } else {
        return b
    }
}

func maxint(a int, b int) int {
    if a > b {
        return a
    } else {
        return b
    }
}
