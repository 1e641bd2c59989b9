// Copyright 2025 go-wavecodec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wavelet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Name identifies a wavelet in the registry.
type Name uint8

const (
	DB1 Name = iota
	DB2
	DB3
	DB4
	DB5
	DB6
	DB7
	DB8
	DB9
	DB10
	DB11
	DB12
	DB13
	DB14
	DB15
	DB16
	DB17
	DB18
	DB19
	DB20

	// NameCount is the number of registered wavelets.
	NameCount = int(DB20) + 1
)

// ErrUnknownName is returned by ParseName for names outside db1..db20.
var ErrUnknownName = errors.New("wavelet: unknown name")

// Valid reports whether n is a registered wavelet.
func (n Name) Valid() bool {
	return int(n) < NameCount
}

// Order returns N for dbN.
func (n Name) Order() int {
	return int(n) + 1
}

// String returns the conventional name, e.g. "db4".
func (n Name) String() string {
	if !n.Valid() {
		return "Name(" + strconv.Itoa(int(n)) + ")"
	}
	return "db" + strconv.Itoa(n.Order())
}

// ParseName parses "db1".."db20" (case-insensitive).
func ParseName(s string) (Name, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	digits, ok := strings.CutPrefix(lower, "db")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
	}
	order, err := strconv.Atoi(digits)
	if err != nil || order < 1 || order > NameCount {
		return 0, fmt.Errorf("%w: %q", ErrUnknownName, s)
	}
	return Name(order - 1), nil
}

// Names returns every registered wavelet, db1 first.
func Names() []Name {
	names := make([]Name, NameCount)
	for i := range names {
		names[i] = Name(i)
	}
	return names
}
