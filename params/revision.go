// Copyright 2025 The Erigon Authors
// This file is part of the evm-precompiles library.
//
// The evm-precompiles library is free software: you can redistribute it
// and/or modify it under the terms of the GNU Lesser General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// The evm-precompiles library is distributed in the hope that it will be
// useful, but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the evm-precompiles library. If not, see
// <http://www.gnu.org/licenses/>.

package params

import (
	"fmt"
	"strings"
)

// Revision names a protocol upgrade after which precompile availability
// or pricing changes. Revisions are totally ordered; forks that did not
// touch the precompile set are not enumerated. Later revisions compare
// greater than earlier ones.
type Revision int

const (
	Frontier Revision = iota
	Homestead
	Byzantium
	Istanbul
	Berlin
	Cancun
)

// Revisions lists all known revisions in activation order.
var Revisions = []Revision{Frontier, Homestead, Byzantium, Istanbul, Berlin, Cancun}

func (r Revision) String() string {
	switch r {
	case Frontier:
		return "Frontier"
	case Homestead:
		return "Homestead"
	case Byzantium:
		return "Byzantium"
	case Istanbul:
		return "Istanbul"
	case Berlin:
		return "Berlin"
	case Cancun:
		return "Cancun"
	default:
		return fmt.Sprintf("Revision(%d)", int(r))
	}
}

// ParseRevision resolves a case-insensitive revision name.
func ParseRevision(name string) (Revision, error) {
	for _, r := range Revisions {
		if strings.EqualFold(r.String(), name) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown revision %q", name)
}
