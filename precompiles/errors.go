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

package precompiles

import "errors"

var (
	// ErrOutOfGas is returned when the supplied gas does not cover the
	// contract's required gas. The full gas limit is consumed.
	ErrOutOfGas = errors.New("out of gas")

	// ErrNotPrecompile is returned by Run when the address carries no
	// precompiled contract at the given revision. Callers should treat
	// it as "not a precompile", not as an execution failure.
	ErrNotPrecompile = errors.New("not a precompiled contract")
)
