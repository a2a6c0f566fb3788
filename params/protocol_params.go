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

// Package params holds the protocol gas constants and the revision
// enumeration governing precompile availability and pricing.
package params

// Gas costs of the precompiled contracts. Word costs apply per 32-byte
// word of input, rounded up.
const (
	EcrecoverGas uint64 = 3000 // Elliptic curve sender recovery gas price

	Sha256BaseGas    uint64 = 60 // Base price for a SHA256 operation
	Sha256PerWordGas uint64 = 12 // Per-word price for a SHA256 operation

	Ripemd160BaseGas    uint64 = 600 // Base price for a RIPEMD160 operation
	Ripemd160PerWordGas uint64 = 120 // Per-word price for a RIPEMD160 operation

	IdentityBaseGas    uint64 = 15 // Base price for a data copy operation
	IdentityPerWordGas uint64 = 3  // Per-word price for a data copy operation

	ModExpQuadCoeffDiv  uint64 = 20  // Divisor for the quadratic particle of the big int modular exponentiation (EIP-198)
	ModExpGquaddivisor  uint64 = 3   // Divisor under EIP-2565
	ModExpMinGasEip2565 uint64 = 200 // Price floor under EIP-2565

	Bn254AddGasByzantium             uint64 = 500    // Byzantium gas needed for an elliptic curve addition
	Bn254AddGasIstanbul              uint64 = 150    // Gas needed for an elliptic curve addition
	Bn254ScalarMulGasByzantium       uint64 = 40000  // Byzantium gas needed for an elliptic curve scalar multiplication
	Bn254ScalarMulGasIstanbul        uint64 = 6000   // Gas needed for an elliptic curve scalar multiplication
	Bn254PairingBaseGasByzantium     uint64 = 100000 // Byzantium base price for an elliptic curve pairing check
	Bn254PairingBaseGasIstanbul      uint64 = 45000  // Base price for an elliptic curve pairing check
	Bn254PairingPerPointGasByzantium uint64 = 80000  // Byzantium per-point price for an elliptic curve pairing check
	Bn254PairingPerPointGasIstanbul  uint64 = 34000  // Per-point price for an elliptic curve pairing check

	PointEvaluationGas uint64 = 50000 // Gas needed for the EIP-4844 point evaluation precompile
)
