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

// Package bn254 wraps gnark-crypto's bn254 implementation behind the
// byte encodings used by the precompiled contracts: 64-byte uncompressed
// G1 points and 128-byte uncompressed G2 points, big-endian coordinates.
package bn254

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

var (
	ErrPointNotOnCurve    = errors.New("invalid point: not on curve")
	ErrPointNotInSubgroup = errors.New("invalid point: subgroup check failed")
	ErrMalformedPoint     = errors.New("invalid point: malformed encoding")
)

// G1 is a point on the bn254 curve over Fp.
type G1 = bn254.G1Affine

// G2 is a point on the bn254 twist over Fp2.
type G2 = bn254.G2Affine

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// UnmarshalG1 decodes a 64-byte (X || Y) affine point. The all-zero
// encoding denotes the point at infinity. Coordinates must be canonical
// field elements and the point must lie on the curve. G1 has prime
// order on bn254 so no subgroup check is needed.
func UnmarshalG1(in []byte) (*G1, error) {
	if len(in) != 64 {
		return nil, ErrMalformedPoint
	}
	p := new(G1)
	if isAllZero(in) {
		return p, nil
	}
	if err := p.X.SetBytesCanonical(in[:32]); err != nil {
		return nil, ErrMalformedPoint
	}
	if err := p.Y.SetBytesCanonical(in[32:64]); err != nil {
		return nil, ErrMalformedPoint
	}
	if !p.IsOnCurve() {
		return nil, ErrPointNotOnCurve
	}
	return p, nil
}

// MarshalG1 encodes an affine point as 64 bytes (X || Y). The point at
// infinity encodes as all zeros.
func MarshalG1(p *G1) []byte {
	out := make([]byte, 64)
	if p.IsInfinity() {
		return out
	}
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(out[:32], x[:])
	copy(out[32:], y[:])
	return out
}

// UnmarshalG2 decodes a 128-byte twist point. Each Fp2 coordinate is
// encoded imaginary part first, so the layout is
// (X.A1 || X.A0 || Y.A1 || Y.A0). The all-zero encoding denotes the
// point at infinity. The twist has composite order, so membership in
// the r-torsion subgroup is checked as well.
func UnmarshalG2(in []byte) (*G2, error) {
	if len(in) != 128 {
		return nil, ErrMalformedPoint
	}
	p := new(G2)
	if isAllZero(in) {
		return p, nil
	}
	if err := p.X.A1.SetBytesCanonical(in[0:32]); err != nil {
		return nil, ErrMalformedPoint
	}
	if err := p.X.A0.SetBytesCanonical(in[32:64]); err != nil {
		return nil, ErrMalformedPoint
	}
	if err := p.Y.A1.SetBytesCanonical(in[64:96]); err != nil {
		return nil, ErrMalformedPoint
	}
	if err := p.Y.A0.SetBytesCanonical(in[96:128]); err != nil {
		return nil, ErrMalformedPoint
	}
	if !p.IsOnCurve() {
		return nil, ErrPointNotOnCurve
	}
	if !p.IsInSubGroup() {
		return nil, ErrPointNotInSubgroup
	}
	return p, nil
}

// Add returns a + b.
func Add(a, b *G1) *G1 {
	res := new(G1)
	res.Add(a, b)
	return res
}

// ScalarMul returns k * p. The scalar is taken mod the group order by
// the underlying implementation.
func ScalarMul(p *G1, k *big.Int) *G1 {
	res := new(G1)
	res.ScalarMultiplication(p, k)
	return res
}

// PairingCheck computes the product of pairings e(p[i], q[i]) and
// reports whether it equals the identity in GT. The slices must be of
// equal length. An empty product is the identity, so zero pairs yield
// true; the underlying Miller loop rejects empty inputs.
func PairingCheck(p []G1, q []G2) (bool, error) {
	if len(p) == 0 && len(q) == 0 {
		return true, nil
	}
	return bn254.PairingCheck(p, q)
}
