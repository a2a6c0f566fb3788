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

package bn254

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generator of G1 in the precompile encoding
const g1GenHex = "0000000000000000000000000000000000000000000000000000000000000001" +
	"0000000000000000000000000000000000000000000000000000000000000002"

// generator of G2 in the precompile encoding (imaginary part first)
const g2GenHex = "198e9393920d483a7260bfb731fb5d25f1aa493335a9e71297e485b7aef312c2" +
	"1800deef121f1e76426a00665e5c4479674322d4f75edadd46debd5cd992f6ed" +
	"090689d0585ff075ec9e99ad690c3395bc4b313370b38ef355acdadcd122975b" +
	"12c85ea5db8c6deb4aab71808dcb408fe3d1e7690c43d37b4ce6cc0166fa7daa"

// a point with x = 1 on the twist curve; it satisfies the curve
// equation but does not lie in the r-torsion subgroup
const g2OffSubgroupHex = "0000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000000000000000000000000000000000001" +
	"0d1271953ed9ea0836846e70a1934187998c7f790cb4d7511b7f8da82de048a4" +
	"2869111d5381f072f8e2728fdb825a51aadd70e52c9830e9ab4b871c0531f1bb"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestUnmarshalG1RoundTrip(t *testing.T) {
	in := mustHex(t, g1GenHex)
	p, err := UnmarshalG1(in)
	require.NoError(t, err)
	assert.False(t, p.IsInfinity())
	assert.Equal(t, in, MarshalG1(p))
}

func TestUnmarshalG1Infinity(t *testing.T) {
	p, err := UnmarshalG1(make([]byte, 64))
	require.NoError(t, err)
	assert.True(t, p.IsInfinity())
	assert.Equal(t, make([]byte, 64), MarshalG1(p))
}

func TestUnmarshalG1NotOnCurve(t *testing.T) {
	in := mustHex(t, g1GenHex)
	in[63] = 3 // (1, 3) does not satisfy y^2 = x^3 + 3
	_, err := UnmarshalG1(in)
	assert.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestUnmarshalG1NonCanonical(t *testing.T) {
	// X set to the field modulus
	pBytes, _ := new(big.Int).SetString("30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47", 16)
	in := make([]byte, 64)
	pBytes.FillBytes(in[:32])
	in[63] = 2
	_, err := UnmarshalG1(in)
	assert.ErrorIs(t, err, ErrMalformedPoint)
}

func TestUnmarshalG1BadLength(t *testing.T) {
	_, err := UnmarshalG1(make([]byte, 63))
	assert.ErrorIs(t, err, ErrMalformedPoint)
}

func TestUnmarshalG2Generator(t *testing.T) {
	p, err := UnmarshalG2(mustHex(t, g2GenHex))
	require.NoError(t, err)
	assert.True(t, p.IsOnCurve())
	assert.True(t, p.IsInSubGroup())
}

func TestUnmarshalG2Infinity(t *testing.T) {
	p, err := UnmarshalG2(make([]byte, 128))
	require.NoError(t, err)
	assert.True(t, p.IsInfinity())
}

func TestUnmarshalG2NotOnCurve(t *testing.T) {
	in := mustHex(t, g2GenHex)
	in[127] ^= 1
	_, err := UnmarshalG2(in)
	assert.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestUnmarshalG2NotInSubgroup(t *testing.T) {
	_, err := UnmarshalG2(mustHex(t, g2OffSubgroupHex))
	assert.ErrorIs(t, err, ErrPointNotInSubgroup)
}

func TestAddGenerator(t *testing.T) {
	g, err := UnmarshalG1(mustHex(t, g1GenHex))
	require.NoError(t, err)

	sum := Add(g, g)
	double := ScalarMul(g, big.NewInt(2))
	assert.Equal(t, MarshalG1(double), MarshalG1(sum))
}

func TestAddIdentity(t *testing.T) {
	g, err := UnmarshalG1(mustHex(t, g1GenHex))
	require.NoError(t, err)
	zero := new(G1)

	assert.Equal(t, MarshalG1(g), MarshalG1(Add(g, zero)))
	assert.Equal(t, MarshalG1(g), MarshalG1(Add(zero, g)))
	assert.Equal(t, make([]byte, 64), MarshalG1(Add(zero, zero)))
}

func TestScalarMulEdgeScalars(t *testing.T) {
	g, err := UnmarshalG1(mustHex(t, g1GenHex))
	require.NoError(t, err)

	assert.Equal(t, MarshalG1(g), MarshalG1(ScalarMul(g, big.NewInt(1))))
	assert.True(t, ScalarMul(g, big.NewInt(0)).IsInfinity())
}

func TestPairingCheckCancellation(t *testing.T) {
	g1, err := UnmarshalG1(mustHex(t, g1GenHex))
	require.NoError(t, err)
	g2, err := UnmarshalG2(mustHex(t, g2GenHex))
	require.NoError(t, err)

	neg := new(G1).Neg(g1)

	// e(P, Q) * e(-P, Q) == 1
	ok, err := PairingCheck([]G1{*g1, *neg}, []G2{*g2, *g2})
	require.NoError(t, err)
	assert.True(t, ok)

	// a single non-degenerate pairing is not the identity
	ok, err = PairingCheck([]G1{*g1}, []G2{*g2})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPairingCheckEmpty(t *testing.T) {
	ok, err := PairingCheck(nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}
