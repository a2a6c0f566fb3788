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

package crypto

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decred_ecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/erigontech/evm-precompiles/common"
)

// Ecrecover returns the uncompressed public key that created the given
// signature. sig must be in the [R || S || V] format with V being 0 or 1.
func Ecrecover(hash, sig []byte) ([]byte, error) {
	pub, err := SigToPub(hash, sig)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

// SigToPub returns the public key that created the given signature.
func SigToPub(hash, sig []byte) (*secp256k1.PublicKey, error) {
	if len(sig) != SignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes long", SignatureLength)
	}
	if sig[RecoveryIDOffset] >= 4 {
		return nil, errors.New("invalid recovery id")
	}
	// Convert to the decred input format with the recovery id header byte
	// at the beginning.
	compactSig := make([]byte, SignatureLength)
	compactSig[0] = sig[RecoveryIDOffset] + 27
	copy(compactSig[1:], sig)
	pub, _, err := decred_ecdsa.RecoverCompact(compactSig, hash)
	return pub, err
}

// Sign calculates a recoverable ECDSA signature over the given 32-byte
// hash, returning it in the [R || S || V] format used on the wire.
//
// The produced signature is in the 'low-s' form, suitable for use where
// signature malleability must be avoided.
func Sign(hash []byte, prv *secp256k1.PrivateKey) ([]byte, error) {
	if len(hash) != 32 {
		return nil, fmt.Errorf("hash is required to be exactly 32 bytes (%d)", len(hash))
	}
	sig := decred_ecdsa.SignCompact(prv, hash, false)
	// Move the recovery id from the header byte to the end.
	v := sig[0] - 27
	copy(sig, sig[1:])
	sig[RecoveryIDOffset] = v
	return sig, nil
}

// PubkeyToAddress derives the Ethereum address of a public key: the last
// 20 bytes of the Keccak256 hash of the uncompressed key without its
// 0x04 prefix byte.
func PubkeyToAddress(pub *secp256k1.PublicKey) common.Address {
	raw := pub.SerializeUncompressed()
	return common.BytesToAddress(Keccak256(raw[1:])[12:])
}
