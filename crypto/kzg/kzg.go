package kzg

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sync"

	goethkzg "github.com/crate-crypto/go-eth-kzg"
)

const (
	BlobCommitmentVersionKZG uint8 = 0x01
	PrecompileInputLength    int   = 192
)

type VersionedHash [32]byte

var (
	errInvalidInputLength = errors.New("invalid input length")

	// The value returned on success by the point evaluation precompile:
	// the number of field elements per blob followed by the BLS modulus,
	// both as 32-byte big-endian integers.
	precompileReturnValue [64]byte

	trustedSetupFile string

	kzgCtx        *goethkzg.Context
	initCryptoCtx sync.Once
)

func init() {
	new(big.Int).SetUint64(goethkzg.ScalarsPerBlob).FillBytes(precompileReturnValue[:32])
	copy(precompileReturnValue[32:], goethkzg.BlsModulus[:])
}

// SetTrustedSetupFilePath overrides the embedded trusted setup. Must be
// called before the first use of Ctx.
func SetTrustedSetupFilePath(path string) {
	trustedSetupFile = path
}

// InitKZGCtx initializes the global context object returned via Ctx.
func InitKZGCtx() {
	initCryptoCtx.Do(func() {
		if trustedSetupFile != "" {
			file, err := os.ReadFile(trustedSetupFile)
			if err != nil {
				panic(fmt.Sprintf("could not read file, err: %v", err))
			}

			setup := new(goethkzg.JSONTrustedSetup)
			if err = json.Unmarshal(file, setup); err != nil {
				panic(fmt.Sprintf("could not unmarshal, err: %v", err))
			}

			kzgCtx, err = goethkzg.NewContext4096(setup)
			if err != nil {
				panic(fmt.Sprintf("could not create KZG context, err: %v", err))
			}
		} else {
			var err error
			// Initialize context to match the configurations that the
			// specs are using.
			kzgCtx, err = goethkzg.NewContext4096Secure()
			if err != nil {
				panic(fmt.Sprintf("could not create context, err : %v", err))
			}
		}
	})
}

// Ctx returns a context object that stores all of the necessary configurations
// to allow one to create and verify blob proofs. This function is expensive to
// run if the crypto context isn't initialized, so callers on a hot path should
// pre-initialize by calling InitKZGCtx.
func Ctx() *goethkzg.Context {
	InitKZGCtx()
	return kzgCtx
}

// KZGToVersionedHash implements kzg_to_versioned_hash from EIP-4844
func KZGToVersionedHash(kzg goethkzg.KZGCommitment) VersionedHash {
	h := sha256.Sum256(kzg[:])
	h[0] = BlobCommitmentVersionKZG

	return VersionedHash(h)
}

// PointEvaluationPrecompile implements point_evaluation_precompile from EIP-4844
func PointEvaluationPrecompile(input []byte) ([]byte, error) {
	if len(input) != PrecompileInputLength {
		return nil, errInvalidInputLength
	}
	// versioned hash: first 32 bytes
	var versionedHash [32]byte
	copy(versionedHash[:], input[:32])

	var z, y goethkzg.Scalar
	// Evaluation point: next 32 bytes
	copy(z[:], input[32:64])
	// Expected output: next 32 bytes
	copy(y[:], input[64:96])

	// input kzg point: next 48 bytes
	var commitment goethkzg.KZGCommitment
	copy(commitment[:], input[96:144])
	if KZGToVersionedHash(commitment) != VersionedHash(versionedHash) {
		return nil, errors.New("mismatched versioned hash")
	}

	// Quotient kzg: next 48 bytes
	var proof goethkzg.KZGProof
	copy(proof[:], input[144:PrecompileInputLength])

	if err := Ctx().VerifyKZGProof(commitment, z, y, proof); err != nil {
		return nil, fmt.Errorf("verify_kzg_proof error: %w", err)
	}

	out := precompileReturnValue
	return out[:], nil
}
