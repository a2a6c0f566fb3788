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

// Package precompiles implements the precompiled contracts of the EVM:
// the per-address native contracts, their revision-dependent gas rules,
// and the dispatcher that runs them under a gas limit.
package precompiles

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math"
	"math/big"
	"sort"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/ripemd160"

	"github.com/erigontech/evm-precompiles/common"
	"github.com/erigontech/evm-precompiles/crypto"
	"github.com/erigontech/evm-precompiles/crypto/blake2b"
	"github.com/erigontech/evm-precompiles/crypto/bn254"
	"github.com/erigontech/evm-precompiles/crypto/kzg"
	"github.com/erigontech/evm-precompiles/params"
)

// PrecompiledContract is the basic interface for native Go contracts. The
// implementation requires a deterministic gas count based on the input size
// of the Run method of the contract.
type PrecompiledContract interface {
	RequiredGas(input []byte) uint64 // RequiredGas calculates the contract gas use
	Run(input []byte) ([]byte, error)
}

// PrecompiledContractsHomestead contains the default set of pre-compiled
// contracts used in the Frontier and Homestead releases.
var PrecompiledContractsHomestead = map[common.Address]PrecompiledContract{
	common.BytesToAddress([]byte{1}): &ecrecover{},
	common.BytesToAddress([]byte{2}): &sha256hash{},
	common.BytesToAddress([]byte{3}): &ripemd160hash{},
	common.BytesToAddress([]byte{4}): &dataCopy{},
}

// PrecompiledContractsByzantium contains the default set of pre-compiled
// contracts used in the Byzantium release.
var PrecompiledContractsByzantium = map[common.Address]PrecompiledContract{
	common.BytesToAddress([]byte{1}): &ecrecover{},
	common.BytesToAddress([]byte{2}): &sha256hash{},
	common.BytesToAddress([]byte{3}): &ripemd160hash{},
	common.BytesToAddress([]byte{4}): &dataCopy{},
	common.BytesToAddress([]byte{5}): &bigModExp{eip2565: false},
	common.BytesToAddress([]byte{6}): &bn254AddByzantium{},
	common.BytesToAddress([]byte{7}): &bn254ScalarMulByzantium{},
	common.BytesToAddress([]byte{8}): &bn254PairingByzantium{},
}

// PrecompiledContractsIstanbul contains the default set of pre-compiled
// contracts used in the Istanbul release.
var PrecompiledContractsIstanbul = map[common.Address]PrecompiledContract{
	common.BytesToAddress([]byte{1}): &ecrecover{},
	common.BytesToAddress([]byte{2}): &sha256hash{},
	common.BytesToAddress([]byte{3}): &ripemd160hash{},
	common.BytesToAddress([]byte{4}): &dataCopy{},
	common.BytesToAddress([]byte{5}): &bigModExp{eip2565: false},
	common.BytesToAddress([]byte{6}): &bn254AddIstanbul{},
	common.BytesToAddress([]byte{7}): &bn254ScalarMulIstanbul{},
	common.BytesToAddress([]byte{8}): &bn254PairingIstanbul{},
	common.BytesToAddress([]byte{9}): &blake2F{},
}

// PrecompiledContractsBerlin contains the default set of pre-compiled
// contracts used in the Berlin release.
var PrecompiledContractsBerlin = map[common.Address]PrecompiledContract{
	common.BytesToAddress([]byte{1}): &ecrecover{},
	common.BytesToAddress([]byte{2}): &sha256hash{},
	common.BytesToAddress([]byte{3}): &ripemd160hash{},
	common.BytesToAddress([]byte{4}): &dataCopy{},
	common.BytesToAddress([]byte{5}): &bigModExp{eip2565: true},
	common.BytesToAddress([]byte{6}): &bn254AddIstanbul{},
	common.BytesToAddress([]byte{7}): &bn254ScalarMulIstanbul{},
	common.BytesToAddress([]byte{8}): &bn254PairingIstanbul{},
	common.BytesToAddress([]byte{9}): &blake2F{},
}

// PrecompiledContractsCancun contains the default set of pre-compiled
// contracts used in the Cancun release.
var PrecompiledContractsCancun = map[common.Address]PrecompiledContract{
	common.BytesToAddress([]byte{1}):    &ecrecover{},
	common.BytesToAddress([]byte{2}):    &sha256hash{},
	common.BytesToAddress([]byte{3}):    &ripemd160hash{},
	common.BytesToAddress([]byte{4}):    &dataCopy{},
	common.BytesToAddress([]byte{5}):    &bigModExp{eip2565: true},
	common.BytesToAddress([]byte{6}):    &bn254AddIstanbul{},
	common.BytesToAddress([]byte{7}):    &bn254ScalarMulIstanbul{},
	common.BytesToAddress([]byte{8}):    &bn254PairingIstanbul{},
	common.BytesToAddress([]byte{9}):    &blake2F{},
	common.BytesToAddress([]byte{0x0a}): &pointEvaluation{},
}

var (
	PrecompiledAddressesCancun    []common.Address
	PrecompiledAddressesBerlin    []common.Address
	PrecompiledAddressesIstanbul  []common.Address
	PrecompiledAddressesByzantium []common.Address
	PrecompiledAddressesHomestead []common.Address
)

func sortedAddresses(m map[common.Address]PrecompiledContract) []common.Address {
	addrs := make([]common.Address, 0, len(m))
	for k := range m {
		addrs = append(addrs, k)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})
	return addrs
}

func init() {
	PrecompiledAddressesHomestead = sortedAddresses(PrecompiledContractsHomestead)
	PrecompiledAddressesByzantium = sortedAddresses(PrecompiledContractsByzantium)
	PrecompiledAddressesIstanbul = sortedAddresses(PrecompiledContractsIstanbul)
	PrecompiledAddressesBerlin = sortedAddresses(PrecompiledContractsBerlin)
	PrecompiledAddressesCancun = sortedAddresses(PrecompiledContractsCancun)
}

// Precompiles returns the contract set active at the given revision. The
// returned map is shared and must not be mutated.
func Precompiles(rev params.Revision) map[common.Address]PrecompiledContract {
	switch {
	case rev >= params.Cancun:
		return PrecompiledContractsCancun
	case rev >= params.Berlin:
		return PrecompiledContractsBerlin
	case rev >= params.Istanbul:
		return PrecompiledContractsIstanbul
	case rev >= params.Byzantium:
		return PrecompiledContractsByzantium
	default:
		return PrecompiledContractsHomestead
	}
}

// ActivePrecompiles returns the addresses of the precompiles enabled at the
// given revision, in ascending address order.
func ActivePrecompiles(rev params.Revision) []common.Address {
	switch {
	case rev >= params.Cancun:
		return PrecompiledAddressesCancun
	case rev >= params.Berlin:
		return PrecompiledAddressesBerlin
	case rev >= params.Istanbul:
		return PrecompiledAddressesIstanbul
	case rev >= params.Byzantium:
		return PrecompiledAddressesByzantium
	default:
		return PrecompiledAddressesHomestead
	}
}

// IsPrecompile reports whether addr carries a precompiled contract at the
// given revision.
func IsPrecompile(rev params.Revision, addr common.Address) bool {
	_, ok := Precompiles(rev)[addr]
	return ok
}

// RunPrecompiledContract runs and evaluates the output of a precompiled
// contract. It returns
// - the returned bytes,
// - the gas consumed,
// - any error that occurred.
//
// The contract's required gas is charged before it runs. On any error the
// entire supplied gas is consumed.
func RunPrecompiledContract(p PrecompiledContract, input []byte, suppliedGas uint64) (ret []byte, gasUsed uint64, err error) {
	gasCost := p.RequiredGas(input)
	if suppliedGas < gasCost {
		return nil, suppliedGas, ErrOutOfGas
	}
	output, err := p.Run(input)
	if err != nil {
		return nil, suppliedGas, err
	}
	return output, gasCost, nil
}

// Run dispatches a call to the precompiled contract at addr under the given
// revision. ErrNotPrecompile is returned, with no gas consumed, when the
// address has no contract registered at that revision.
func Run(rev params.Revision, addr common.Address, input []byte, gasLimit uint64) (ret []byte, gasUsed uint64, err error) {
	p, ok := Precompiles(rev)[addr]
	if !ok {
		return nil, 0, ErrNotPrecompile
	}
	return RunPrecompiledContract(p, input, gasLimit)
}

func allZero(b []byte) bool {
	for _, byt := range b {
		if byt != 0 {
			return false
		}
	}
	return true
}

// ECRECOVER implemented as a native contract.
type ecrecover struct{}

func (c *ecrecover) RequiredGas(input []byte) uint64 {
	return params.EcrecoverGas
}

func (c *ecrecover) Run(input []byte) ([]byte, error) {
	const ecRecoverInputLength = 128

	input = common.RightPadBytes(input, ecRecoverInputLength)
	// "input" is (hash, v, r, s), each 32 bytes
	// but for ecrecover we want (r, s, v)

	r := new(big.Int).SetBytes(input[64:96])
	s := new(big.Int).SetBytes(input[96:128])
	v := input[63] - 27

	// tighter sig s values input homestead only apply to tx sigs
	if !allZero(input[32:63]) || !crypto.ValidateSignatureValues(v, r, s, false) {
		return nil, nil
	}
	// We must make sure not to modify the 'input', so placing the 'v' along with
	// the signature needs to be done on a new allocation
	sig := make([]byte, 65)
	copy(sig, input[64:128])
	sig[64] = v
	// v needs to be at the end for libsecp256k1
	pubKey, err := crypto.Ecrecover(input[:32], sig)
	// make sure the public key is a valid one
	if err != nil {
		return nil, nil
	}

	// the first byte of pubkey is bitcoin heritage
	return common.LeftPadBytes(crypto.Keccak256(pubKey[1:])[12:], 32), nil
}

// SHA256 implemented as a native contract.
type sha256hash struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
//
// This method does not require any overflow checking as the input size gas costs
// required for anything significant is so high it's impossible to pay for.
func (c *sha256hash) RequiredGas(input []byte) uint64 {
	return uint64(len(input)+31)/32*params.Sha256PerWordGas + params.Sha256BaseGas
}

func (c *sha256hash) Run(input []byte) ([]byte, error) {
	h := sha256.Sum256(input)
	return h[:], nil
}

// RIPEMD160 implemented as a native contract.
type ripemd160hash struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
//
// This method does not require any overflow checking as the input size gas costs
// required for anything significant is so high it's impossible to pay for.
func (c *ripemd160hash) RequiredGas(input []byte) uint64 {
	return uint64(len(input)+31)/32*params.Ripemd160PerWordGas + params.Ripemd160BaseGas
}

func (c *ripemd160hash) Run(input []byte) ([]byte, error) {
	ripemd := ripemd160.New()
	ripemd.Write(input)
	return common.LeftPadBytes(ripemd.Sum(nil), 32), nil
}

// data copy implemented as a native contract.
type dataCopy struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
//
// This method does not require any overflow checking as the input size gas costs
// required for anything significant is so high it's impossible to pay for.
func (c *dataCopy) RequiredGas(input []byte) uint64 {
	return uint64(len(input)+31)/32*params.IdentityPerWordGas + params.IdentityBaseGas
}

func (c *dataCopy) Run(in []byte) ([]byte, error) {
	return common.CopyBytes(in), nil
}

// bigModExp implements a native big integer exponential modular operation.
type bigModExp struct {
	eip2565 bool
}

var (
	big1      = big.NewInt(1)
	big4      = big.NewInt(4)
	big7      = big.NewInt(7)
	big8      = big.NewInt(8)
	big16     = big.NewInt(16)
	big32     = big.NewInt(32)
	big64     = big.NewInt(64)
	big96     = big.NewInt(96)
	big480    = big.NewInt(480)
	big1024   = big.NewInt(1024)
	big3072   = big.NewInt(3072)
	big199680 = big.NewInt(199680)
)

var errModExpLengthsOverflow = errors.New("modexp length header exceeds 64 bits")

func bigMax(x, y *big.Int) *big.Int {
	if x.Cmp(y) < 0 {
		return y
	}
	return x
}

// modexpMultComplexity implements the bigModExp multComplexity formula,
// as defined in EIP-198:
//
//	def mult_complexity(x):
//		if x <= 64: return x ** 2
//		elif x <= 1024: return x ** 2 // 4 + 96 * x - 3072
//		else: return x ** 2 // 16 + 480 * x - 199680
//
// where x is max(length_of_MODULUS, length_of_BASE)
func modexpMultComplexity(x *big.Int) *big.Int {
	switch {
	case x.Cmp(big64) <= 0:
		x.Mul(x, x) // x ** 2
	case x.Cmp(big1024) <= 0:
		// (x ** 2 // 4 ) + ( 96 * x - 3072)
		x = new(big.Int).Add(
			new(big.Int).Div(new(big.Int).Mul(x, x), big4),
			new(big.Int).Sub(new(big.Int).Mul(big96, x), big3072),
		)
	default:
		// (x ** 2 // 16) + (480 * x - 199680)
		x = new(big.Int).Add(
			new(big.Int).Div(new(big.Int).Mul(x, x), big16),
			new(big.Int).Sub(new(big.Int).Mul(big480, x), big199680),
		)
	}
	return x
}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bigModExp) RequiredGas(input []byte) uint64 {
	var (
		baseLen = new(big.Int).SetBytes(common.GetData(input, 0, 32))
		expLen  = new(big.Int).SetBytes(common.GetData(input, 32, 32))
		modLen  = new(big.Int).SetBytes(common.GetData(input, 64, 32))
	)
	if len(input) > 96 {
		input = input[96:]
	} else {
		input = input[:0]
	}
	// Retrieve the head 32 bytes of exp for the adjusted exponent length
	var expHead *big.Int
	if big.NewInt(int64(len(input))).Cmp(baseLen) <= 0 {
		expHead = new(big.Int)
	} else {
		if expLen.Cmp(big32) > 0 {
			expHead = new(big.Int).SetBytes(common.GetData(input, baseLen.Uint64(), 32))
		} else {
			expHead = new(big.Int).SetBytes(common.GetData(input, baseLen.Uint64(), expLen.Uint64()))
		}
	}
	// Calculate the adjusted exponent length
	var msb int
	if bitlen := expHead.BitLen(); bitlen > 0 {
		msb = bitlen - 1
	}
	adjExpLen := new(big.Int)
	if expLen.Cmp(big32) > 0 {
		adjExpLen.Sub(expLen, big32)
		adjExpLen.Mul(big8, adjExpLen)
	}
	adjExpLen.Add(adjExpLen, big.NewInt(int64(msb)))
	// Calculate the gas cost of the operation
	gas := new(big.Int).Set(bigMax(modLen, baseLen))
	if c.eip2565 {
		// EIP-2565 has three changes:
		// 1. Different multComplexity (inlined here):
		//
		// def mult_complexity(x):
		//    ceiling(x/8)^2
		//
		// where x is max(length_of_MODULUS, length_of_BASE)
		gas = gas.Add(gas, big7)
		gas = gas.Div(gas, big8)
		gas.Mul(gas, gas)

		gas.Mul(gas, bigMax(adjExpLen, big1))
		// 2. Different divisor (`GQUADDIVISOR`) (3)
		gas.Div(gas, new(big.Int).SetUint64(params.ModExpGquaddivisor))
		if gas.BitLen() > 64 {
			return math.MaxUint64
		}
		// 3. Minimum price of 200 gas
		if gas.Uint64() < params.ModExpMinGasEip2565 {
			return params.ModExpMinGasEip2565
		}
		return gas.Uint64()
	}
	gas = modexpMultComplexity(gas)
	gas.Mul(gas, bigMax(adjExpLen, big1))
	gas.Div(gas, new(big.Int).SetUint64(params.ModExpQuadCoeffDiv))

	if gas.BitLen() > 64 {
		return math.MaxUint64
	}
	return gas.Uint64()
}

func (c *bigModExp) Run(input []byte) ([]byte, error) {
	var (
		baseLenBig = new(big.Int).SetBytes(common.GetData(input, 0, 32))
		expLenBig  = new(big.Int).SetBytes(common.GetData(input, 32, 32))
		modLenBig  = new(big.Int).SetBytes(common.GetData(input, 64, 32))
	)
	// Length headers above 64 bits cannot be paid for; the gas formula has
	// already saturated, but a zero-length input reaches here with the
	// base cost so the headers still need a bound before use.
	if !baseLenBig.IsUint64() || !expLenBig.IsUint64() || !modLenBig.IsUint64() {
		return nil, errModExpLengthsOverflow
	}
	var (
		baseLen = baseLenBig.Uint64()
		expLen  = expLenBig.Uint64()
		modLen  = modLenBig.Uint64()
	)
	if len(input) > 96 {
		input = input[96:]
	} else {
		input = input[:0]
	}
	// Modulus of length zero produces an empty output whatever the base
	// and exponent say
	if modLen == 0 {
		return []byte{}, nil
	}
	// Retrieve the operands and execute the exponentiation
	var (
		base = new(big.Int).SetBytes(common.GetData(input, 0, baseLen))
		exp  = new(big.Int).SetBytes(common.GetData(input, baseLen, expLen))
		mod  = new(big.Int).SetBytes(common.GetData(input, baseLen+expLen, modLen))
		v    []byte
	)
	switch {
	case mod.BitLen() == 0:
		// Modulo 0 is undefined, return zero
		return common.LeftPadBytes([]byte{}, int(modLen)), nil
	case base.BitLen() == 1: // a bit length of 1 means it's 1 (or -1).
		// If base == 1, then we can just return base % mod (if mod >= 1, which it is)
		v = base.Mod(base, mod).Bytes()
	default:
		v = base.Exp(base, exp, mod).Bytes()
	}
	return common.LeftPadBytes(v, int(modLen)), nil
}

// runBn254Add implements the bn254Add precompile, referenced by both
// Byzantium and Istanbul operations.
func runBn254Add(input []byte) ([]byte, error) {
	x, err := bn254.UnmarshalG1(common.GetData(input, 0, 64))
	if err != nil {
		return nil, err
	}
	y, err := bn254.UnmarshalG1(common.GetData(input, 64, 64))
	if err != nil {
		return nil, err
	}
	return bn254.MarshalG1(bn254.Add(x, y)), nil
}

// bn254AddIstanbul implements a native elliptic curve point addition
// conforming to Istanbul consensus rules.
type bn254AddIstanbul struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bn254AddIstanbul) RequiredGas(input []byte) uint64 {
	return params.Bn254AddGasIstanbul
}

func (c *bn254AddIstanbul) Run(input []byte) ([]byte, error) {
	return runBn254Add(input)
}

// bn254AddByzantium implements a native elliptic curve point addition
// conforming to Byzantium consensus rules.
type bn254AddByzantium struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bn254AddByzantium) RequiredGas(input []byte) uint64 {
	return params.Bn254AddGasByzantium
}

func (c *bn254AddByzantium) Run(input []byte) ([]byte, error) {
	return runBn254Add(input)
}

// runBn254ScalarMul implements the bn254ScalarMul precompile, referenced
// by both Byzantium and Istanbul operations.
func runBn254ScalarMul(input []byte) ([]byte, error) {
	p, err := bn254.UnmarshalG1(common.GetData(input, 0, 64))
	if err != nil {
		return nil, err
	}
	k := new(uint256.Int).SetBytes(common.GetData(input, 64, 32))
	return bn254.MarshalG1(bn254.ScalarMul(p, k.ToBig())), nil
}

// bn254ScalarMulIstanbul implements a native elliptic curve scalar
// multiplication conforming to Istanbul consensus rules.
type bn254ScalarMulIstanbul struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bn254ScalarMulIstanbul) RequiredGas(input []byte) uint64 {
	return params.Bn254ScalarMulGasIstanbul
}

func (c *bn254ScalarMulIstanbul) Run(input []byte) ([]byte, error) {
	return runBn254ScalarMul(input)
}

// bn254ScalarMulByzantium implements a native elliptic curve scalar
// multiplication conforming to Byzantium consensus rules.
type bn254ScalarMulByzantium struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bn254ScalarMulByzantium) RequiredGas(input []byte) uint64 {
	return params.Bn254ScalarMulGasByzantium
}

func (c *bn254ScalarMulByzantium) Run(input []byte) ([]byte, error) {
	return runBn254ScalarMul(input)
}

var (
	// true32Byte is returned if the bn254 pairing check succeeds.
	true32Byte = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}

	// false32Byte is returned if the bn254 pairing check fails.
	false32Byte = make([]byte, 32)

	// errBadPairingInput is returned if the bn254 pairing input is invalid.
	errBadPairingInput = errors.New("bad elliptic curve pairing size")
)

// runBn254Pairing implements the bn254Pairing precompile, referenced by
// both Byzantium and Istanbul operations.
func runBn254Pairing(input []byte) ([]byte, error) {
	// Handle some corner cases cheaply
	if len(input)%192 > 0 {
		return nil, errBadPairingInput
	}
	// Convert the input into a set of coordinates
	var (
		cs []bn254.G1
		ts []bn254.G2
	)
	for i := 0; i < len(input); i += 192 {
		c, err := bn254.UnmarshalG1(input[i : i+64])
		if err != nil {
			return nil, err
		}
		t, err := bn254.UnmarshalG2(input[i+64 : i+192])
		if err != nil {
			return nil, err
		}
		cs = append(cs, *c)
		ts = append(ts, *t)
	}
	// Execute the pairing checks and return the results
	ok, err := bn254.PairingCheck(cs, ts)
	if err != nil {
		return nil, err
	}
	if ok {
		return true32Byte, nil
	}
	return false32Byte, nil
}

// bn254PairingIstanbul implements a pairing pre-compile for the bn254
// curve conforming to Istanbul consensus rules.
type bn254PairingIstanbul struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bn254PairingIstanbul) RequiredGas(input []byte) uint64 {
	return params.Bn254PairingBaseGasIstanbul + uint64(len(input)/192)*params.Bn254PairingPerPointGasIstanbul
}

func (c *bn254PairingIstanbul) Run(input []byte) ([]byte, error) {
	return runBn254Pairing(input)
}

// bn254PairingByzantium implements a pairing pre-compile for the bn254
// curve conforming to Byzantium consensus rules.
type bn254PairingByzantium struct{}

// RequiredGas returns the gas required to execute the pre-compiled contract.
func (c *bn254PairingByzantium) RequiredGas(input []byte) uint64 {
	return params.Bn254PairingBaseGasByzantium + uint64(len(input)/192)*params.Bn254PairingPerPointGasByzantium
}

func (c *bn254PairingByzantium) Run(input []byte) ([]byte, error) {
	return runBn254Pairing(input)
}

type blake2F struct{}

const (
	blake2FInputLength        = 213
	blake2FFinalBlockBytes    = byte(1)
	blake2FNonFinalBlockBytes = byte(0)
)

var (
	errBlake2FInvalidInputLength = errors.New("invalid input length")
	errBlake2FInvalidFinalFlag   = errors.New("invalid final flag")
)

func (c *blake2F) RequiredGas(input []byte) uint64 {
	// If the input is malformed, we can't calculate the gas, return 0 and let the
	// actual call choke and fault.
	if len(input) != blake2FInputLength {
		return 0
	}
	return uint64(binary.BigEndian.Uint32(input[0:4]))
}

func (c *blake2F) Run(input []byte) ([]byte, error) {
	// Make sure the input is valid (correct length and final flag)
	if len(input) != blake2FInputLength {
		return nil, errBlake2FInvalidInputLength
	}
	if input[212] != blake2FNonFinalBlockBytes && input[212] != blake2FFinalBlockBytes {
		return nil, errBlake2FInvalidFinalFlag
	}
	// Parse the input into the Blake2b call parameters
	var (
		rounds = binary.BigEndian.Uint32(input[0:4])
		final  = input[212] == blake2FFinalBlockBytes

		h [8]uint64
		m [16]uint64
		t [2]uint64
	)
	for i := 0; i < 8; i++ {
		offset := 4 + i*8
		h[i] = binary.LittleEndian.Uint64(input[offset : offset+8])
	}
	for i := 0; i < 16; i++ {
		offset := 68 + i*8
		m[i] = binary.LittleEndian.Uint64(input[offset : offset+8])
	}
	t[0] = binary.LittleEndian.Uint64(input[196:204])
	t[1] = binary.LittleEndian.Uint64(input[204:212])

	// Execute the compression function, extract and return the result
	blake2b.F(&h, m, t, final, rounds)

	output := make([]byte, 64)
	for i := 0; i < 8; i++ {
		offset := i * 8
		binary.LittleEndian.PutUint64(output[offset:offset+8], h[i])
	}
	return output, nil
}

// pointEvaluation implements the EIP-4844 point evaluation precompile.
type pointEvaluation struct{}

// RequiredGas estimates the gas required for running the point evaluation
// precompile.
func (c *pointEvaluation) RequiredGas(input []byte) uint64 {
	return params.PointEvaluationGas
}

func (c *pointEvaluation) Run(input []byte) ([]byte, error) {
	return kzg.PointEvaluationPrecompile(input)
}
