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

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/erigontech/evm-precompiles/common"
	"github.com/erigontech/evm-precompiles/params"
	"github.com/erigontech/evm-precompiles/precompiles"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Execute a single precompiled contract",
	Long: `Executes the precompiled contract at the given address over hex input
and prints the output as hex on stdout.`,
	RunE: runPrecompile,
}

func init() {
	runCmd.Flags().String("address", "", "contract address (e.g. 0x01)")
	runCmd.Flags().String("revision", "Cancun", "protocol revision")
	runCmd.Flags().String("input", "", "call data as a hex string")
	runCmd.Flags().String("input-file", "", "file holding the call data as hex")
	runCmd.Flags().Uint64("gas", math.MaxUint64, "gas limit for the call")
}

func runPrecompile(cmd *cobra.Command, args []string) error {
	addrHex, _ := cmd.Flags().GetString("address")
	if addrHex == "" {
		return errors.New("--address flag is required")
	}
	revName, _ := cmd.Flags().GetString("revision")
	inputHex, _ := cmd.Flags().GetString("input")
	inputFile, _ := cmd.Flags().GetString("input-file")
	gas, _ := cmd.Flags().GetUint64("gas")

	rev, err := params.ParseRevision(revName)
	if err != nil {
		return err
	}
	if inputFile != "" {
		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		inputHex = strings.TrimSpace(string(raw))
	}
	input := common.FromHex(inputHex)
	addr := common.HexToAddress(addrHex)

	log.Debug().
		Stringer("revision", rev).
		Str("address", addr.Hex()).
		Int("input_len", len(input)).
		Uint64("gas", gas).
		Msg("running precompile")

	out, gasUsed, err := precompiles.Run(rev, addr, input, gas)
	if err != nil {
		if errors.Is(err, precompiles.ErrNotPrecompile) {
			return fmt.Errorf("no precompile at %s for revision %s", addr.Hex(), rev)
		}
		return err
	}

	log.Info().Uint64("gas_used", gasUsed).Int("output_len", len(out)).Msg("done")
	fmt.Println("0x" + common.Bytes2Hex(out))
	return nil
}
