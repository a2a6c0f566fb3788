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
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/erigontech/evm-precompiles/common"
	"github.com/erigontech/evm-precompiles/params"
	"github.com/erigontech/evm-precompiles/precompiles"
)

var vectorsCmd = &cobra.Command{
	Use:   "vectors",
	Args:  cobra.NoArgs,
	Short: "Replay a JSON vector file against a precompiled contract",
	Long: `Loads a JSON vector file of {Input, Expected, Gas, Name} entries and runs
each input through the precompiled contract at the given address, checking
output and gas against the expectations.`,
	RunE: replayVectors,
}

func init() {
	vectorsCmd.Flags().String("file", "", "path to the JSON vector file")
	vectorsCmd.Flags().String("address", "", "contract address (e.g. 0x08)")
	vectorsCmd.Flags().String("revision", "Cancun", "protocol revision")
}

type vector struct {
	Input    string
	Expected string
	Gas      uint64
	Name     string
}

func replayVectors(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		return errors.New("--file flag is required")
	}
	addrHex, _ := cmd.Flags().GetString("address")
	if addrHex == "" {
		return errors.New("--address flag is required")
	}
	revName, _ := cmd.Flags().GetString("revision")

	rev, err := params.ParseRevision(revName)
	if err != nil {
		return err
	}
	addr := common.HexToAddress(addrHex)

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read vector file: %w", err)
	}
	var vectors []vector
	if err := json.Unmarshal(data, &vectors); err != nil {
		return fmt.Errorf("failed to parse vector file: %w", err)
	}

	failed := 0
	for _, v := range vectors {
		in := common.Hex2Bytes(v.Input)
		out, gasUsed, err := precompiles.Run(rev, addr, in, v.Gas)
		switch {
		case err != nil:
			log.Error().Str("name", v.Name).Err(err).Msg("FAIL")
			failed++
		case common.Bytes2Hex(out) != v.Expected:
			log.Error().Str("name", v.Name).
				Str("want", v.Expected).
				Str("got", common.Bytes2Hex(out)).
				Msg("FAIL: output mismatch")
			failed++
		case gasUsed != v.Gas:
			log.Error().Str("name", v.Name).
				Uint64("want", v.Gas).
				Uint64("got", gasUsed).
				Msg("FAIL: gas mismatch")
			failed++
		default:
			log.Info().Str("name", v.Name).Uint64("gas", gasUsed).Msg("ok")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d vectors failed", failed, len(vectors))
	}
	log.Info().Int("count", len(vectors)).Msg("all vectors passed")
	return nil
}
