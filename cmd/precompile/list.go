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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erigontech/evm-precompiles/params"
	"github.com/erigontech/evm-precompiles/precompiles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "List the precompiles active at each protocol revision",
	RunE: func(cmd *cobra.Command, args []string) error {
		revName, _ := cmd.Flags().GetString("revision")
		if revName != "" {
			rev, err := params.ParseRevision(revName)
			if err != nil {
				return err
			}
			printRevision(rev)
			return nil
		}
		for _, rev := range params.Revisions {
			printRevision(rev)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("revision", "", "limit output to one revision")
}

func printRevision(rev params.Revision) {
	addrs := precompiles.ActivePrecompiles(rev)
	fmt.Printf("%s (%d):\n", rev, len(addrs))
	for _, addr := range addrs {
		fmt.Printf("  %s\n", addr.Hex())
	}
}
