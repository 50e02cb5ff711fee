// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command oeis prints, for every n in a range, the size of the symmetric
// group on n elements as built and counted through the permutation layer
// (spec.md §6: "External driver CLIs ... accept an inclusive integer range
// lo...hi"). It is an OEIS A000142 (factorial) table, used as a sanity
// check that ConstructAllPermutations/NumberSolutions agree with n!.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dalzilio/polydd"
	"github.com/dalzilio/polydd/cmd/rangeflag"
)

func main() {
	var rng string
	root := &cobra.Command{
		Use:   "oeis",
		Short: "print |S_n| for n in a range, built through the permutation layer",
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, hi, err := rangeflag.Parse(rng)
			if err != nil {
				return err
			}
			for n := lo; n <= hi; n++ {
				if n < 2 {
					fmt.Printf("%d\t%d\n", n, 1)
					continue
				}
				pf, err := polydd.NewPermFactory(n, polydd.Swap)
				if err != nil {
					return err
				}
				all := pf.ConstructAllPermutations()
				count := pf.NumberSolutions(all, polydd.ScalarCount(0))
				fmt.Printf("%d\t%d\n", n, count)
			}
			return nil
		},
	}
	root.Flags().StringVarP(&rng, "range", "r", "1...6", "inclusive range lo...hi or a single integer")
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
