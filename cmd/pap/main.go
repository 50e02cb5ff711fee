// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command pap (pattern-avoiding permutations) counts, for every n in a
// range, the permutations of {1..n} that avoid a given classical pattern
// (spec.md §6: "for the PAP driver, a pattern as comma-separated digits
// 1,3,2,4 or a bare digit string 1324").
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dalzilio/polydd"
	"github.com/dalzilio/polydd/cmd/rangeflag"
)

func factorial(n int) uint64 {
	r := uint64(1)
	for i := 2; i <= n; i++ {
		r *= uint64(i)
	}
	return r
}

func main() {
	var rng, patternFlag string
	root := &cobra.Command{
		Use:   "pap",
		Short: "count permutations avoiding a pattern, for n in a range",
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, hi, err := rangeflag.Parse(rng)
			if err != nil {
				return err
			}
			pattern, err := rangeflag.ParsePattern(patternFlag)
			if err != nil {
				return err
			}
			for n := lo; n <= hi; n++ {
				if n < 2 {
					fmt.Printf("%d\t%d\n", n, factorial(n))
					continue
				}
				pf, err := polydd.NewPermFactory(n, polydd.LeftRotation)
				if err != nil {
					return err
				}
				containing, err := pf.ContainingPattern(pattern)
				if err != nil {
					return err
				}
				containingCount, ok := pf.NumberSolutions(containing, polydd.ScalarCount(0)).(polydd.ScalarCount)
				if !ok {
					return fmt.Errorf("pap: unexpected generating function result type")
				}
				avoiding := factorial(n) - uint64(containingCount)
				fmt.Printf("%d\t%d\n", n, avoiding)
			}
			return nil
		},
	}
	root.Flags().StringVarP(&rng, "range", "r", "1...8", "inclusive range lo...hi or a single integer")
	root.Flags().StringVarP(&patternFlag, "pattern", "p", "1,3,2", "pattern as comma-separated digits or a bare digit string")
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
