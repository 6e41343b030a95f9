package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bpsgateway/internal/money"
	"bpsgateway/internal/percent"
)

func (a *app) ofCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "of VALUE BPS",
		Short:   "floor(VALUE * BPS / 10000)",
		Example: "  bpscalc of 1000 500\n  bpscalc of 1000 5%",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, bps, err := amountAndBPS(args[0], args[1])
			if err != nil {
				return err
			}
			res, err := percent.Of(value, bps)
			if err != nil {
				return err
			}
			a.log.Debug().Stringer("value", value).Stringer("bps", bps).Stringer("result", res).Msg("of")
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (a *app) stepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps VALUE BPS",
		Short: "Show the product, quotient and result of a percentage calculation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, bps, err := amountAndBPS(args[0], args[1])
			if err != nil {
				return err
			}
			s, err := percent.OfWithSteps(value, bps)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "product:  %d\n", s.Product)
			fmt.Fprintf(out, "quotient: %d\n", s.Quotient)
			fmt.Fprintf(out, "result:   %d\n", s.Result)
			return nil
		},
	}
}

func (a *app) precisionCmd() *cobra.Command {
	var factor uint64
	cmd := &cobra.Command{
		Use:   "precision VALUE BPS",
		Short: "Percentage derived through a scaled intermediate (same result as 'of')",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, bps, err := amountAndBPS(args[0], args[1])
			if err != nil {
				return err
			}
			res, err := percent.OfWithPrecision(value, bps, factor)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&factor, "factor", 100, "Precision factor (must be nonzero)")
	return cmd
}

func (a *app) whatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "what PART WHOLE",
		Short: "PART as basis points of WHOLE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := money.ParseAmount(args[0])
			if err != nil {
				return err
			}
			whole, err := money.ParseAmount(args[1])
			if err != nil {
				return err
			}
			bps, err := percent.WhatPercentage(part, whole)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d bps (%s)\n", bps, bps.Percent())
			return nil
		},
	}
}

func (a *app) compoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compound VALUE BPS ITERATIONS",
		Short: "Apply BPS growth to VALUE ITERATIONS times",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, bps, err := amountAndBPS(args[0], args[1])
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid iterations %q", args[2])
			}
			if n > uint64(a.cfg.MaxCompoundIterations) {
				return fmt.Errorf("iterations must be at most %d", a.cfg.MaxCompoundIterations)
			}
			res, err := percent.Compound(value, bps, uint(n))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff VALUE1 VALUE2",
		Short: "Change from VALUE2 (the base) to VALUE1 in basis points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v1, err := money.ParseAmount(args[0])
			if err != nil {
				return err
			}
			v2, err := money.ParseAmount(args[1])
			if err != nil {
				return err
			}
			bps, increase, err := percent.Diff(v1, v2)
			if err != nil {
				return err
			}
			dir := "increase"
			if !increase {
				dir = "decrease"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d bps (%s) %s\n", bps, bps.Percent(), dir)
			return nil
		},
	}
}

func amountAndBPS(v, b string) (money.Amount, money.BasisPoints, error) {
	value, err := money.ParseAmount(v)
	if err != nil {
		return 0, 0, err
	}
	bps, err := money.ParseBasisPoints(b)
	if err != nil {
		return 0, 0, err
	}
	return value, bps, nil
}
