package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MoodyShoo/simple-calculator/internal/form"
	"github.com/MoodyShoo/simple-calculator/pkg/calculation"
)

func newRootCmd() *cobra.Command {
	var fixed bool

	root := &cobra.Command{
		Use:   "calc <operation> <first> <second>",
		Short: "Apply add, subtract, multiply or divide to two numbers",
		Example: "  calc add 4 5\n" +
			"  calc / 10 4\n" +
			"  calc --fixed divide 10 3",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := calculation.ParseOperation(args[0])
			if err != nil {
				return err
			}

			result, err := calculation.Calculate(op, args[1], args[2])
			if err != nil {
				return errors.New(form.ErrorText(err))
			}

			if fixed {
				fmt.Fprintln(cmd.OutOrStdout(), calculation.FormatResult(result))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), calculation.FormatPrecise(result))
			}
			return nil
		},
	}

	// Отрицательные числа не должны разбираться как флаги.
	root.Flags().SetInterspersed(false)
	root.Flags().BoolVar(&fixed, "fixed", false, "round the result to 2 decimal places")

	root.AddCommand(&cobra.Command{
		Use:   "operations",
		Short: "List supported operations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, op := range calculation.Operations() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", op, op.Symbol())
			}
		},
	})

	return root
}
