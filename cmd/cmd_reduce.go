// cmd_reduce.go - Reduce und All Commands
// Hauptfunktionen: ReduceHandler, AllHandler, parseInput
package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/7blacky7/ndreduce/ml"
	"github.com/7blacky7/ndreduce/ml/reduce"
)

// parseShape - Zerlegt "2,3" in Dimensionen
func parseShape(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var dims []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid dimension %q in shape %q", part, s)
		}
		dims = append(dims, n)
	}

	return dims, nil
}

// parseInput - Baut aus Flags und Werten ein Array
func parseInput(cmd *cobra.Command, args []string) (*ml.Array, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values[i] = v
	}

	shape, _ := cmd.Flags().GetString("shape")
	dims, err := parseShape(shape)
	if err != nil {
		return nil, err
	}
	if dims == nil {
		dims = []int{len(values)}
	}

	name, _ := cmd.Flags().GetString("dtype")
	dtype, err := ml.ParseDType(name)
	if err != nil {
		return nil, err
	}

	a, err := ml.FromSlice(values, dims...)
	if err != nil {
		return nil, err
	}

	if dtype == ml.DTypeFloat64 {
		return a, nil
	}
	return a.AsType(dtype)
}

// reduceOptions - Uebersetzt Flags in Engine-Optionen
func reduceOptions(cmd *cobra.Command) ([]reduce.Option, error) {
	var opts []reduce.Option

	if cmd.Flags().Changed("axis") {
		axis, _ := cmd.Flags().GetInt("axis")
		opts = append(opts, reduce.WithAxis(axis))
	}

	if keep, _ := cmd.Flags().GetBool("keepdims"); keep {
		opts = append(opts, reduce.WithKeepDims())
	}

	if ddof, _ := cmd.Flags().GetInt("ddof"); ddof != 0 {
		opts = append(opts, reduce.WithDDof(ddof))
	}

	if f := cmd.Flags().Lookup("out"); f != nil && f.Value.String() != "" {
		dtype, err := ml.ParseDType(f.Value.String())
		if err != nil {
			return nil, err
		}
		opts = append(opts, reduce.WithDType(dtype))
	}

	return opts, nil
}

// ReduceHandler - Wendet einen Operator an und gibt das Ergebnis aus
func ReduceHandler(cmd *cobra.Command, args []string) error {
	op, err := reduce.Lookup(args[0])
	if err != nil {
		return err
	}

	a, err := parseInput(cmd, args[1:])
	if err != nil {
		return err
	}

	opts, err := reduceOptions(cmd)
	if err != nil {
		return err
	}

	res, err := op.Reduce(a, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ml.Dump(res))
	return nil
}

// AllHandler - Wendet alle Operatoren parallel an und gibt eine Tabelle aus
func AllHandler(cmd *cobra.Command, args []string) error {
	a, err := parseInput(cmd, args)
	if err != nil {
		return err
	}

	opts, err := reduceOptions(cmd)
	if err != nil {
		return err
	}

	ops := reduce.Operators()
	data := make([][]string, len(ops))

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, op := range ops {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := op.Reduce(a, opts...)
			switch {
			case errors.Is(err, ml.ErrUnsupportedType):
				data[i] = []string{op.Name, "-", "-", "-"}
				return nil
			case err != nil:
				return fmt.Errorf("%s: %w", op.Name, err)
			}

			data[i] = []string{op.Name, res.DType().String(), res.Shape().String(), ml.Dump(res)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	renderTable(cmd.OutOrStdout(), []string{"OP", "DTYPE", "SHAPE", "RESULT"}, data)

	return nil
}
