package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yelhousni/montgomery-m61/curve"
	"github.com/yelhousni/montgomery-m61/fp"
)

const (
	formatDecimal = "decimal"
	formatLimbs   = "limbs"
	formatBinary  = "binary"
)

func (a *app) format(e fp.Element) (string, error) {
	switch f := a.config.GetString("output.format"); f {
	case "", formatDecimal:
		return e.String(), nil
	case formatLimbs:
		return e.LimbString(), nil
	case formatBinary:
		return e.BinaryString(), nil
	default:
		return "", errors.Errorf("unknown output format %q", f)
	}
}

func (a *app) printElement(w io.Writer, label string, e fp.Element) error {
	s, err := a.format(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s %s\n", label, s)
	return err
}

func parseElement(name, s string) (fp.Element, error) {
	var e fp.Element
	if _, err := e.SetString(s); err != nil {
		return fp.Element{}, errors.WithMessage(err, name)
	}
	return e, nil
}

func (a *app) paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the m61 curve parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := curve.Default()
			gx, gy := c.GeneratorAffine()
			w := cmd.OutOrStdout()
			for _, e := range []struct {
				label string
				v     fp.Element
			}{
				{"p", fp.Prime()},
				{"A", c.A()},
				{"B", c.B()},
				{"(A+2)/4", c.A24()},
				{"Gx", gx},
				{"Gy", gy},
			} {
				if err := a.printElement(w, e.label, e.v); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w, "order %d\n", c.Order())
			return err
		},
	}
}

// fieldOps maps each field operation to its number of operands.
var fieldOps = map[string]int{
	"add":    2,
	"sub":    2,
	"mul":    2,
	"exp":    2,
	"neg":    1,
	"square": 1,
	"inv":    1,
}

func (a *app) fieldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "field OP X [Y]",
		Short: "Evaluate a field operation (add, sub, mul, neg, square, inv, exp)",
		Long: "Evaluate a field operation on decimal operands reduced mod 2^61 - 1. " +
			"add, sub and mul take two operands, neg, square and inv take one, " +
			"exp takes an element and an unsigned 64-bit exponent.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			x, err := parseElement("X", args[1])
			if err != nil {
				return err
			}

			arity, ok := fieldOps[op]
			if !ok {
				return errors.Errorf("unknown field operation %q", op)
			}
			if len(args)-1 != arity {
				return errors.Errorf("%s takes %d operand(s), got %d", op, arity, len(args)-1)
			}

			var z fp.Element
			switch op {
			case "neg":
				z.Neg(&x)
			case "square":
				z.Square(&x)
			case "inv":
				z.Inverse(&x)
			case "exp":
				e, err := strconv.ParseUint(args[2], 10, 64)
				if err != nil {
					return errors.Wrap(err, "exponent")
				}
				z.Exp(&x, e)
			case "add", "sub", "mul":
				y, err := parseElement("Y", args[2])
				if err != nil {
					return err
				}
				switch op {
				case "add":
					z.Add(&x, &y)
				case "sub":
					z.Sub(&x, &y)
				default:
					z.Mul(&x, &y)
				}
			}

			a.logger.Debug("field operation", zap.String("op", op), zap.Stringer("x", x), zap.Stringer("result", z))
			return a.printElement(cmd.OutOrStdout(), op, z)
		},
	}
}

func (a *app) ladderCmd() *cobra.Command {
	var projective bool
	cmd := &cobra.Command{
		Use:   "ladder K [X]",
		Short: "Compute x([K]P) with the Montgomery ladder, P = (X:1) or the generator",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := curve.Default()
			k, err := parseElement("K", args[0])
			if err != nil {
				return err
			}
			p := c.Generator()
			if len(args) == 2 {
				x, err := parseElement("X", args[1])
				if err != nil {
					return err
				}
				p = curve.NewPointXZ(x)
			}

			r, err := c.ScalarMultiplication(&p, &k)
			if err != nil {
				return err
			}
			a.logger.Info("scalar multiplication", zap.Stringer("k", k), zap.Stringer("x", p.X), zap.Bool("infinity", r.IsInfinity()))

			w := cmd.OutOrStdout()
			if projective {
				if err := a.printElement(w, "X", r.X); err != nil {
					return err
				}
				if err := a.printElement(w, "Z", r.Z); err != nil {
					return err
				}
			}
			if r.IsInfinity() {
				_, err := fmt.Fprintln(w, "x infinity")
				return err
			}
			x, err := r.AffineX()
			if err != nil {
				return err
			}
			return a.printElement(w, "x", x)
		},
	}
	cmd.Flags().BoolVar(&projective, "projective", false, "also print the projective (X:Z) result")
	return cmd
}

// demoCmd prints the sample computation the project started from.
func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print sample field and ladder computations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := curve.Default()
			x := fp.Element{High: 1 << 28, Low: 1 << 30}
			y := fp.Element{High: 1 << 28, Low: 1 << 30}
			n := fp.Element{High: 1 << 29, Low: 1 << 30}

			var sum, diff, prod, pow fp.Element
			sum.Add(&x, &y)
			diff.Sub(&sum, &y)
			prod.Mul(&x, &y)
			pow.Exp(&x, y.Uint64())

			g := c.Generator()
			gn, err := c.ScalarMultiplication(&g, &n)
			if err != nil {
				return err
			}
			gnx, err := gn.AffineX()
			if err != nil {
				return err
			}

			// Q = (Gx : a) is not normalised, its affine x is Gx/a.
			q := curve.PointXZ{X: g.X, Z: x}
			r, err := c.ScalarMultiplication(&q, &n)
			if err != nil {
				return err
			}
			rx, err := r.AffineX()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, e := range []struct {
				label string
				v     fp.Element
			}{
				{"a", x},
				{"b", y},
				{"n", n},
				{"add(a,b)", sum},
				{"sub(a+b,b)", diff},
				{"mul(a,b)", prod},
				{"exp(a,b)", pow},
				{"x([n]G)", gnx},
				{"Q.X", q.X},
				{"Q.Z", q.Z},
				{"ladder(Q,n).X", r.X},
				{"ladder(Q,n).Z", r.Z},
				{"x([n]Q)", rx},
			} {
				if err := a.printElement(w, e.label, e.v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
