package main

import (
	"fmt"

	"github.com/QuangTung97/rational"
	"github.com/urfave/cli/v2"
)

var opSymbols = map[string]string{
	"add": "+",
	"sub": "-",
	"mul": "*",
	"div": "/",
}

func demoCmd(c *cli.Context) error {
	w := c.App.Writer

	r1 := rational.NewFromInt(15)
	r2 := rational.New(152, 71)
	r3 := rational.NewFromFloat(1.159282)
	fmt.Fprintln(w, "Rationals can be constructed from integers, floats, or as fractions:")
	fmt.Fprintf(w, "r1 is %s, r2 is %s, r3 is %s\n", r1, r2, r3)

	r4, r5 := rational.New(1, 2), rational.New(1, 2)
	r6, r7 := rational.New(2, 3), rational.New(7, 9)
	fmt.Fprintln(w, "\nRationals can be compared:")
	fmt.Fprintf(w, "%s == %s? %t\n", r4, r5, r4.Equal(r5))
	fmt.Fprintf(w, "%s < %s < %s? %t\n", r5, r6, r7, r5.Less(r6) && r6.Less(r7))

	r8, r9 := rational.New(57, 12), rational.New(7, -19)
	fmt.Fprintln(w, "\nDo math with rationals:")
	fmt.Fprintf(w, "%s + %s = %s\n", r8, r9, r8.Add(r9))
	fmt.Fprintf(w, "%s - %s = %s\n", r8, r9, r8.Sub(r9))
	fmt.Fprintf(w, "%s * %s = %s\n", r8, r9, r8.Mul(r9))
	fmt.Fprintf(w, "%s / %s = %s\n", r8, r9, r8.Div(r9))

	r10 := rational.New(5, 992)
	inv, err := r10.Inverse()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nDo more math with rationals:")
	fmt.Fprintf(w, "-(%s) = %s\n", r10, r10.Neg())
	fmt.Fprintf(w, "(%s)^-1 = %s\n", r10, inv)

	r11 := rational.New(6, 129)
	fmt.Fprintln(w, "\nTurn rationals back into other numeric types:")
	fmt.Fprintf(w, "%s has a numerator of %d, denominator of %d\n", r11, r11.Numerator(), r11.Denominator())
	fmt.Fprintf(w, "%s's floating-point value is %v\n", r11, r11.Float64())
	fmt.Fprintf(w, "%s's decimal value is %s\n", r11, r11.Decimal())
	return nil
}

func calcCmd(c *cli.Context) error {
	a, err := rational.Try(c.Int64("a-num"), c.Int64("a-den"))
	if err != nil {
		return fmt.Errorf("a: %w", err)
	}
	b, err := rational.Try(c.Int64("b-num"), c.Int64("b-den"))
	if err != nil {
		return fmt.Errorf("b: %w", err)
	}

	op := c.String("op")
	symbol, ok := opSymbols[op]
	if !ok {
		return fmt.Errorf("unknown operator %q", op)
	}
	if op == "div" && b.IsZero() {
		return rational.ErrUndefinedInverse
	}

	w := c.App.Writer
	if c.Bool("checked") {
		result, overflow := calcWithOverflow(op, a, b)
		fmt.Fprintf(w, "%s %s %s = %s\n", a, symbol, b, result)
		fmt.Fprintf(w, "overflow: %t\n", overflow)
		return nil
	}

	var result rational.Rational
	switch op {
	case "add":
		result = a.Add(b)
	case "sub":
		result = a.Sub(b)
	case "mul":
		result = a.Mul(b)
	case "div":
		result, err = a.TryDiv(b)
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%s %s %s = %s\n", a, symbol, b, result)
	return nil
}

func calcWithOverflow(op string, a, b rational.Rational) (rational.Rational, bool) {
	switch op {
	case "add":
		return a.AddWithOverflow(b)
	case "sub":
		return a.SubWithOverflow(b)
	case "mul":
		return a.MulWithOverflow(b)
	default:
		return a.DivWithOverflow(b)
	}
}

func floatCmd(c *cli.Context) error {
	v := c.Float64("value")
	r, err := rational.TryFromFloat(v)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%g -> %s\n", v, r)
	fmt.Fprintf(w, "decimal: %s\n", r.Decimal().StringFixed(int32(c.Int("places"))))
	return nil
}
