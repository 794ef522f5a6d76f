package rational_test

import (
	"fmt"
	"math"

	"github.com/QuangTung97/rational"
)

func ExampleNew() {
	fmt.Println(rational.New(2, 4))
	fmt.Println(rational.New(7, -19))
	// Output:
	// 1/2
	// -7/19
}

func ExampleTry() {
	_, err := rational.Try(1, 0)
	fmt.Println(err)
	// Output: rational: denominator is zero
}

func ExampleRational_Add() {
	x := rational.New(57, 12)
	y := rational.New(7, -19)
	fmt.Println(x.Add(y))
	// Output: 333/76
}

func ExampleRational_Inverse() {
	inv, _ := rational.New(5, 992).Inverse()
	fmt.Println(inv)

	_, err := rational.Rational{}.Inverse()
	fmt.Println(err)
	// Output:
	// 992/5
	// rational: inverse of zero
}

func ExampleRational_AddWithOverflow() {
	r, overflow := rational.NewFromInt(math.MaxInt64).AddWithOverflow(rational.NewFromInt(1))
	fmt.Println(r, overflow)
	// Output: -9223372036854775808/1 true
}

func ExampleTryFromFloat() {
	r, _ := rational.TryFromFloat(12.375)
	fmt.Println(r)
	// Output: 99/8
}
