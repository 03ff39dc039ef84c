package bigint_test

import (
	"fmt"

	"github.com/agbru/bigcalc/internal/bigint"
)

func ExampleParseDecimal() {
	x, _ := bigint.ParseDecimal("141568561781325403383098860354483467178")
	y, _ := bigint.ParseDecimal("144612517754537690773054331955552575159")
	fmt.Println(bigint.Mul(x, y))
	// Output:
	// 20472586154086285871813986416465847334330107130741145019054056571228754631302
}

func ExamplePow() {
	p, _ := bigint.Pow(bigint.FromInt64(2), 100)
	fmt.Println(p)
	// Output:
	// 1267650600228229401496703205376
}

func ExampleDivMod() {
	a, _ := bigint.ParseDecimal("19122993964741265205004922666831139784902809462")
	b, _ := bigint.ParseDecimal("1000000000000000000")
	q, r, _ := bigint.DivMod(a, b)
	fmt.Println(q)
	fmt.Println(r)
	// Output:
	// 19122993964741265205004922666
	// 831139784902809462
}

func ExampleInt_Hex() {
	x := bigint.FromInt64(-255)
	fmt.Println(x.Hex())
	// Output:
	// -0xff
}

func ExampleInt_Shr() {
	x := bigint.FromInt64(-1)
	_ = x.Shr(100)
	fmt.Println(x)
	// Output:
	// -1
}
