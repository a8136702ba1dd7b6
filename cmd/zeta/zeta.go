package main

// Analytic continuation demo built on the same MPFR primitives as the
// factorial evaluator: famous Riemann zeta values, the zeta-regularized sum
// 1 + 2 + 3 + ... = -1/12, and the factorial continuation table.
//
// Usage:
//   zeta --demo zeta
//   zeta --demo factorial --prec 80
//   zeta            (runs everything)
//
// SPDX-License-Identifier: MIT

import (
	"flag"
	"fmt"
	"os"

	ap "github.com/lukaszgryglicki/apfactorial"
)

func main() {
	demo := flag.String("demo", "all", "which demonstration to run: zeta|sum|factorial|all")
	prec := flag.Int("prec", ap.DefaultPrec, "precision in decimal digits")
	flag.Parse()

	if *prec < 1 {
		fmt.Fprintln(os.Stderr, "invalid precision; need positive integer")
		os.Exit(2)
	}
	switch *demo {
	case "zeta", "sum", "factorial", "all":
	default:
		fmt.Fprintf(os.Stderr, "unknown demo %q; want zeta|sum|factorial|all\n", *demo)
		os.Exit(2)
	}

	bits := ap.DigitsToBits(*prec)
	if *demo == "zeta" || *demo == "all" {
		zetaValues(bits)
	}
	if *demo == "sum" || *demo == "all" {
		sumIdentity(bits)
	}
	if *demo == "factorial" || *demo == "all" {
		factorialContinuation(*prec)
	}
}

func zetaValues(bits uint) {
	fmt.Println("=== Riemann zeta function - analytic continuation ===")
	fmt.Println("Original definition: zeta(s) = sum(1/n^s) for Re(s) > 1;")
	fmt.Println("through analytic continuation it extends to all s != 1.")
	for _, s := range []string{"-1", "0", "2", "-3", "-0.5"} {
		z := ap.Zeta(ap.MustParse(s, bits))
		fmt.Printf("zeta(%4s) = %s\n", s, z.StringFixed(10))
	}
	fmt.Println()
}

func sumIdentity(bits uint) {
	fmt.Println("=== The famous sum identity ===")
	fmt.Println("Direct sum 1 + 2 + 3 + 4 + ... diverges, but its")
	fmt.Println("zeta-regularized value is zeta(-1):")
	z := ap.Zeta(ap.MustParse("-1", bits))
	fmt.Printf("zeta(-1) = %s\n\n", z.StringFixed(15))
}

func factorialContinuation(prec int) {
	fmt.Println("=== Factorial continuation via Gamma(x+1) ===")
	fmt.Println("x! is defined for integer x >= 0; Gamma(x+1) extends it to")
	fmt.Println("all reals except the negative integers (poles).")
	for _, s := range []string{"5", "3.5", "0.5", "-0.5", "-1.5", "-2"} {
		x := ap.MustParseArgument(s)
		res, err := ap.Evaluate(x, ap.Options{Prec: prec, Threshold: ap.DefaultThreshold})
		if err != nil {
			fmt.Printf("%6s! = undefined (%v)\n", s, err)
			continue
		}
		fmt.Printf("%6s! = %s\n", s, res)
	}
}
