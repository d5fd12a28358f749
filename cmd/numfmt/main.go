package main

import (
	"flag"
	"fmt"
	"os"

	numfmt "github.com/goliatone/go-numfmt"
)

func main() {
	locale := flag.String("locale", "en", "locale identifier")
	system := flag.String("number-system", "", "number system name or category")
	currencyCode := flag.String("currency", "", "ISO 4217 currency code")
	format := flag.String("format", "", "named format or literal pattern")
	rounding := flag.String("rounding", "", "rounding mode (half_even, half_up, ...)")
	fracDigits := flag.Int("fraction-digits", -1, "fixed fraction digit count")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: numfmt [flags] value...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	engine, err := numfmt.New(numfmt.WithDefaultLocale(*locale))
	if err != nil {
		fmt.Fprintf(os.Stderr, "numfmt: %v\n", err)
		os.Exit(1)
	}

	opts := numfmt.Options{}
	if *system != "" {
		opts["number_system"] = *system
	}
	if *currencyCode != "" {
		opts["currency"] = *currencyCode
	}
	if *format != "" {
		opts["format"] = *format
	}
	if *rounding != "" {
		opts["rounding_mode"] = *rounding
	}
	if *fracDigits >= 0 {
		opts["fractional_digits"] = *fracDigits
	}

	exit := 0
	for _, arg := range flag.Args() {
		result, err := engine.ToString(arg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "numfmt: %s: %v\n", arg, err)
			exit = 1
			continue
		}
		fmt.Println(result)
	}
	os.Exit(exit)
}
