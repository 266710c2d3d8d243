package main

import (
	"fmt"
	"os"

	"github.com/iotaledger/dotbits/codegen/widths"
	"github.com/iotaledger/dotbits/logger"
)

// main is the entry point of the widths code generator.
func main() {
	if len(os.Args) < 2 {
		printUsage("not enough parameters")
	}

	log, err := logger.NewRootLogger(logger.DefaultConfig())
	panicOnErr(err)
	//nolint:errcheck // syncing stderr fails on some platforms
	defer log.Sync()

	templateFile, outputFile := os.Getenv("GOFILE"), os.Args[1]
	if templateFile == "" {
		printUsage("GOFILE is not set, run the generator through go generate")
	}

	template := widths.New()
	panicOnErr(template.Parse(templateFile))
	panicOnErr(template.Generate(outputFile))

	log.Infow("generated width types", "template", templateFile, "output", outputFile, "types", len(widths.Default))
}

// printUsage prints the usage of the widths code generator in case of an error.
func printUsage(errorMsg string) {
	_, _ = fmt.Fprintf(os.Stderr, "Error:\t%s\n\n", errorMsg)
	_, _ = fmt.Fprintf(os.Stderr, "Usage of widths:\n")
	_, _ = fmt.Fprintf(os.Stderr, "\twidths [outputFile]\n")

	os.Exit(2)
}

// panicOnErr panics if the given error is not nil.
func panicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
