// Command csv2colf converts a CSV file into a COLF columnar container.
//
// Usage:
//
//	csv2colf [flags] <input.csv> <output.colf>
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/colf"
	"github.com/hupe1980/colf/compress"
	"github.com/hupe1980/colf/csvio"
)

func main() {
	levelFlag := flag.Int("level", compress.DefaultLevel, "Deflate compression level")
	verboseFlag := flag.Bool("v", false, "Verbose (debug) logging")

	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: csv2colf [flags] <input.csv> <output.colf>\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	csvPath := flag.Arg(0)
	colfPath := flag.Arg(1)

	logger := colf.NoopLogger()
	if *verboseFlag {
		logger = colf.NewTextLogger(slog.LevelDebug)
	}

	if err := run(csvPath, colfPath, *levelFlag, logger); err != nil {
		var schemaErr *colf.SchemaError
		if errors.As(err, &schemaErr) {
			fmt.Fprintf(os.Stderr, "Schema error: %v\n", schemaErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", colfPath)
}

func run(csvPath, colfPath string, level int, logger *colf.Logger) error {
	table, err := csvio.ReadTableFile(csvPath)
	if err != nil {
		return err
	}

	w := colf.NewWriter(func(o *colf.WriterOptions) {
		o.CompressionLevel = level
		o.Logger = logger
	})

	return w.WriteFile(colfPath, table)
}
