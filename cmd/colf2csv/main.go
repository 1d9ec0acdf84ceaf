// Command colf2csv converts a COLF columnar container back into a CSV file.
//
// Usage:
//
//	colf2csv [flags] <input.colf> <output.csv>
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/colf"
	"github.com/hupe1980/colf/csvio"
)

func main() {
	verboseFlag := flag.Bool("v", false, "Verbose (debug) logging")

	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: colf2csv [flags] <input.colf> <output.csv>\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	colfPath := flag.Arg(0)
	csvPath := flag.Arg(1)

	logger := colf.NoopLogger()
	if *verboseFlag {
		logger = colf.NewTextLogger(slog.LevelDebug)
	}

	if err := run(colfPath, csvPath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", csvPath)
}

func run(colfPath, csvPath string, logger *colf.Logger) error {
	r, err := colf.Open(colfPath, func(o *colf.ReaderOptions) {
		o.Logger = logger
	})
	if err != nil {
		return err
	}
	defer r.Close()

	cols, err := r.ReadAll(context.Background())
	if err != nil {
		return err
	}

	return csvio.WriteFile(csvPath, r.ColumnNames(), cols)
}
