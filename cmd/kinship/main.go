// Command kinship resolves the relationship between two individuals in a
// family description file.
//
// Usage:
//
//	kinship <file> <name1> <name2>
//
// It prints a single line: either "{name1} is {name2}'s {relationship}" or
// "{name1} is not related to {name2}".
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jordanpinkava/Kinship-Project/internal/loader"
	"github.com/jordanpinkava/Kinship-Project/internal/service"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <file> <name1> <name2>\n", os.Args[0])
		flag.PrintDefaults()
	}
	verbose := flag.Bool("v", false, "enable debug logging to stderr")
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	path, name1, name2 := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	desc, err := loader.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kinship: %v\n", err)
		os.Exit(1)
	}

	svc, err := service.NewKinshipService(desc, nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kinship: %v\n", err)
		os.Exit(1)
	}

	relation, err := svc.Relate(context.Background(), name1, name2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kinship: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(relation.Sentence())
}
