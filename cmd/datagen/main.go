// Command datagen generates a synthetic family description file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jordanpinkava/Kinship-Project/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		generations = flag.Int("generations", cfg.Generations, "number of generations to generate")
		founders    = flag.Int("founder-couples", cfg.FounderCouples, "number of founding couples")
		maxChildren = flag.Int("max-children", cfg.MaxChildren, "maximum children per couple")
		marriage    = flag.Float64("marriage-chance", cfg.MarriageChance, "probability two broods intermarry")
		nonbinary   = flag.Float64("nonbinary-chance", cfg.NonbinaryChance, "probability of a nonbinary individual")
		seed        = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		output      = flag.String("output", "family.json", "path of the generated family file")
		writeStdout = flag.Bool("stdout", false, "write the family to stdout instead of a file")
	)
	flag.Parse()

	genCfg := generator.Config{
		Generations:     *generations,
		FounderCouples:  *founders,
		MaxChildren:     *maxChildren,
		MarriageChance:  clampProbability(*marriage),
		NonbinaryChance: clampProbability(*nonbinary),
		Seed:            *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	desc, err := generator.New(genCfg).Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(desc); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write family to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteFamily(desc, *output); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write family: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d individuals and %d couples into %s\n",
		len(desc.Individuals), len(desc.Couples), *output)
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
