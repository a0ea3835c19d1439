package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cellgraph/cellgraph/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const arityCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the ComputedN arity helpers for the store package",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest arity to generate",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for store started")
	defer func() {
		log.Printf("Codegen for store finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(arityCountKey))
	log.Printf("Max arity: %d", maxArity)

	contents := templates.ComputedNGen(maxArity)
	return os.WriteFile("store/computedn.go", []byte(contents), 0644)
}
