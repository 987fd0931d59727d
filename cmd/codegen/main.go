package main

import (
	"context"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/cellpipe/cellpipe/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	maxArityKey = "arity"
	outputKey   = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the CombineN arity variants for package cell",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest combine arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output path for the generated file",
				Value: "cell/combine_gen.go",
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
	log.Printf("Codegen for cell started")
	defer func() {
		log.Printf("Codegen for cell finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	out := cmd.String(outputKey)
	log.Printf("Max arity: %d", maxArity)

	contents, err := format.Source([]byte(templates.CombineGen(maxArity)))
	if err != nil {
		return err
	}
	return os.WriteFile(out, contents, 0644)
}
