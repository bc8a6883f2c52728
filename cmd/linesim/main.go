package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/cdillond/linesim"
	"github.com/cdillond/linesim/inputformat"
	"github.com/cdillond/linesim/quadtree"
	"github.com/cdillond/linesim/world"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "linesim",
		Usage:     "Runs a fixed number of frames of the line-segment collision simulation against an input fixture",
		UsageText: "linesim [--quadtree] <frames> <input-file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quadtree",
				Aliases: []string{"q"},
				Usage:   "Use the quadtree spatial index for collision detection instead of brute force",
			},
			&cli.FloatFlag{
				Name:  "dt",
				Usage: "Timestep duration per frame",
				Value: 0.5,
			},
			&cli.FloatFlag{
				Name:  "arena",
				Usage: "Side length of the square arena, anchored at the origin",
				Value: 1000,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/cdillond"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected exactly 2 positional arguments, got %d: %w", cmd.Args().Len(), linesim.ErrInvalidInput)
	}
	frames, err := strconv.Atoi(cmd.Args().Get(0))
	if err != nil || frames < 0 {
		return fmt.Errorf("invalid frame count %q: %w", cmd.Args().Get(0), linesim.ErrInvalidInput)
	}
	inputPath := cmd.Args().Get(1)

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	records, err := inputformat.Parse(f)
	if err != nil {
		return err
	}

	mode := world.BruteForce
	var qopts []quadtree.Option
	if cmd.Bool("quadtree") {
		mode = world.Quadtree
		if v, ok := os.LookupEnv("QUADTREE_MAXDEPTH"); ok {
			depth, err := strconv.Atoi(v)
			if err != nil || depth <= 0 {
				return fmt.Errorf("invalid QUADTREE_MAXDEPTH %q: %w", v, linesim.ErrInvalidInput)
			}
			qopts = append(qopts, quadtree.WithMaxDepth(depth))
		}
	}

	arenaSize := cmd.Float("arena")
	w := world.New(cmd.Float("dt"), world.Arena{MinX: 0, MinY: 0, MaxX: arenaSize, MaxY: arenaSize}, mode, qopts...)
	for _, rec := range records {
		if _, err := w.Add(rec.P1, rec.P2, rec.Velocity, rec.Color); err != nil {
			return err
		}
	}

	for i := 0; i < frames; i++ {
		if err := w.Frame(ctx); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	fmt.Printf("Line-Line Collisions: %d\n", w.LineLineCollisions())
	fmt.Printf("Line-Wall Collisions: %d\n", w.LineWallCollisions())
	return nil
}
