// Command genlinesegments writes a random segment fixture in the ASCII format
// package inputformat reads: a count line followed by one "p1.x p1.y p2.x p2.y v.x v.y r g b"
// line per segment.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "genlinesegments",
		Usage:     "Generates a random line-segment fixture and writes it to stdout",
		UsageText: "genlinesegments --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value> --maxspeed <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    100,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    100,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxspeed",
				Usage:    "The maximum magnitude of either velocity component",
				OnlyOnce: true,
				Value:    5,
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

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

type record struct {
	x1, y1, x2, y2 int64
	vx, vy         int64
	r, g, b        int64
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	n := cmd.Int("number")
	maxspeed := cmd.Int("maxspeed")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}
	if maxspeed <= 0 {
		return fmt.Errorf("maxspeed must be greater than zero")
	}

	records := make([]record, n)
	for i := int64(0); i < n; i++ {
		var rec record
		for {
			rec = record{
				x1: randomIntInRange(minx, maxx),
				y1: randomIntInRange(miny, maxy),
				x2: randomIntInRange(minx, maxx),
				y2: randomIntInRange(miny, maxy),
				vx: randomIntInRange(-maxspeed, maxspeed),
				vy: randomIntInRange(-maxspeed, maxspeed),
				r:  randomIntInRange(0, 255),
				g:  randomIntInRange(0, 255),
				b:  randomIntInRange(0, 255),
			}
			// skip degenerate segments
			if rec.x1 != rec.x2 || rec.y1 != rec.y2 {
				break
			}
		}
		records[i] = rec
	}

	fmt.Println(n)
	for _, rec := range records {
		fmt.Printf("%d %d %d %d %d %d %d %d %d\n",
			rec.x1, rec.y1, rec.x2, rec.y2, rec.vx, rec.vy, rec.r, rec.g, rec.b)
	}
	return nil
}
