// Command isopath plans routes over YAML map files on isometric and hex grids.
//
// Usage:
//
//	isopath route --map FILE [--from x,y --to x,y] [--speed N] [--strict]
//	isopath check --map FILE
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("isopath: ")

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:     "isopath",
		Usage:    "plan routes on isometric and hex walkability grids",
		Commands: []*cli.Command{routeCommand(), checkCommand()},
	}
}

func mapFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "map",
		Aliases:  []string{"m"},
		Usage:    "YAML map `FILE`",
		Required: true,
	}
}

func routeCommand() *cli.Command {
	return &cli.Command{
		Name:  "route",
		Usage: "run the routes of a map file, or a single --from/--to pair",
		Flags: []cli.Flag{
			mapFlag(),
			&cli.StringFlag{Name: "from", Usage: "start cell as `x,y`"},
			&cli.StringFlag{Name: "to", Usage: "goal cell as `x,y`"},
			&cli.IntFlag{Name: "speed", Usage: "cells walked per turn; 0 walks the whole path"},
			&cli.BoolFlag{Name: "strict", Usage: "stop when the goal is expanded instead of discovered"},
			&cli.IntFlag{Name: "max-expansions", Usage: "abort a search after `N` expansions; 0 is unlimited"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runRoute(cmd.Root().Writer, routeConfig{
				mapPath:       cmd.String("map"),
				from:          cmd.String("from"),
				to:            cmd.String("to"),
				speed:         int(cmd.Int("speed")),
				strict:        cmd.Bool("strict"),
				maxExpansions: int(cmd.Int("max-expansions")),
			})
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "validate a map file without searching",
		Flags: []cli.Flag{mapFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runCheck(cmd.Root().Writer, cmd.String("map"))
		},
	}
}
