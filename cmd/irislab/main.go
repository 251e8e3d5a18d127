package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"irislab/pkg/dataset"
	"irislab/pkg/pipeline"
	"irislab/pkg/visualize"
)

// app runs the exploratory analysis of the Iris dataset end to end.
var app = cli.App{
	Name:  "irislab",
	Usage: "explore and visualize the Iris flower dataset",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "output",
			Value: pipeline.DefaultOutput,
			Usage: "path of the composite chart image",
		},
		&cli.StringFlag{
			Name:  "csv",
			Usage: "analyze this CSV file instead of the bundled dataset",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "INFO",
			Usage: "log verbosity",
		},
	},
	Action: run,
}

func run(ctx *cli.Context) error {
	err := pipeline.Run(pipeline.Config{
		CSVPath:    ctx.String("csv"),
		OutputPath: ctx.String("output"),
		LogLevel:   ctx.String("log-level"),
		Out:        ctx.App.Writer,
	})
	switch {
	case errors.Is(err, dataset.ErrDataUnavailable):
		return cli.Exit(color.RedString("could not load dataset: %v", err), 1)
	case errors.Is(err, visualize.ErrRenderFailure):
		return cli.Exit(color.RedString("could not write chart image: %v", err), 1)
	case err != nil:
		return cli.Exit(color.RedString("analysis failed: %v", err), 1)
	}
	fmt.Fprintln(ctx.App.Writer, color.GreenString("analysis complete"))
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
