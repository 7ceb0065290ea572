// Command mario prompts for a height and prints a two-sided staircase of bricks.
package main

import (
	"context"

	"github.com/eugenenazirov/cs50-week1/internal/application"
	"github.com/eugenenazirov/cs50-week1/internal/cli"
)

var command = cli.Command{
	Name: "mario",
	Help: "Pyramid printer - renders a two-sided staircase of the requested height",
	Run: func(ctx context.Context, app *application.App) error {
		return app.RunPyramid(ctx)
	},
}

func main() {
	cli.Main(command)
}
