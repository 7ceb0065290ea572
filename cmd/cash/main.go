// Command cash prompts for an amount of change in cents and prints the
// minimal number of coins needed to pay it out.
package main

import (
	"context"

	"github.com/eugenenazirov/cs50-week1/internal/application"
	"github.com/eugenenazirov/cs50-week1/internal/cli"
)

var command = cli.Command{
	Name: "cash",
	Help: "Change calculator - prints the minimal coin count for the change owed",
	Run: func(ctx context.Context, app *application.App) error {
		return app.RunChange(ctx)
	},
}

func main() {
	cli.Main(command)
}
