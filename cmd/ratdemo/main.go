package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ratdemo"
	app.Usage = "Exercise fixed-width rational numbers from the command line."
	app.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "Walk through construction, comparison, arithmetic and conversion",
			Action: demoCmd,
		},
		{
			Name:   "calc",
			Usage:  "Apply an operator to two fractions a and b",
			Action: calcCmd,
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:  "a-num",
					Usage: "the numerator of a",
				},
				&cli.Int64Flag{
					Name:  "a-den",
					Value: 1,
					Usage: "the denominator of a",
				},
				&cli.Int64Flag{
					Name:  "b-num",
					Usage: "the numerator of b",
				},
				&cli.Int64Flag{
					Name:  "b-den",
					Value: 1,
					Usage: "the denominator of b",
				},
				&cli.StringFlag{
					Name:    "op",
					Aliases: []string{"o"},
					Value:   "add",
					Usage:   "the operator, one of add, sub, mul or div",
				},
				&cli.BoolFlag{
					Name:  "checked",
					Value: false,
					Usage: "use the overflow reporting operators",
				},
			},
		},
		{
			Name:   "float",
			Usage:  "Approximate a floating-point value by a fraction",
			Action: floatCmd,
			Flags: []cli.Flag{
				&cli.Float64Flag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "the value to convert",
				},
				&cli.IntFlag{
					Name:  "places",
					Value: 6,
					Usage: "the decimal places used to print the result back",
				},
			},
		},
	}
	return app
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
