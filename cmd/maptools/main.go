package main

import (
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/maptools"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// loadEnv loads settings from .env style files. Missing files are not an
// error.
func loadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func newMapTools(c *cli.Context) *maptools.MapTools {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}
	return maptools.New(logger)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "maptools"
	app.Usage = "Convert text maps into PROGMEM tile data"
	app.UsageText = "maptools [global options] MAPFILE\n" +
		"maptools [global options] import IMAGE\n\n" +
		"A map file named \"import\" must be given as ./import"
	app.Version = "1.0.0"
	app.Writer = stdout
	app.ErrWriter = stderr

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"MAPTOOLS_VERBOSE"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 1 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		if err := newMapTools(c).Convert(c.App.Writer, c.Args().First()); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:        "import",
			Usage:       "Convert an image into a text map",
			Description: "Each pixel is matched to the nearest tile color and written as one map character",
			ArgsUsage:   "IMAGE",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := newMapTools(c).Import(c.App.Writer, c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := loadEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
