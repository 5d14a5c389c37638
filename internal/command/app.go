// Package command builds the albums CLI.
package command

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/bjaus/lines/internal/catalog"
	"github.com/bjaus/lines/internal/log"
)

// EnvCatalog names the environment variable holding the catalog path.
const EnvCatalog = "ALBUMS_CATALOG"

// NewApp builds the root albums command. Command output goes to stdout.
func NewApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "albums",
		Usage:     "print album collections one per line",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "YAML catalog `FILE` (default: built-in catalog)",
				Sources: cli.EnvVars(EnvCatalog),
			},
		},
		Commands: []*cli.Command{
			showCommandBuilder(),
			titlesCommandBuilder(),
		},
	}
}

// Run executes the albums command with args (args[0] is the program name).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return NewApp(stdout, stderr).Run(ctx, args)
}

func userFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "user `NAME` (default: first user in the catalog)",
	}
}

// loadUser resolves the catalog from the root flags and returns the user
// selected by --user.
func loadUser(cmd *cli.Command) (*catalog.User, error) {
	cat := catalog.Default()
	if path := cmd.String("catalog"); path != "" {
		log.Debugf("loading catalog: path=%s", path)
		var err error
		cat, err = catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}
	u, err := cat.Lookup(cmd.String("user"))
	if err != nil {
		return nil, err
	}
	log.Debugf("user %q has %d albums", u.Name, u.Albums.Len())
	return u, nil
}
