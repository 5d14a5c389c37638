package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/bjaus/lines"
	"github.com/bjaus/lines/internal/catalog"
	"github.com/bjaus/lines/internal/log"
)

// showCommandAction prints the selected user's albums, one per line.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	u, err := loadUser(cmd)
	if err != nil {
		return err
	}

	var render lines.RenderFunc[catalog.Album] = lines.Render[catalog.Album]
	if text := cmd.String("template"); text != "" {
		render, err = lines.Template[catalog.Album](text)
		if err != nil {
			return err
		}
	}
	render = lines.Truncate(render, int(cmd.Int("width")))

	out := cmd.Root().Writer
	if _, err := fmt.Fprintf(out, "%s's albums:\n", u.Name); err != nil {
		return err
	}

	view := u.BorrowAlbums()
	log.Tracef("rendering %d albums", view.Len())
	return lines.WriteIterFunc(out, render, view.Values())
}

func showCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print a user's albums",
		UsageText: "albums show [--user NAME] [--template TMPL] [--width N]",
		Flags: []cli.Flag{
			userFlag(),
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Go `TEMPLATE` applied to each album, e.g. '{{.Title}}'",
			},
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "truncate lines to `N` columns (0 disables)",
			},
		},
		Action: showCommandAction,
	}
}
