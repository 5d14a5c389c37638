package command

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/bjaus/lines"
)

// titlesCommandAction prints each album title in upper case.
func titlesCommandAction(ctx context.Context, cmd *cli.Command) error {
	u, err := loadUser(cmd)
	if err != nil {
		return err
	}

	titles := make(lines.List[string], 0, len(u.Albums))
	for i := range u.Albums {
		titles = append(titles, strings.ToUpper(u.Albums[i].Title))
	}
	_, err = titles.WriteTo(cmd.Root().Writer)
	return err
}

func titlesCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "titles",
		Usage:     "print a user's album titles in upper case",
		UsageText: "albums titles [--user NAME]",
		Flags:     []cli.Flag{userFlag()},
		Action:    titlesCommandAction,
	}
}
