package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/perpustakaan/internal/entities"
	"github.com/mrlokans/perpustakaan/internal/navigation"
	"github.com/mrlokans/perpustakaan/internal/views"
)

const browseHelp = "Enter a book id or route (detail/1), b = back, l = list, q = quit"

// BrowseCommand is an interactive terminal browser over the list and
// detail screens, with a back stack.
type BrowseCommand struct {
	Catalog views.Source
	Card    entities.Card
	In      io.Reader
	Out     io.Writer

	stack *navigation.Stack
}

func NewBrowseCommand(catalog views.Source, card entities.Card) *BrowseCommand {
	return &BrowseCommand{Catalog: catalog, Card: card, In: os.Stdin, Out: os.Stdout}
}

func (cmd *BrowseCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s browse\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Browse the catalog interactively.\n")
		fmt.Fprintf(os.Stderr, "%s\n", browseHelp)
	}

	return fs.Parse(args)
}

func (cmd *BrowseCommand) Run() error {
	cmd.stack = navigation.NewStack()
	scanner := bufio.NewScanner(cmd.In)

	for {
		if err := cmd.show(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.Out, "\n%s\n> ", browseHelp)

		if !scanner.Scan() {
			fmt.Fprintln(cmd.Out)
			return scanner.Err()
		}

		if quit := cmd.handle(strings.TrimSpace(scanner.Text())); quit {
			return nil
		}
	}
}

func (cmd *BrowseCommand) show() error {
	page, err := views.Screen(cmd.Catalog, cmd.Card, cmd.stack.Current())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Out)
	return renderScreen(cmd.Out, page)
}

// handle applies one line of input to the stack and reports whether the
// user asked to quit.
func (cmd *BrowseCommand) handle(input string) bool {
	switch input {
	case "":
		return false
	case "q":
		return true
	case "b":
		cmd.stack.Back()
		return false
	case "l":
		cmd.stack.Home()
		return false
	}

	route, err := navigation.Parse(input)
	if errors.Is(err, navigation.ErrUnknownRoute) {
		// A bare id, as picked from the list.
		route = navigation.Route{Screen: navigation.Detail, ID: input}
	}
	cmd.stack.Navigate(route)
	return false
}
