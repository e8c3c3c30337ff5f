package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/perpustakaan/internal/entities"
	"github.com/mrlokans/perpustakaan/internal/views"
)

// ListCommand prints the list screen.
type ListCommand struct {
	Catalog views.Source
	Card    entities.Card
	Out     io.Writer
}

func NewListCommand(catalog views.Source, card entities.Card) *ListCommand {
	return &ListCommand{Catalog: catalog, Card: card, Out: os.Stdout}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print every book in the catalog.\n")
	}

	return fs.Parse(args)
}

func (cmd *ListCommand) Run() error {
	return renderScreen(cmd.Out, views.BuildList(cmd.Catalog, cmd.Card))
}
