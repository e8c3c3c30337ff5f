package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/perpustakaan/internal/entities"
	"github.com/mrlokans/perpustakaan/internal/views"
)

// ShowCommand prints the detail screen of one book.
type ShowCommand struct {
	ID string

	Catalog views.Source
	Card    entities.Card
	Out     io.Writer
}

func NewShowCommand(catalog views.Source, card entities.Card) *ShowCommand {
	return &ShowCommand{Catalog: catalog, Card: card, Out: os.Stdout}
}

func (cmd *ShowCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)

	fs.StringVar(&cmd.ID, "id", "", "Book identifier (required, may also be given as the first argument)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s show -id <id>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the details of one book.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s show -id 1\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s show 3\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ID == "" && fs.NArg() > 0 {
		cmd.ID = fs.Arg(0)
	}

	if cmd.ID == "" {
		fs.Usage()
		return fmt.Errorf("book id is required")
	}

	return nil
}

// Run prints the book, or the not-found screen when the id does not resolve.
func (cmd *ShowCommand) Run() error {
	return renderScreen(cmd.Out, views.BuildDetail(cmd.Catalog, cmd.Card, cmd.ID))
}
