// Package views turns catalog data into the view models rendered by the web
// templates and the terminal browser.
package views

import (
	"fmt"

	"github.com/mrlokans/perpustakaan/internal/entities"
	"github.com/mrlokans/perpustakaan/internal/navigation"
)

// Labels shown on the screens.
const (
	ListLabel        = "Daftar Buku Tersedia : "
	AuthorPrefix     = "Penulis : "
	DescriptionLabel = "Deskripsi :"
	NotFoundTitle    = "Buku tidak ditemukan"
	NotFoundIDPrefix = "ID Buku: "
)

const (
	LogoPath   = "/static/logo.svg"
	coversPath = "/static/covers/"
)

// Source is the part of the catalog the views read from.
type Source interface {
	All() []entities.Book
	Resolve(raw string) (entities.Book, error)
}

// Header is the decorative block at the top of every screen.
type Header struct {
	Title    string
	Subtitle string
	Logo     string
}

func NewHeader(card entities.Card) Header {
	return Header{Title: card.Title, Subtitle: card.Subtitle, Logo: LogoPath}
}

// Page wraps the shared header with screen specific content.
type Page[T any] struct {
	Header  Header
	Content T
}

// Row is one book in the list screen.
type Row struct {
	ID       int
	Title    string
	Author   string
	CoverURL string
	Route    navigation.Route
	Href     string
}

type ListView struct {
	Label string
	Rows  []Row
}

// DetailView is either a resolved book or the not-found state for RequestedID.
type DetailView struct {
	Found       bool
	RequestedID string

	Book             entities.Book
	CoverURL         string
	AuthorLine       string
	DescriptionLabel string
	Description      string

	NotFoundTitle string
	NotFoundLine  string
}

// CoverURL returns the static path of a book's cover image.
func CoverURL(book entities.Book) string {
	if book.Cover == "" {
		return ""
	}
	return coversPath + book.Cover
}

// BuildList lays out the list screen: one row per book, in catalog order.
func BuildList(cat Source, card entities.Card) Page[ListView] {
	books := cat.All()
	rows := make([]Row, 0, len(books))
	for _, book := range books {
		route := navigation.DetailRoute(book.ID)
		rows = append(rows, Row{
			ID:       book.ID,
			Title:    book.Title,
			Author:   book.Author,
			CoverURL: CoverURL(book),
			Route:    route,
			Href:     route.Path(),
		})
	}

	return Page[ListView]{
		Header:  NewHeader(card),
		Content: ListView{Label: ListLabel, Rows: rows},
	}
}

// BuildDetail resolves rawID and lays out the detail screen. An identifier
// that does not resolve produces the not-found state naming it.
func BuildDetail(cat Source, card entities.Card, rawID string) Page[DetailView] {
	page := Page[DetailView]{Header: NewHeader(card)}

	book, err := cat.Resolve(rawID)
	if err != nil {
		page.Content = DetailView{
			RequestedID:   rawID,
			NotFoundTitle: NotFoundTitle,
			NotFoundLine:  NotFoundIDPrefix + rawID,
		}
		return page
	}

	page.Content = DetailView{
		Found:            true,
		RequestedID:      rawID,
		Book:             book,
		CoverURL:         CoverURL(book),
		AuthorLine:       AuthorPrefix + book.Author,
		DescriptionLabel: DescriptionLabel,
		Description:      " " + book.Description,
	}
	return page
}

// Screen builds whichever page route points at. The result is a
// Page[ListView] or a Page[DetailView].
func Screen(cat Source, card entities.Card, route navigation.Route) (any, error) {
	switch route.Screen {
	case navigation.List:
		return BuildList(cat, card), nil
	case navigation.Detail:
		return BuildDetail(cat, card, route.ID), nil
	default:
		return nil, fmt.Errorf("%w: %s", navigation.ErrUnknownRoute, route.Screen)
	}
}
