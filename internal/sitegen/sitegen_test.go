package sitegen

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/perpustakaan/internal/catalog"
	"github.com/mrlokans/perpustakaan/internal/entities"
	"github.com/mrlokans/perpustakaan/internal/views"
)

func TestGenerator_Generate(t *testing.T) {
	card := entities.Card{Title: "Perpustakaan Statis", Subtitle: "Ekspor"}

	t.Run("writes list, one detail page per book and static files", func(t *testing.T) {
		gen, err := New("", "")
		require.NoError(t, err)

		cat := catalog.Default()
		dir := t.TempDir()

		pages, err := gen.Generate(dir, cat, card)
		require.NoError(t, err)
		assert.Equal(t, 2+cat.Len(), pages)

		index, err := os.ReadFile(filepath.Join(dir, "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(index), views.ListLabel)
		assert.Equal(t, cat.Len(), strings.Count(string(index), `class="book-row"`))

		for _, book := range cat.All() {
			detail, err := os.ReadFile(filepath.Join(dir, "detail", strconv.Itoa(book.ID), "index.html"))
			require.NoError(t, err)
			assert.Contains(t, string(detail), book.Title)
			assert.Contains(t, string(detail), "Perpustakaan Statis")

			_, err = os.Stat(filepath.Join(dir, "static", "covers", book.Cover))
			assert.NoError(t, err)
		}

		_, err = os.Stat(filepath.Join(dir, "list", "index.html"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "static", "style.css"))
		assert.NoError(t, err)
	})

	t.Run("empty catalog still writes the list", func(t *testing.T) {
		gen, err := New("", "")
		require.NoError(t, err)

		cat, err := catalog.New(nil)
		require.NoError(t, err)

		pages, err := gen.Generate(t.TempDir(), cat, card)
		require.NoError(t, err)
		assert.Equal(t, 2, pages)
	})

	t.Run("fails when a book does not resolve", func(t *testing.T) {
		gen, err := New("", "")
		require.NoError(t, err)

		_, err = gen.Generate(t.TempDir(), brokenSource{}, card)
		assert.Error(t, err)
	})
}

// brokenSource lists a book it cannot resolve.
type brokenSource struct{}

func (brokenSource) All() []entities.Book {
	return []entities.Book{{ID: 9, Title: "Ghost"}}
}

func (brokenSource) Resolve(raw string) (entities.Book, error) {
	return entities.Book{}, catalog.ErrBookNotFound
}
