package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/perpustakaan/internal/catalog"
	"github.com/mrlokans/perpustakaan/internal/entities"
	"github.com/mrlokans/perpustakaan/internal/views"
)

func TestUIController_ListPage(t *testing.T) {
	t.Run("renders one row per book in catalog order", func(t *testing.T) {
		cat := catalog.Default()
		router := setupRouter(t, cat)

		w := get(router, "/")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()

		books := cat.All()
		assert.Equal(t, len(books), strings.Count(body, `class="book-row"`))

		last := -1
		for _, book := range books {
			idx := strings.Index(body, `href="/detail/`+itoa(book.ID)+`"`)
			require.NotEqual(t, -1, idx, "row for book %d missing", book.ID)
			assert.Greater(t, idx, last, "book %d out of order", book.ID)
			last = idx

			assert.Contains(t, body, book.Title)
			assert.Contains(t, body, book.Author)
			assert.Contains(t, body, "/static/covers/"+book.Cover)
		}
	})

	t.Run("renders header and list label", func(t *testing.T) {
		router := setupRouter(t, catalog.Default())

		w := get(router, "/list")
		require.Equal(t, http.StatusOK, w.Code)

		assert.Contains(t, w.Body.String(), "Perpustakaan Uji")
		assert.Contains(t, w.Body.String(), "Rak percobaan")
		assert.Contains(t, w.Body.String(), views.ListLabel)
		assert.Contains(t, w.Body.String(), views.LogoPath)
	})

	t.Run("empty catalog renders header and label only", func(t *testing.T) {
		cat, err := catalog.New(nil)
		require.NoError(t, err)
		router := setupRouter(t, cat)

		w := get(router, "/")
		require.Equal(t, http.StatusOK, w.Code)

		assert.Contains(t, w.Body.String(), "Perpustakaan Uji")
		assert.Contains(t, w.Body.String(), views.ListLabel)
		assert.Equal(t, 0, strings.Count(w.Body.String(), `class="book-row"`))
	})
}

func TestUIController_DetailPage(t *testing.T) {
	t.Run("following the first row opens book 1", func(t *testing.T) {
		cat := catalog.Default()
		router := setupRouter(t, cat)

		list := get(router, "/").Body.String()
		require.Contains(t, list, `href="/detail/1"`)

		w := get(router, "/detail/1")
		require.Equal(t, http.StatusOK, w.Code)

		book, ok := cat.Lookup(1)
		require.True(t, ok)
		assert.Contains(t, w.Body.String(), book.Title)
		assert.Contains(t, w.Body.String(), views.AuthorPrefix+book.Author)
		assert.Contains(t, w.Body.String(), " "+book.Description)
	})

	t.Run("reproduces fields verbatim", func(t *testing.T) {
		cat, err := catalog.New([]entities.Book{{
			ID:          8,
			Title:       "Kisah X",
			Author:      "Penulis Y",
			Description: "A story about X",
			Cover:       "x.svg",
		}})
		require.NoError(t, err)
		router := setupRouter(t, cat)

		w := get(router, "/detail/8")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()

		assert.Contains(t, body, ">Kisah X<")
		assert.Contains(t, body, ">Penulis : Penulis Y<")
		assert.Contains(t, body, ">"+views.DescriptionLabel+"<")
		assert.Contains(t, body, "> A story about X<")
		assert.Contains(t, body, "Perpustakaan Uji")
	})

	t.Run("unknown id renders not found with the id", func(t *testing.T) {
		router := setupRouter(t, catalog.Default())

		w := get(router, "/detail/99999")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), views.NotFoundTitle)
		assert.Contains(t, w.Body.String(), "ID Buku: 99999")
	})

	t.Run("malformed id renders not found with the raw id", func(t *testing.T) {
		router := setupRouter(t, catalog.Default())

		w := get(router, "/detail/invalid")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ID Buku: invalid")
	})

	t.Run("raw id is escaped", func(t *testing.T) {
		router := setupRouter(t, catalog.Default())

		w := get(router, "/detail/%3Cscript%3E")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ID Buku: &lt;script&gt;")
		assert.NotContains(t, w.Body.String(), "<script>")
	})
}

func TestUIController_Open(t *testing.T) {
	router := setupRouter(t, catalog.Default())

	tests := []struct {
		name     string
		query    string
		location string
	}{
		{name: "detail route", query: "?route=detail/3", location: "/detail/3"},
		{name: "list route", query: "?route=list", location: "/list"},
		{name: "empty route", query: "", location: "/list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, "/open"+tt.query)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}

	t.Run("unresolvable ids land on the not found page", func(t *testing.T) {
		tests := []struct {
			name  string
			query string
			id    string
		}{
			{name: "query character", query: "?route=detail/1%3Fx", id: "1?x"},
			{name: "fragment character", query: "?route=detail/1%23frag", id: "1#frag"},
			{name: "dot dot", query: "?route=detail/..", id: ".."},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := get(router, "/open"+tt.query)
				require.Equal(t, http.StatusFound, w.Code)

				location := w.Header().Get("Location")
				require.True(t, strings.HasPrefix(location, "/detail/"), location)

				page := get(router, location)
				assert.Equal(t, http.StatusNotFound, page.Code)
				assert.Contains(t, page.Body.String(), views.NotFoundTitle)
				assert.Contains(t, page.Body.String(), "ID Buku: "+tt.id)
			})
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		w := get(router, "/open?route=settings")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown route")
	})
}
