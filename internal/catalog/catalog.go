// Package catalog holds the fixed, read-only collection of books bundled with
// the application.
//
// Records live in an in-memory go-memdb table with two indexes: "id" for
// lookups by book identifier and "position" for iterating in catalog order.
// The table is written once in New and only read afterwards.
package catalog

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-memdb"

	"github.com/mrlokans/perpustakaan/internal/entities"
)

const (
	tableBooks    = "book"
	indexID       = "id"
	indexPosition = "position"
)

// record is the stored row. Position keeps the order books were given in.
type record struct {
	ID       int
	Position int
	Book     entities.Book
}

// Catalog is an immutable, ordered set of books addressable by ID.
type Catalog struct {
	db    *memdb.MemDB
	count int
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableBooks: {
				Name: tableBooks,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
					indexPosition: {
						Name:    indexPosition,
						Unique:  true,
						Indexer: positionIndex{},
					},
				},
			},
		},
	}
}

// New builds a catalog from books, keeping their order. Identifiers must be
// unique; an empty slice yields an empty catalog.
func New(books []entities.Book) (*Catalog, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("create catalog table: %w", err)
	}

	txn := db.Txn(true)
	defer txn.Abort()

	for i, book := range books {
		existing, err := txn.First(tableBooks, indexID, book.ID)
		if err != nil {
			return nil, fmt.Errorf("check book %d: %w", book.ID, err)
		}
		if existing != nil {
			return nil, fmt.Errorf("book %d: %w", book.ID, ErrDuplicateID)
		}
		if err := txn.Insert(tableBooks, &record{ID: book.ID, Position: i, Book: book}); err != nil {
			return nil, fmt.Errorf("insert book %d: %w", book.ID, err)
		}
	}
	txn.Commit()

	return &Catalog{db: db, count: len(books)}, nil
}

// All returns every book in catalog order. The slice is a fresh copy.
func (c *Catalog) All() []entities.Book {
	books := make([]entities.Book, 0, c.count)

	txn := c.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableBooks, indexPosition)
	if err != nil {
		panic(fmt.Sprintf("catalog: iterate books: %v", err))
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		books = append(books, obj.(*record).Book)
	}
	return books
}

// Lookup returns the book with the given identifier. The second result is
// false when no such book exists.
func (c *Catalog) Lookup(id int) (entities.Book, bool) {
	txn := c.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableBooks, indexID, id)
	if err != nil || raw == nil {
		return entities.Book{}, false
	}
	return raw.(*record).Book, true
}

// Resolve maps the decimal form of a book identifier, as carried by the
// detail route, to its record. Malformed and unknown identifiers both yield
// an error wrapping ErrBookNotFound.
func (c *Catalog) Resolve(raw string) (entities.Book, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return entities.Book{}, fmt.Errorf("resolve %q: %w", raw, ErrBookNotFound)
	}
	book, ok := c.Lookup(id)
	if !ok {
		return entities.Book{}, fmt.Errorf("resolve %q: %w", raw, ErrBookNotFound)
	}
	return book, nil
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return c.count
}

// positionIndex encodes a record position as a big-endian uint64 so the
// radix tree iterates rows in insertion order.
type positionIndex struct{}

func (positionIndex) FromObject(raw interface{}) (bool, []byte, error) {
	r, ok := raw.(*record)
	if !ok {
		return false, nil, fmt.Errorf("position index: unexpected type %T", raw)
	}
	return true, encodePosition(r.Position), nil
}

func (positionIndex) FromArgs(args ...interface{}) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("position index: must provide only a single argument")
	}
	pos, ok := args[0].(int)
	if !ok {
		return nil, fmt.Errorf("position index: argument must be an int: %#v", args[0])
	}
	return encodePosition(pos), nil
}

func encodePosition(pos int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(pos))
	return buf
}
