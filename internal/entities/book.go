package entities

// Book is a single catalog record. Books are created once when the catalog
// is built and never change afterwards.
type Book struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Cover       string `json:"cover"` // file name under static/covers
}

// Card holds the text shown in the page header.
type Card struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}
