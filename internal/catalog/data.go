package catalog

import (
	"github.com/mrlokans/perpustakaan/internal/entities"
)

// DefaultCard is the header shown above every screen.
var DefaultCard = entities.Card{
	Title:    "Perpustakaan UTDI",
	Subtitle: "Universitas Teknologi Digital Indonesia",
}

// DefaultBooks returns the books bundled with the application, in display
// order. A new slice is returned on every call.
func DefaultBooks() []entities.Book {
	return []entities.Book{
		{
			ID:          1,
			Title:       "Laskar Pelangi",
			Author:      "Andrea Hirata",
			Description: "Kisah sepuluh anak dari keluarga miskin di Belitung yang bersekolah di SD Muhammadiyah yang nyaris ditutup, dan perjuangan mereka bersama Bu Muslimah dan Pak Harfan untuk terus belajar.",
			Cover:       "laskar-pelangi.svg",
		},
		{
			ID:          2,
			Title:       "Bumi Manusia",
			Author:      "Pramoedya Ananta Toer",
			Description: "Minke, pemuda pribumi yang bersekolah di HBS Surabaya, jatuh cinta pada Annelies dan belajar tentang ketidakadilan kolonial dari Nyai Ontosoroh pada akhir abad ke-19.",
			Cover:       "bumi-manusia.svg",
		},
		{
			ID:          3,
			Title:       "Ronggeng Dukuh Paruk",
			Author:      "Ahmad Tohari",
			Description: "Srintil tumbuh menjadi ronggeng kebanggaan dukuh kecil yang miskin, sementara Rasus, sahabat masa kecilnya, pergi menjadi tentara dan menyaksikan desanya terseret pergolakan 1965.",
			Cover:       "ronggeng-dukuh-paruk.svg",
		},
		{
			ID:          4,
			Title:       "Cantik Itu Luka",
			Author:      "Eka Kurniawan",
			Description: "Dewi Ayu bangkit dari kubur setelah dua puluh satu tahun, membuka kembali riwayat keluarganya di kota Halimunda yang penuh kutukan, perang, dan tragedi.",
			Cover:       "cantik-itu-luka.svg",
		},
		{
			ID:          5,
			Title:       "Negeri 5 Menara",
			Author:      "Ahmad Fuadi",
			Description: "Alif meninggalkan Maninjau untuk belajar di Pondok Madani dan bersama lima sahabatnya berpegang pada mantra man jadda wajada untuk mengejar mimpi ke lima benua.",
			Cover:       "negeri-5-menara.svg",
		},
	}
}

// Default builds the bundled catalog.
func Default() *Catalog {
	c, err := New(DefaultBooks())
	if err != nil {
		// The literal data above has unique ids; reaching this is a programming error.
		panic(err)
	}
	return c
}
