// Package airports holds the static airport directory: an immutable
// IATA lookup table loaded once at startup and safe for concurrent
// reads.
package airports

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ejd6617/skybound/internal/flightsearch/entity"
)

type Directory struct {
	byCode map[string]entity.Airport
	all    []entity.Airport
}

type record struct {
	IATA    string `json:"iata"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Load reads the directory asset from a JSON file.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("airports read file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("airports decode: %w", err)
	}

	list := make([]entity.Airport, 0, len(records))
	for _, r := range records {
		list = append(list, entity.Airport{IATA: r.IATA, City: r.City, Name: r.Name, Country: r.Country})
	}

	return New(list), nil
}

func New(list []entity.Airport) *Directory {
	dir := &Directory{
		byCode: make(map[string]entity.Airport, len(list)),
		all:    make([]entity.Airport, len(list)),
	}
	copy(dir.all, list)
	for _, a := range list {
		dir.byCode[strings.ToUpper(a.IATA)] = a
	}
	return dir
}

// Resolve looks up an IATA code, case-insensitively. A code the
// directory does not know is an error; the engine never substitutes a
// placeholder airport.
func (d *Directory) Resolve(code string) (entity.Airport, error) {
	airport, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return entity.Airport{}, fmt.Errorf("unknown airport code %q", code)
	}
	return airport, nil
}

// Search matches airports for autocomplete: IATA prefix or a
// case-insensitive substring of city or name.
func (d *Directory) Search(query string, limit int) []entity.Airport {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}

	matches := make([]entity.Airport, 0, limit)
	for _, a := range d.all {
		if strings.HasPrefix(strings.ToLower(a.IATA), query) ||
			strings.Contains(strings.ToLower(a.City), query) ||
			strings.Contains(strings.ToLower(a.Name), query) {
			matches = append(matches, a)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

func (d *Directory) Len() int {
	return len(d.all)
}
