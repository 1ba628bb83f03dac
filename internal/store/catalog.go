package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound is returned when no city matches a country code.
	ErrNotFound = errors.New("no cities for country code")

	// ErrEmptyCatalog is returned when a catalog is built without countries or cities.
	ErrEmptyCatalog = errors.New("catalog cannot be empty")

	// ErrInvalidEntry is returned when a catalog entry fails validation.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

//go:embed data/catalog.json
var defaultCatalogJSON []byte

var validate = validator.New()

// Catalog is a read-only, in-memory set of countries and cities.
// It is built once at startup and is safe for concurrent reads without locking.
type Catalog struct {
	countries []Country

	// key: country code, value: cities in insertion order
	cities map[string][]City
}

// NewCatalog validates the entries and indexes cities by country code.
// Cities referencing an unknown country are rejected.
func NewCatalog(countries []Country, cities []City) (*Catalog, error) {
	if len(countries) == 0 {
		return nil, fmt.Errorf("%w: no countries", ErrEmptyCatalog)
	}
	if len(cities) == 0 {
		return nil, fmt.Errorf("%w: no cities", ErrEmptyCatalog)
	}

	known := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("%w: country %+v: %v", ErrInvalidEntry, c, err)
		}
		if _, dup := known[c.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate country code %s", ErrInvalidEntry, c.Code)
		}
		known[c.Code] = struct{}{}
	}

	index := make(map[string][]City, len(countries))
	for _, city := range cities {
		if err := validate.Struct(city); err != nil {
			return nil, fmt.Errorf("%w: city %+v: %v", ErrInvalidEntry, city, err)
		}
		if _, ok := known[city.Country]; !ok {
			return nil, fmt.Errorf("%w: city %s references unknown country %s", ErrInvalidEntry, city.Name, city.Country)
		}
		index[city.Country] = append(index[city.Country], city)
	}

	return &Catalog{
		countries: append([]Country(nil), countries...),
		cities:    index,
	}, nil
}

// Countries returns every country in insertion order.
func (c *Catalog) Countries() []Country {
	return append([]Country(nil), c.countries...)
}

// Cities returns the cities of a country. The code match is exact.
func (c *Catalog) Cities(countryCode string) ([]City, error) {
	cities, ok := c.cities[countryCode]
	if !ok || len(cities) == 0 {
		return nil, ErrNotFound
	}
	return append([]City(nil), cities...), nil
}

type catalogFile struct {
	Countries []Country `json:"countries"`
	Cities    []City    `json:"cities"`
}

// DefaultCatalog returns the catalog shipped with the binary.
func DefaultCatalog() (*Catalog, error) {
	return parseCatalog(defaultCatalogJSON)
}

// LoadCatalog reads a catalog from a JSON file shaped like data/catalog.json.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewCatalog(f.Countries, f.Cities)
}
