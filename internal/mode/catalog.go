// ABOUTME: Embedded TOML catalog describing each analysis mode.
// ABOUTME: Parsed once at init; registry construction surfaces any defect.

package mode

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var catalogTOML []byte

// CatalogEntry describes one analysis mode: its activation command (the id
// doubles as the command name), display label, example query, and the
// description published to the bot's command menu.
type CatalogEntry struct {
	ID          string `toml:"id"`
	Label       string `toml:"label"`
	Example     string `toml:"example"`
	Description string `toml:"description"`
}

type catalogFile struct {
	Modes []CatalogEntry `toml:"mode"`
}

var (
	catalog     []CatalogEntry
	catalogByID map[string]CatalogEntry
	catalogErr  error
)

func init() {
	var f catalogFile
	if err := toml.Unmarshal(catalogTOML, &f); err != nil {
		catalogErr = fmt.Errorf("parsing mode catalog: %w", err)
		return
	}
	catalog = f.Modes
	catalogByID = make(map[string]CatalogEntry, len(catalog))
	for _, e := range catalog {
		catalogByID[e.ID] = e
	}
	for _, m := range All() {
		if _, ok := catalogByID[string(m)]; !ok {
			catalogErr = fmt.Errorf("mode catalog missing entry for %q", m)
			return
		}
	}
}

// Catalog returns the parsed mode catalog in file order.
func Catalog() ([]CatalogEntry, error) {
	if catalogErr != nil {
		return nil, catalogErr
	}
	return catalog, nil
}
