package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"coinmarket-service/internal/domain"
)

//go:embed data/*.json
var dataFS embed.FS

// Catalog holds the bundled glossary, education and featured-article data.
// It is read-only after Load; favorite membership lives in the stores.
type Catalog struct {
	Glossary  []domain.GlossaryEntry
	Education []domain.EducationArticle
	Featured  []domain.FeaturedArticle
}

// Load decodes the embedded catalogs. It fails only on a broken build, so
// callers treat an error as fatal.
func Load() (*Catalog, error) {
	var c Catalog
	if err := loadJSON("data/glossary_terms.json", &c.Glossary); err != nil {
		return nil, err
	}
	if err := loadJSON("data/education_articles.json", &c.Education); err != nil {
		return nil, err
	}
	if err := loadJSON("data/featured_articles.json", &c.Featured); err != nil {
		return nil, err
	}
	return &c, nil
}

func loadJSON(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) FeaturedByID(id string) (domain.FeaturedArticle, bool) {
	for _, a := range c.Featured {
		if a.ID == id {
			return a, true
		}
	}
	return domain.FeaturedArticle{}, false
}
