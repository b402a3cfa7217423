package domain

// Bundled content records. The catalogs ship with the binary; only favorite
// membership is persisted, keyed by entry ID.

type GlossaryEntry struct {
	ID         string `json:"id"`
	Letter     string `json:"letter"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Detail     string `json:"detail"`
}

type EducationArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Image    string `json:"image"`
	ImageURL string `json:"image_url,omitempty"`
	Content  string `json:"content"`
}

type FeaturedArticle struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}
