package domain

// Catalog is the full read-only content dataset the site is built from.
// It is immutable for the lifetime of the process; all accessors are pure
// lookups over the loaded data.
type Catalog struct {
	ID                  string              `json:"id"`
	Areas               []Area              `json:"areas"`
	Genres              []Genre             `json:"genres"`
	Properties          []Property          `json:"properties"`
	FAQs                []FAQ               `json:"faqs"`
	Questions           []QuizQuestion      `json:"questions"`
	PropertyTypeMapping map[string][]string `json:"propertyTypeMapping"`
}

// AreaBySlug returns the area with the given slug.
func (c Catalog) AreaBySlug(slug string) (Area, bool) {
	for _, a := range c.Areas {
		if a.Slug == slug {
			return a, true
		}
	}
	return Area{}, false
}

// GenreBySlug returns the genre with the given slug.
func (c Catalog) GenreBySlug(slug string) (Genre, bool) {
	for _, g := range c.Genres {
		if g.Slug == slug {
			return g, true
		}
	}
	return Genre{}, false
}

// AreasByGenre returns the areas a genre links to, in catalog order.
// Unknown genre slugs yield an empty slice.
func (c Catalog) AreasByGenre(genreSlug string) []Area {
	genre, ok := c.GenreBySlug(genreSlug)
	if !ok {
		return nil
	}
	related := make(map[string]struct{}, len(genre.RelatedAreas))
	for _, slug := range genre.RelatedAreas {
		related[slug] = struct{}{}
	}
	var areas []Area
	for _, a := range c.Areas {
		if _, ok := related[a.Slug]; ok {
			areas = append(areas, a)
		}
	}
	return areas
}

// PropertiesByArea returns all listings located in the given area.
func (c Catalog) PropertiesByArea(areaSlug string) []Property {
	var props []Property
	for _, p := range c.Properties {
		if p.Area == areaSlug {
			props = append(props, p)
		}
	}
	return props
}

// FeaturedProperties returns the first limit listings in catalog order.
func (c Catalog) FeaturedProperties(limit int) []Property {
	if limit <= 0 || limit > len(c.Properties) {
		limit = len(c.Properties)
	}
	return c.Properties[:limit]
}

// FAQsByCategory returns the FAQ entries for a category.
func (c Catalog) FAQsByCategory(category string) []FAQ {
	var faqs []FAQ
	for _, f := range c.FAQs {
		if f.Category == category {
			faqs = append(faqs, f)
		}
	}
	return faqs
}

// FAQCategories returns the distinct FAQ categories in first-seen order.
func (c Catalog) FAQCategories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, f := range c.FAQs {
		if _, ok := seen[f.Category]; ok {
			continue
		}
		seen[f.Category] = struct{}{}
		categories = append(categories, f.Category)
	}
	return categories
}

// PropertyTypes returns the ordered property-type labels mapped to an area.
// The first entry is the representative type surfaced in quiz results.
func (c Catalog) PropertyTypes(areaSlug string) []string {
	return c.PropertyTypeMapping[areaSlug]
}
