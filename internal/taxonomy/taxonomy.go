// Package taxonomy holds the static category/specialty reference data. The
// tables are package-level literals loaded once at process start; everything
// here is read-only and safe for concurrent use without locking.
package taxonomy

// Category groups related specialties under a URL slug.
type Category struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Specialties []string `json:"specialties"`
}

// CategorySummary is the list view of a category.
type CategorySummary struct {
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	SpecialtiesCount int    `json:"specialties_count"`
}

// Specialty is one practice discipline; it belongs to exactly one category.
// The description fields are only populated for specialties that have a
// detail entry.
type Specialty struct {
	Name             string   `json:"name"`
	CategorySlug     string   `json:"category_slug"`
	CategoryName     string   `json:"category_name"`
	ShortDescription string   `json:"short_description,omitempty"`
	FullDescription  string   `json:"full_description,omitempty"`
	Indications      []string `json:"indications,omitempty"`
	Methods          []string `json:"methods,omitempty"`
}

// Categories returns all categories in their fixed display order.
func Categories() []CategorySummary {
	summaries := make([]CategorySummary, 0, len(categories))
	for _, c := range categories {
		summaries = append(summaries, CategorySummary{
			Slug:             c.Slug,
			Name:             c.Name,
			Description:      c.Description,
			SpecialtiesCount: len(c.Specialties),
		})
	}
	return summaries
}

// CategoryBySlug looks up a category by its slug.
func CategoryBySlug(slug string) (*Category, bool) {
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i], true
		}
	}
	return nil, false
}

// Specialties returns every specialty with its category linkage, in category
// order.
func Specialties() []Specialty {
	var specialties []Specialty
	for _, c := range categories {
		for _, name := range c.Specialties {
			specialties = append(specialties, Specialty{
				Name:         name,
				CategorySlug: c.Slug,
				CategoryName: c.Name,
			})
		}
	}
	return specialties
}

// SpecialtyByName looks up a specialty by its exact display name, attaching
// the detail entry when one exists.
func SpecialtyByName(name string) (*Specialty, bool) {
	for _, c := range categories {
		for _, n := range c.Specialties {
			if n != name {
				continue
			}
			s := Specialty{
				Name:         n,
				CategorySlug: c.Slug,
				CategoryName: c.Name,
			}
			if d, ok := descriptions[n]; ok {
				s.ShortDescription = d.Short
				s.FullDescription = d.Full
				s.Indications = d.Indications
				s.Methods = d.Methods
			}
			return &s, true
		}
	}
	return nil, false
}
