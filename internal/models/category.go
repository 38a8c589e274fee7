package models

// Category classifies a generated interview question.
type Category string

const (
	CategoryTechnical       Category = "technical"
	CategoryBehavioral      Category = "behavioral"
	CategorySituational     Category = "situational"
	CategoryRoleSpecific    Category = "role_specific"
	CategoryCompanySpecific Category = "company_specific"
)

// AllCategories lists every category in its canonical order.
var AllCategories = []Category{
	CategoryTechnical,
	CategoryBehavioral,
	CategorySituational,
	CategoryRoleSpecific,
	CategoryCompanySpecific,
}

func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the human readable name used in prompts.
func (c Category) Label() string {
	switch c {
	case CategoryTechnical:
		return "Technical"
	case CategoryBehavioral:
		return "Behavioral"
	case CategorySituational:
		return "Situational"
	case CategoryRoleSpecific:
		return "Role-specific"
	case CategoryCompanySpecific:
		return "Company-specific"
	default:
		return string(c)
	}
}

// NewCategoryBuckets returns a map holding an empty, non-nil list for every category.
func NewCategoryBuckets() map[Category][]string {
	buckets := make(map[Category][]string, len(AllCategories))
	for _, c := range AllCategories {
		buckets[c] = []string{}
	}
	return buckets
}
