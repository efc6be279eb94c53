package qa

import (
	"fmt"
	"strings"
)

// Category labels a question. The set is closed.
type Category string

const (
	CategoryCareerProgression Category = "Career Progression"
	CategoryWorkplace         Category = "Workplace Challenges"
	CategoryLeadership        Category = "Leadership & Management"
	CategoryWorkLifeBalance   Category = "Work-Life Balance"
	CategorySalary            Category = "Salary & Negotiations"
	CategoryNetworking        Category = "Networking"
	CategorySkillsDevelopment Category = "Skills Development"
	CategoryIndustryInsights  Category = "Industry Insights"
	CategoryMentorship        Category = "Mentorship"
	CategoryOther             Category = "Other"
)

// FilterAll is the filter sentinel that matches every category.
const FilterAll = "all"

var categories = []Category{
	CategoryCareerProgression,
	CategoryWorkplace,
	CategoryLeadership,
	CategoryWorkLifeBalance,
	CategorySalary,
	CategoryNetworking,
	CategorySkillsDevelopment,
	CategoryIndustryInsights,
	CategoryMentorship,
	CategoryOther,
}

// Categories returns the enumeration in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a user supplied label, ignoring case and
// surrounding whitespace.
func ParseCategory(value string) (Category, error) {
	trimmed := strings.TrimSpace(value)
	for _, known := range categories {
		if strings.EqualFold(string(known), trimmed) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, value)
}

// FilterOptions lists the browse filter values: FilterAll followed by every
// category.
func FilterOptions() []string {
	options := make([]string, 0, len(categories)+1)
	options = append(options, FilterAll)
	for _, c := range categories {
		options = append(options, string(c))
	}
	return options
}

// FilterLabel is the human readable form of a filter option.
func FilterLabel(option string) string {
	if option == FilterAll {
		return "All Categories"
	}
	return option
}
