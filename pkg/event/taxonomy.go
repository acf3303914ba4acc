package event

import "strings"

// Category is the closed set of event categories. Unknown or missing
// values resolve to CategoryWork.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryFamily   Category = "family"
	CategoryHealth   Category = "health"
	CategorySocial   Category = "social"
)

// Priority is the closed set of priority levels. Unknown or missing
// values resolve to PriorityMedium.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Details carries the display metadata associated with a category or
// priority. Style is a tag for the rendering layer; icon resolution
// stays out there too.
type Details struct {
	ID          string
	Label       string
	Style       string
	Description string
}

var categoryDetails = map[Category]Details{
	CategoryWork:     {ID: "work", Label: "Work", Style: "category-work", Description: "Work events and professional commitments"},
	CategoryPersonal: {ID: "personal", Label: "Personal", Style: "category-personal", Description: "Personal events and free time"},
	CategoryFamily:   {ID: "family", Label: "Family", Style: "category-family", Description: "Family events and anniversaries"},
	CategoryHealth:   {ID: "health", Label: "Health", Style: "category-health", Description: "Medical appointments and wellness"},
	CategorySocial:   {ID: "social", Label: "Social", Style: "category-social", Description: "Social events and meetups"},
}

var priorityDetails = map[Priority]Details{
	PriorityHigh:   {ID: "high", Label: "High", Style: "priority-high", Description: "Urgent and important events"},
	PriorityMedium: {ID: "medium", Label: "Medium", Style: "priority-medium", Description: "Events of average importance"},
	PriorityLow:    {ID: "low", Label: "Low", Style: "priority-low", Description: "Non-urgent events"},
}

// AllCategories returns the closed category set in display order.
func AllCategories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryFamily, CategoryHealth, CategorySocial}
}

// AllPriorities returns the closed priority set in rank order.
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParseCategory resolves a raw id case-insensitively, falling back to
// CategoryWork. Total: never fails.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := categoryDetails[c]; ok {
		return c
	}
	return CategoryWork
}

// ParsePriority resolves a raw id case-insensitively, falling back to
// PriorityMedium. Total: never fails.
func ParsePriority(raw string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := priorityDetails[p]; ok {
		return p
	}
	return PriorityMedium
}

// CategoryDetails looks up display metadata for a category id,
// defaulting to the work category.
func CategoryDetails(id string) Details {
	return categoryDetails[ParseCategory(id)]
}

// PriorityDetails looks up display metadata for a priority id,
// defaulting to the medium priority.
func PriorityDetails(id string) Details {
	return priorityDetails[ParsePriority(id)]
}

// Rank orders priorities for sorting: high=0 < medium=1 < low=2.
// Unknown values rank as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}
