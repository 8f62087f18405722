package models

type Category struct {
	ID           int64  `json:"id"`
	Value        string `json:"value"`
	Label        string `json:"label"`
	CategoryType string `json:"category_type"` // expense, income, both
	IsActive     bool   `json:"is_active"`
	SortOrder    int    `json:"sort_order"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type CategoryList struct {
	Categories []Category `json:"categories"`
}

// CategoryForm carries the fields submitted when creating or updating a category.
type CategoryForm struct {
	Value        string `json:"value"`
	Label        string `json:"label"`
	CategoryType string `json:"category_type"`
}

// categoryLabels maps well-known category values to display labels. Custom
// categories fall back to their raw value.
var categoryLabels = map[string]string{
	"food":          "Dining",
	"transport":     "Transport",
	"shopping":      "Shopping",
	"entertainment": "Entertainment",
	"healthcare":    "Healthcare",
	"education":     "Education",
	"housing":       "Housing",
	"utilities":     "Utilities",
	"communication": "Communication",
	"insurance":     "Insurance",
	"investment":    "Investment",
	"salary":        "Salary",
	"bonus":         "Bonus",
	"other":         "Other",
}

// CategoryLabel returns the display label for a category value.
func CategoryLabel(value string) string {
	if label, ok := categoryLabels[value]; ok {
		return label
	}
	return value
}
