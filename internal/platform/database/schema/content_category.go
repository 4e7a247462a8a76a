package schema

// CategoryTable represents the 'content.category' table
type CategoryTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
	UpdatedAt string
}

// Category is the schema definition for content.category
var Category = CategoryTable{
	Table:     "content.category",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t CategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.CreatedAt, t.UpdatedAt}
}
