package schema

// CourseTable represents the 'content.course' table
type CourseTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Description string
	Category    string
	CoverImage  string
	CreatedAt   string
	UpdatedAt   string
}

// Course is the schema definition for content.course
var Course = CourseTable{
	Table:       "content.course",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	Category:    "category",
	CoverImage:  "cover_image",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t CourseTable) Columns() []string {
	return []string{t.ID, t.Title, t.Slug, t.Description, t.Category, t.CoverImage, t.CreatedAt, t.UpdatedAt}
}
