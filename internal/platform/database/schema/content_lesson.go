package schema

// LessonTable represents the 'content.lesson' table
type LessonTable struct {
	Table     string
	ID        string
	CourseID  string
	Title     string
	Slug      string
	Content   string
	Order     string
	CreatedAt string
	UpdatedAt string
}

// Lesson is the schema definition for content.lesson
var Lesson = LessonTable{
	Table:     "content.lesson",
	ID:        "id",
	CourseID:  "course_id",
	Title:     "title",
	Slug:      "slug",
	Content:   "content",
	Order:     "sort_order",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t LessonTable) Columns() []string {
	return []string{t.ID, t.CourseID, t.Title, t.Slug, t.Content, t.Order, t.CreatedAt, t.UpdatedAt}
}
