package schema

// BlogTable represents the 'content.blog' table
type BlogTable struct {
	Table      string
	ID         string
	Title      string
	Slug       string
	Content    string
	Author     string
	Tags       string
	CategoryID string
	CoverImage string
	Views      string
	CreatedAt  string
	UpdatedAt  string
}

// Blog is the schema definition for content.blog
var Blog = BlogTable{
	Table:      "content.blog",
	ID:         "id",
	Title:      "title",
	Slug:       "slug",
	Content:    "content",
	Author:     "author",
	Tags:       "tags",
	CategoryID: "category_id",
	CoverImage: "cover_image",
	Views:      "views",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

func (t BlogTable) Columns() []string {
	return []string{t.ID, t.Title, t.Slug, t.Content, t.Author, t.Tags, t.CategoryID, t.CoverImage, t.Views, t.CreatedAt, t.UpdatedAt}
}
