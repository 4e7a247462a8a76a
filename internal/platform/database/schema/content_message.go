package schema

// MessageTable represents the 'content.message' table
type MessageTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt string
}

// Message is the schema definition for content.message
var Message = MessageTable{
	Table:     "content.message",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Message:   "message",
	CreatedAt: "created_at",
}

func (t MessageTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Message, t.CreatedAt}
}
