package schema

// AccountTable represents the 'users.account' table
type AccountTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	CreatedAt    string
	UpdatedAt    string
}

// Account is the schema definition for users.account
var Account = AccountTable{
	Table:        "users.account",
	ID:           "id",
	Email:        "email",
	PasswordHash: "password_hash",
	DisplayName:  "display_name",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

func (t AccountTable) Columns() []string {
	return []string{t.ID, t.Email, t.PasswordHash, t.DisplayName, t.CreatedAt, t.UpdatedAt}
}
