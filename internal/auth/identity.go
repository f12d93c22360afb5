package auth

import "github.com/96TSH/nutrimate/internal/model"

// Identity is the authentication view of a customer record: just enough to
// verify credentials and decide role access. The password field only ever
// holds bcrypt output.
type Identity struct {
	CustomerID   uint
	Username     string
	PasswordHash string
	Role         model.Role
}
