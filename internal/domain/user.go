package domain

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered account.
//
// Password is stored and compared as plain text; hardening the credential
// scheme is out of scope here and isolated behind a single comparison
// function in the repository layer.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// Sanitized returns a copy of the user with the password stripped, the
// only shape that ever leaves the repository layer on authentication.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
