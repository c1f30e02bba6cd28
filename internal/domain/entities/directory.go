package entities

// User and Course are owned by the account and catalog services. The
// enrollment core only reads their identities.

const UserRoleAdmin = "ADMIN"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

type Course struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
