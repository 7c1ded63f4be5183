package models

// User represents a registered account. The password is held exactly as submitted.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// Credentials is the request body accepted by the register and login endpoints
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// User converts the submitted credentials into a registry entry
func (c Credentials) User() *User {
	return &User{
		Username: c.Username,
		Password: c.Password,
	}
}
