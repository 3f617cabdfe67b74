package identity

// Identity represents one seeded credential entry. The mock backend has no
// signup flow; the table is fixed at process start.
type Identity struct {
	Email       string `json:"email"`
	Password    string `json:"-"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}

// LoginRequest represents the credentials posted to /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
