package auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// SessionUser is the identity surface returned by login and /auth/me.
type SessionUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employeeId"`
}

type TokenResponse struct {
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType"`
	ExpiresIn   int64       `json:"expiresIn"`
	User        SessionUser `json:"user"`
}
