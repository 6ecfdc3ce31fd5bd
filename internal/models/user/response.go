package userModel

type (
	// User is the user record mirrored locally after login.
	User struct {
		ID       string `json:"_id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	RegisterResponse struct {
		Message string `json:"message"`
	}
)
