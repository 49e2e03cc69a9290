package users

// UserResponse is the public projection of a User.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toResponse(u User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}
