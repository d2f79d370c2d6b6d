package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`

	// Token is the signed credential; it is also set as the "token"
	// cookie for deployments using cookie-carried credentials.
	Token string `json:"token"`
}

// UserResponse is one entry of the users listing. Password digests are
// never serialized.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Name    string `json:"name"    validate:"required"`
	Message string `json:"message" validate:"omitempty"`
}

// ScanRequest defines the payload for the directory scan endpoint.
type ScanRequest struct {
	FolderPath string `json:"folder_path" validate:"required"`
}

// ScanResponse reports the outcome of a directory scan as a status code
// enum: 200 for success, 500 for error.
type ScanResponse struct {
	StatusCode int      `json:"status_code"`
	Entries    []string `json:"entries,omitempty"`
}
