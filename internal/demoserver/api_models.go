package demoserver

// LoginRequest is the payload the workshop pages POST.
type LoginRequest struct {
	Username string `json:"username" example:"sam"`
	Password string `json:"password" example:"hunter2"`
}

// LoginResponse carries the id assigned to a stored submission.
type LoginResponse struct {
	ID string `json:"id" example:"8e32a5b4-43f7-4a4e-9a3f-0d2f5c9b7a11"`
}

// DiffResponse shows what changed against the previous submission.
type DiffResponse struct {
	ID       string `json:"id"`
	Previous string `json:"previous"`
	Diff     string `json:"diff"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"no such account"`
}
