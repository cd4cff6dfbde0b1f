package models

// Response is the envelope for every successful JSON response.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every failed JSON response.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Notification is a verification email addressed to one or more recipients.
type Notification struct {
	FirstName  string
	LastName   string
	Recipients []string
	Code       string
}
