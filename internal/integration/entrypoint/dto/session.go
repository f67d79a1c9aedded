// Package dto defines data transfer objects for API requests and responses.
package dto

// CreateSessionRequest represents the request body for opening a session.
type CreateSessionRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
}

// CreateSessionResponse represents the response for a newly opened session.
type CreateSessionResponse struct {
	Token string `json:"token"`
}
