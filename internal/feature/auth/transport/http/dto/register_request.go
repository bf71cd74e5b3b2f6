// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// Field rules are checked by the usecase so every rule reports its own message.
type RegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRes is the body of a successful registration.
type RegisterRes struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
