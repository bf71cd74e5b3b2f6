// Package dto defines data transfer objects for the post feature's HTTP transport layer.
package dto

// CreatePostReq is the body of /post/create.
type CreatePostReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
