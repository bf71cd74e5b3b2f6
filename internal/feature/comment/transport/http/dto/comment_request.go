// Package dto defines data transfer objects for the comment feature's HTTP transport layer.
package dto

// CreateCommentReq is the body of /comments/create/:postId.
type CreateCommentReq struct {
	Content string `json:"content"`
}
