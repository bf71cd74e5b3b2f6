// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRes はログイン成功時のレスポンスです。
type LoginRes struct {
	AccessToken string `json:"accessToken"`
}
