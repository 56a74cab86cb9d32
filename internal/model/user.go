// internal/model/user.go
package model

// User is the resolved identity attached to a request. The core never
// sees raw credentials, only this shape.
type User struct {
    ID    string `json:"id"`
    Email string `json:"email"`
}
