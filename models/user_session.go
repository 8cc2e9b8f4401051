package models

// UserSession is the trust boundary for request handling: the access token
// is decoded once per request and only this struct travels further down.
type UserSession struct {
	UserID   int64
	Username string
	Role     UserRole
}
