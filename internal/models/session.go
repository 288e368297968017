package models

// Session is the identity established at login and passed explicitly into every
// flow. It lives only for the duration of one token; logout is client-side
// token disposal.
type Session struct {
	UserID      string
	IsSuperuser bool
}
