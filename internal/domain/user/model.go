package user

// Principal identifies the authenticated owner of every request. The core
// trusts this id for ownership checks.
type Principal struct {
	UserID string
}
