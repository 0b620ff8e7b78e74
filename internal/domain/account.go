package domain

// Account is a registered identity. Accounts are append-only: they are never
// updated or deleted, so an ID handed out once stays valid for the lifetime
// of the store.
//
// Credential is compared verbatim at login. It is not hashed.
type Account struct {
	ID         int64
	Username   string
	Credential string
}
