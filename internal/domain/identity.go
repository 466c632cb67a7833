package domain

// Identity is what the identity provider vouches for after verifying a
// bearer token. UID is opaque and stable; Email may be empty.
type Identity struct {
	UID   string
	Email string
}
