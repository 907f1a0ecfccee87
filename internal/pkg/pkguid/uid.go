package pkguid

import "github.com/google/uuid"

// StringID generates opaque string identifiers, used for request ids.
type StringID interface {
	Generate() string
}

type uuidGenerator struct{}

func NewUUID() StringID {
	return uuidGenerator{}
}

func (uuidGenerator) Generate() string {
	return uuid.NewString()
}
