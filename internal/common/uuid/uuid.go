package uuid

import "github.com/google/uuid"

// Generator produce los ids de cada rotación.
type Generator interface {
	NewUUID() string
}

type Default struct{}

func New() Default { return Default{} }

func (Default) NewUUID() string { return uuid.New().String() }
