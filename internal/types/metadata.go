package types

// Metadata is a generic string map attached to domain entities
type Metadata map[string]string
