package entity

// Identifiable registro con ID entero asignado como max(ids)+1.
type Identifiable interface {
	GetID() int
}
