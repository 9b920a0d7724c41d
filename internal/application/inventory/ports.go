package inventory

import "time"

// Clock fuente de la hora de los movimientos (inyectable en tests).
type Clock func() time.Time

// IDGenerator genera el ID de cada movimiento.
type IDGenerator func() string

// Option ajusta dependencias opcionales del caso de uso.
type Option func(*UseCase)

// WithClock reemplaza time.Now.
func WithClock(c Clock) Option {
	return func(uc *UseCase) { uc.now = c }
}

// WithIDGenerator reemplaza uuid.NewString.
func WithIDGenerator(g IDGenerator) Option {
	return func(uc *UseCase) { uc.newID = g }
}
