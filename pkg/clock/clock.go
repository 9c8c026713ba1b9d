// Package clock abstrae la hora actual para que los reportes que dependen de
// "hoy" (mes anterior, fecha de creación) sean deterministas en tests.
package clock

import "time"

// Clock fuente de la hora actual.
type Clock interface {
	Now() time.Time
}

// RealClock usa la hora del sistema.
type RealClock struct{}

// NewRealClock construye el reloj del sistema.
func NewRealClock() Clock {
	return RealClock{}
}

// Now devuelve time.Now().
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock devuelve siempre la misma hora; se puede mover con Set.
type FixedClock struct {
	current time.Time
}

// NewFixedClock construye un reloj detenido en t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// Now devuelve la hora fijada.
func (c *FixedClock) Now() time.Time {
	return c.current
}

// Set cambia la hora fijada.
func (c *FixedClock) Set(t time.Time) {
	c.current = t
}
