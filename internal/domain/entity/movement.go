package entity

import "time"

// MovementDirection sentido de un movimiento de stock.
type MovementDirection string

const (
	MovementIn  MovementDirection = "in"  // entrada
	MovementOut MovementDirection = "out" // salida
)

// Valid indica si la dirección es una de las conocidas.
func (d MovementDirection) Valid() bool {
	return d == MovementIn || d == MovementOut
}

// DirectionOf deriva la dirección y la cantidad absoluta a partir del delta new-old.
// Un delta cero devuelve cantidad 0 (sin movimiento).
func DirectionOf(oldQty, newQty int) (MovementDirection, int) {
	delta := newQty - oldQty
	if delta > 0 {
		return MovementIn, delta
	}
	return MovementOut, -delta
}

// Movement registro inmutable de stock que entra o sale de un item.
// ItemID no se valida después de eliminar el item: el historial sobrevive.
type Movement struct {
	ID        string
	ItemID    string
	Direction MovementDirection
	Quantity  int // siempre positiva: valor absoluto del delta
	Date      time.Time
}
