package rotation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOrder is returned when a composition order name cannot be parsed
var ErrUnknownOrder = errors.New("unknown rotation order")

// Order selects the sequence in which the three axis quaternions are multiplied
type Order uint8

const (
	ZXY Order = iota
	XYZ
	XZY
	YXZ
	YZX
	ZYX

	// The reused-axis orders square the accumulated quaternion on their last
	// step. With the two other angles at zero, they rotate by twice the angle
	// of the reused axis.
	XYX
	XZX
	YXY
	YZY
	ZXZ
	ZYZ

	orderCount
)

var orderNames = [...]string{
	ZXY: "ZXY",
	XYZ: "XYZ",
	XZY: "XZY",
	YXZ: "YXZ",
	YZX: "YZX",
	ZYX: "ZYX",
	XYX: "XYX",
	XZX: "XZX",
	YXY: "YXY",
	YZY: "YZY",
	ZXZ: "ZXZ",
	ZYZ: "ZYZ",
}

// Orders returns every composition order, in declaration order
func Orders() []Order {
	orders := make([]Order, orderCount)
	for i := range orders {
		orders[i] = Order(i)
	}
	return orders
}

func (o Order) String() string {
	if o >= orderCount {
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
	return orderNames[o]
}

// Valid reports whether o is one of the twelve declared orders
func (o Order) Valid() bool {
	return o < orderCount
}

// Degenerate reports whether the order multiplies one axis into itself
func (o Order) Degenerate() bool {
	r := recipes[o]
	return r.second == r.acc
}

// ParseOrder accepts names like "ZXY", "Z_X_Y" or "z-x-y"
func ParseOrder(name string) (Order, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)

	for i, n := range orderNames {
		if n == normalized {
			return Order(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}
