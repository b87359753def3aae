package order

import (
	"errors"
	"math"

	"campuseats/internal/pkg/errs"
	"campuseats/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through the
// NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object describing a single cart line on an order:
// a menu item name, its unit price in whole currency units, and a quantity.
// Items are immutable once the order is placed.
type Item struct { //nolint:recvcheck //using for validation
	name  string
	price int64
	qty   int

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
// The name must be non-empty, the unit price non-negative, and the quantity
// at least 1.
func NewItem(name string, price int64, qty int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
		item.setQty(qty),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the menu item name.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price in whole currency units.
func (i Item) Price() int64 {
	return i.price
}

// Qty returns the ordered quantity.
func (i Item) Qty() int {
	return i.qty
}

// Total returns price multiplied by quantity.
func (i Item) Total() int64 {
	return i.price * int64(i.qty)
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("item price", price, 0, int64(math.MaxInt64))
	}
	i.price = price
	return nil
}

func (i *Item) setQty(qty int) error {
	if qty < 1 {
		return errs.NewValueIsOutOfRangeError("item qty", qty, 1, math.MaxInt)
	}
	i.qty = qty
	return nil
}
