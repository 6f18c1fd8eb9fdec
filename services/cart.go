package services

import (
	"pos-client/models"
	"pos-client/utils"

	"github.com/shopspring/decimal"
)

// Cart keeps one line per product id, in the order products were first added.
// A line never holds a quantity below one.
type Cart struct {
	lines []models.CartLine
}

func NewCart() *Cart {
	return &Cart{lines: []models.CartLine{}}
}

func (c *Cart) index(productID int) int {
	for i, line := range c.lines {
		if line.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) Add(product models.Product) {
	if i := c.index(product.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, models.CartLine{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: 1,
	})
}

// Decrease takes one unit off the line for productID, dropping the line when
// it was the last unit. The line must exist.
func (c *Cart) Decrease(productID int) error {
	i := c.index(productID)
	if i < 0 {
		return ErrLineNotFound
	}
	if c.lines[i].Quantity == 1 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return nil
	}
	c.lines[i].Quantity--
	return nil
}

func (c *Cart) Remove(productID int) {
	if i := c.index(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Line(productID int) (models.CartLine, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return models.CartLine{}, false
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(utils.Money(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (c *Cart) Lines() []models.CartLine {
	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = []models.CartLine{}
}
