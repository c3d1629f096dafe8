package model

type CartItemType string

const (
	CartItemService CartItemType = "service"
	CartItemCourse  CartItemType = "course"
	CartItemProduct CartItemType = "product"
)

// CartItem is one line in a session cart. Carts live in memory only,
// for the duration of a browsing session.
type CartItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Quantity int          `json:"quantity"`
	Type     CartItemType `json:"type"`
}

// LineTotal is price × quantity for this line.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Label renders the line kind for the checkout message:
// products are 靈物, everything else is 服務.
func (i CartItem) Label() string {
	if i.Type == CartItemProduct {
		return "靈物"
	}
	return "服務"
}
