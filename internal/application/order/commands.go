package order

// CreateOrderCommand is the storefront checkout payload.
type CreateOrderCommand struct {
	Customer CustomerInput
	Items    []ItemInput
	Total    int64
}

type CustomerInput struct {
	Name         string
	Phone        string
	Address      string
	Comment      string
	City         string
	DeliveryCost int64
	DeliveryType string
}

type ItemInput struct {
	ID       string
	Name     string
	Price    int64
	Quantity int
	ImageURL string
}
