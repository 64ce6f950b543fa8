package models

// Categories every menu page filters on. The seed catalog must cover all of
// them.
var Categories = []string{
	"Burgers", "Curries", "Appetizers", "Rice", "Breads", "Rolls", "Drinks", "Desserts",
}

type MenuItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	IsVeg         bool    `json:"isVeg"`
	IsSpicy       bool    `json:"isSpicy"`
	IsChefSpecial bool    `json:"isChefSpecial"`
	Calories      int     `json:"calories,omitempty"`
}

// CartItem is a menu item snapshot plus quantity. Cart lines live only in
// memory; they are captured into an Order at checkout.
type CartItem struct {
	MenuItem
	Quantity      int    `json:"quantity"`
	Customization string `json:"customization,omitempty"`
}

func (c CartItem) LineTotal() float64 {
	return c.Price * float64(c.Quantity)
}
