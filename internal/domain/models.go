package domain

const (
	StatusInStock    = "In Stock"
	StatusLimited    = "Limited"
	StatusOutOfStock = "Out of Stock"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Categories lists the sellable categories. "All" is a filter value only and
// never stored on a product.
var Categories = []string{"Rings", "Earrings", "Bangles", "Bracelets", "Necklace", "Pendants"}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// DeriveStatus maps stock quantity to the displayed availability label.
func DeriveStatus(quantity int) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= 5:
		return StatusLimited
	default:
		return StatusInStock
	}
}

type Product struct {
	ID               string   `json:"id"`
	SKU              string   `json:"sku"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	Quantity         int      `json:"quantity"`
	ImageURL         string   `json:"imageUrl"`
	AdditionalImages []string `json:"additionalImages,omitempty"`
	VideoURL         string   `json:"videoUrl,omitempty"`
	Status           string   `json:"status"`
}

// Valid reports whether the record is complete enough to list. Malformed
// rows (missing name or sku) are filtered out of results, never errored on.
func (p Product) Valid() bool {
	return p.Name != "" && p.SKU != ""
}

type CartItem struct {
	Product
	CartQuantity int `json:"cartQuantity"`
}

type Order struct {
	ID        string     `json:"id"`
	UserEmail string     `json:"userEmail"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Timestamp int64      `json:"timestamp"` // epoch millis
}

type SpecialRequest struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	DueDate     string `json:"dueDate"`
	View        string `json:"view"` // style tag: Traditional / Modern
	Image       string `json:"image,omitempty"`
	UserEmail   string `json:"userEmail,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

type UserRecord struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	Timestamp int64  `json:"timestamp"`
}

type CommunityPost struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Story     string `json:"story"`
	Category  string `json:"category"`
	Timestamp int64  `json:"timestamp"`
}

type ContactMessage struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// SalesReport aggregates the local order history for the admin dashboard.
type SalesReport struct {
	ReportID    string             `json:"reportId"`
	Timestamp   string             `json:"timestamp"`
	Revenue     float64            `json:"revenue"`
	Volume      int                `json:"volume"`
	OrdersCount int                `json:"ordersCount"`
	TopProducts []string           `json:"topProducts"`
	ByCategory  map[string]float64 `json:"byCategory"`
}
