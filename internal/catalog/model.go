package catalog

type Category string

const (
	CategoryFood        Category = "food"
	CategoryToys        Category = "toys"
	CategoryAccessories Category = "accessories"
	CategoryHygiene     Category = "hygiene"
	CategoryMedicine    Category = "medicine"
)

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured,omitempty"`
}

// Service is a clinic offering shown on the home screen. Price is display
// text ("$35", "From $120"), not an amount.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Price       string `json:"price"`
}

type BlogPost struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// Slot is a bookable clinic time. Date is an ISO calendar date, Time is
// HH:MM 24h, matching the appointment fields they feed.
type Slot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type Reason struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
