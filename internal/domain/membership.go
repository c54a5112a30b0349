package domain

// Membership represents a membership plan sold by the gym.
type Membership struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Duration    int      `json:"duration"` // days
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Color       string   `json:"color"`
}
