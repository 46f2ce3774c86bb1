package creations

import "time"

// Creation is a saved wizard output: a diet design or a quantified cart,
// stored as a JSON document plus searchable metadata.
type Creation struct {
	ID        string                 `json:"id"`
	OwnerID   string                 `json:"-"`
	Name      string                 `json:"name"`
	Type      string                 `json:"type"` // DIET | CART
	Content   map[string]interface{} `json:"content"`
	Tags      []string               `json:"tags"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

var validTypes = map[string]bool{
	"DIET": true,
	"CART": true,
}
