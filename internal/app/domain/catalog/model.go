package catalog

// Module is a purchasable AI service listed on the storefront. Modules are
// seeded at startup and never change afterwards.
type Module struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Deliverable string   `json:"deliverable"`
	ETA         string   `json:"eta"`
	Price       string   `json:"price"`
	Tags        []string `json:"tags"`
	Inputs      []string `json:"inputs"`
	Outputs     []string `json:"outputs"`
}
