package entities

// Read-only reference catalogs consumed by the service form. The core only
// looks entries up by id and reads the name and base cost/price.

type ServiceClass struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Process struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	BaseCost float64 `json:"baseCost"`
}

type Material struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}
