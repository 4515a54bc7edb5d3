package models

// --- Retail Data ---

// CategorySales holds the weekly figures tracked for one product category.
type CategorySales struct {
	SalesLastWeek     int `json:"salesLastWeek"`
	SalesPreviousWeek int `json:"salesPreviousWeek"`
	Inventory         int `json:"inventory"`
}

// RetailDataset maps a product category name to its figures.
type RetailDataset map[string]CategorySales

// NewRetailDataset returns the sample figures bundled with the insight endpoint.
func NewRetailDataset() RetailDataset {
	return RetailDataset{
		"shoes": {
			SalesLastWeek:     120,
			SalesPreviousWeek: 200,
			Inventory:         40,
		},
		"tshirts": {
			SalesLastWeek:     300,
			SalesPreviousWeek: 250,
			Inventory:         500,
		},
	}
}

// --- API Responses ---

// InsightResponse is the body returned by the insight endpoint.
type InsightResponse struct {
	Question string `json:"question"`
	Insight  string `json:"insight"`
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Region    string `json:"region"`
}
