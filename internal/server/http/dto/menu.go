package dto

// MenuItemResponse is one catalog entry.
type MenuItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// MenuCategoryResponse groups catalog entries under one category label.
type MenuCategoryResponse struct {
	Category string             `json:"category"`
	Items    []MenuItemResponse `json:"items"`
}
