package model

// MenuItem is immutable reference data: loaded once at startup, never
// mutated by the application.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
}

// Categories is the closed set of menu categories in display order.
var Categories = []string{
	"Entrées",
	"Plats de Poulet",
	"Plats de Crevettes",
	"Plats de Légumes",
	"Naans",
	"Riz & Accompagnements",
	"Menus",
	"Desserts",
	"Boissons",
}
