package postgres

import (
	"context"
	"fmt"
)

type menuSeed struct {
	name        string
	description string
	price       float64
	category    string
}

// Catalog shipped with the restaurant. Seeded once; existing rows are
// left untouched so price edits done in the database survive restarts.
var defaultMenu = []menuSeed{
	{"Samoussa Légumes", "Beignet triangulaire aux légumes épicés (x2)", 4.50, "Entrées"},
	{"Pakora de Poulet", "Beignets de poulet aux épices", 5.50, "Entrées"},
	{"Poulet Tikka Massala", "Poulet mariné, sauce crémeuse aux épices douces", 13.90, "Plats de Poulet"},
	{"Poulet Korma", "Poulet mijoté, sauce aux amandes et noix de cajou", 13.90, "Plats de Poulet"},
	{"Poulet Madras", "Poulet relevé, sauce tomate et piment", 13.90, "Plats de Poulet"},
	{"Crevettes Curry", "Crevettes sautées, sauce curry maison", 15.90, "Plats de Crevettes"},
	{"Crevettes Tandoori", "Crevettes marinées au four tandoor", 16.50, "Plats de Crevettes"},
	{"Palak Paneer", "Épinards au fromage indien", 11.90, "Plats de Légumes"},
	{"Dal Tadka", "Lentilles jaunes mijotées", 10.90, "Plats de Légumes"},
	{"Naan Nature", "Pain traditionnel au four tandoor", 2.50, "Naans"},
	{"Cheese Naan", "Naan garni au fromage", 3.50, "Naans"},
	{"Riz Basmati", "Riz parfumé nature", 3.00, "Riz & Accompagnements"},
	{"Riz Biryani", "Riz sauté aux épices et légumes", 5.50, "Riz & Accompagnements"},
	{"Menu Poulet", "Plat de poulet au choix, naan, riz et boisson", 18.90, "Menus"},
	{"Gulab Jamun", "Douceurs au lait, sirop de rose (x2)", 4.00, "Desserts"},
	{"Lassi Mangue", "Yaourt frappé à la mangue", 4.00, "Boissons"},
}

// seedMenu loads the catalog when the table is missing rows. The menu
// is reference data: never mutated by the application afterwards.
func (s *Storage) seedMenu(ctx context.Context) error {
	const query = `INSERT INTO menu_items (name, description, price, category)
                   VALUES ($1, $2, $3, $4)
                   ON CONFLICT (name) DO NOTHING`
	for _, item := range defaultMenu {
		if _, err := s.pool.Exec(ctx, query, item.name, item.description, item.price, item.category); err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
	}
	return nil
}
