package entity

// Category es la familia de un artículo de inventario (conjunto cerrado).
type Category string

// Categorías admitidas.
const (
	CategoryElectronics Category = "Électronique"
	CategoryAccessories Category = "Accessoires"
	CategoryFurniture   Category = "Mobilier"
	CategoryClothing    Category = "Vêtements"
	CategoryFood        Category = "Alimentation"
	CategoryOther       Category = "Autres"
)

// AllCategories devuelve las categorías en el orden de presentación.
func AllCategories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryAccessories,
		CategoryFurniture,
		CategoryClothing,
		CategoryFood,
		CategoryOther,
	}
}

// Valid indica si c pertenece al conjunto cerrado.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryAccessories, CategoryFurniture,
		CategoryClothing, CategoryFood, CategoryOther:
		return true
	}
	return false
}
