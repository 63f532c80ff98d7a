package models

import "time"

// Wire shapes shared with the backend API. JSON field names follow the
// backend schema (Spanish), gorm tags are used by the local backend mode.

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);unique;not null" json:"nombre"`
	Image     *string   `gorm:"type:varchar(255)" json:"imagen,omitempty"`
	Active    bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"nombre"`
}

type Size struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"nombre"`
}

type Option struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"nombre"`
}

// ProductIngredient links a product to an ingredient. Optional marks
// ingredients the customer may toggle; Default marks the ones included
// when the product is opened for customization.
type ProductIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ProductID    uint       `gorm:"not null;index" json:"producto_id"`
	IngredientID uint       `gorm:"not null" json:"ingrediente_id"`
	Optional     bool       `gorm:"not null" json:"opcional"`
	Default      bool       `gorm:"not null" json:"por_defecto"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingrediente"`
}

// ProductSize carries the per-size price that overrides the base price.
type ProductSize struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"not null;index" json:"producto_id"`
	SizeID    uint    `gorm:"not null" json:"tamano_id"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"precio"`
	Size      Size    `gorm:"foreignKey:SizeID" json:"tamano"`
}

type ProductOption struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"not null;index" json:"producto_id"`
	OptionID  uint    `gorm:"not null" json:"opcion_id"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"precio"`
	Option    Option  `gorm:"foreignKey:OptionID" json:"opcion"`
}

type Product struct {
	ID             uint                `gorm:"primaryKey" json:"id"`
	Name           string              `gorm:"type:varchar(255);not null" json:"nombre"`
	Description    *string             `gorm:"type:text" json:"descripcion,omitempty"`
	Image          *string             `gorm:"type:varchar(255)" json:"imagen,omitempty"`
	Price          float64             `gorm:"type:decimal(10,2)" json:"precio"`
	Active         bool                `gorm:"not null;default:true" json:"activo"`
	CategoryID     uint                `gorm:"not null" json:"categoria_id"`
	Category       Category            `gorm:"foreignKey:CategoryID" json:"categoria"`
	Ingredients    []ProductIngredient `gorm:"foreignKey:ProductID" json:"ingredientes"`
	Options        []ProductOption     `gorm:"foreignKey:ProductID" json:"opciones"`
	AvailableSizes []ProductSize       `gorm:"foreignKey:ProductID" json:"tamanosDisponibles"`
	CreatedAt      time.Time           `json:"-"`
	UpdatedAt      time.Time           `json:"-"`
}
