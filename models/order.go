package models

import "time"

// Order status names as the backend stores them. New orders are always
// created as PENDIENTE (id 1).
const (
	StatusPendingID uint = 1

	StatusPending       = "PENDIENTE"
	StatusCooked        = "COCINADO"
	StatusAwaitingPay   = "FALTA PAGAR"
	StatusPaid          = "PAGADO"
)

type OrderStatus struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"nombre"`
}

type Order struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Customer  string       `gorm:"type:varchar(255);not null" json:"cliente"`
	Notes     string       `gorm:"type:text" json:"notas"`
	Total     float64      `gorm:"type:decimal(10,2);not null" json:"total"`
	StatusID  uint         `gorm:"not null;default:1" json:"estado_id"`
	Status    *OrderStatus `gorm:"foreignKey:StatusID" json:"estado,omitempty"`
	Items     []OrderItem  `gorm:"foreignKey:OrderID" json:"pedidoItems"`
	CreatedAt time.Time    `json:"creadoEn"`
	UpdatedAt time.Time    `json:"-"`
}

type OrderItem struct {
	ID            uint                  `gorm:"primaryKey" json:"id"`
	OrderID       uint                  `gorm:"not null;index" json:"pedido_id"`
	ProductID     uint                  `gorm:"not null" json:"producto_id"`
	Quantity      int                   `gorm:"not null" json:"cantidad"`
	UnitPrice     float64               `gorm:"type:decimal(10,2);not null" json:"precio_unitario"`
	Subtotal      float64               `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	ProductSizeID *uint                 `json:"productoTamano_id"`
	OptionID      *uint                 `json:"opcionId"`
	Ingredients   []OrderItemIngredient `gorm:"foreignKey:OrderItemID" json:"pedidoIngredientes"`
	Product       *Product              `gorm:"foreignKey:ProductID" json:"producto,omitempty"`
}

type OrderItemIngredient struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OrderItemID  uint        `gorm:"not null;index" json:"pedidoItem_id"`
	IngredientID uint        `gorm:"not null" json:"ingrediente_id"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID" json:"ingrediente,omitempty"`
}

// Order draft: the create payload the backend expects, with its nested
// "create" wrappers. Size and option ids marshal as null when absent.

type OrderDraft struct {
	Customer string          `json:"cliente"`
	Notes    string          `json:"notas"`
	Total    float64         `json:"total"`
	StatusID uint            `json:"estado_id"`
	Items    OrderDraftItems `json:"pedidoItems"`
}

type OrderDraftItems struct {
	Create []OrderDraftItem `json:"create"`
}

type OrderDraftItem struct {
	ProductID   uint                  `json:"producto_id"`
	Quantity    int                   `json:"cantidad"`
	UnitPrice   float64               `json:"precio_unitario"`
	Subtotal    float64               `json:"subtotal"`
	SizeID      *uint                 `json:"productoTamano_id"`
	OptionID    *uint                 `json:"opcionId"`
	Ingredients OrderDraftIngredients `json:"pedidoIngredientes"`
}

type OrderDraftIngredients struct {
	Create []OrderDraftIngredient `json:"create"`
}

type OrderDraftIngredient struct {
	IngredientID uint `json:"ingrediente_id"`
}
