package models

import "time"

// User exists for the local backend mode only; against a remote backend
// the panel never sees password hashes.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100)" json:"nombre,omitempty"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'admin'" json:"rol"`
	CreatedAt time.Time `json:"creadoEn"`
	UpdatedAt time.Time `json:"actualizadoEn"`
}
