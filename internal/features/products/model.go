package products

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey;type:uuid"`
	UserID      uuid.UUID `json:"userId"      gorm:"column:user_id;not null;type:uuid;index"`
	Name        string    `json:"name"        gorm:"column:name;not null;type:varchar(255)"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	Price       float64   `json:"price"       gorm:"column:price;not null"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Product) TableName() string {
	return "products"
}
