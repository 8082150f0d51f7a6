package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	Email          string    `json:"email"     gorm:"column:email;not null;uniqueIndex;type:varchar(255)"`
	Name           string    `json:"name"      gorm:"column:name;not null;type:varchar(255)"`
	HashedPassword string    `json:"-"         gorm:"column:hashed_password;not null;type:varchar(255)"`
	CreatedAt      time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}
