package content

import (
	"time"

	"github.com/google/uuid"
)

// SocialContent is an AI-authored promotional post for one platform.
// Generation happens outside this service; rows arrive via plain CRUD.
type SocialContent struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	ProductID uuid.UUID `json:"productId" gorm:"column:product_id;not null;type:uuid;index"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id;not null;type:uuid;index"`
	Platform  string    `json:"platform"  gorm:"column:platform;not null;type:varchar(50)"`
	Content   string    `json:"content"   gorm:"column:content;not null;type:text"`
	Hashtags  string    `json:"hashtags"  gorm:"column:hashtags;type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (SocialContent) TableName() string {
	return "social_content"
}

type GeneratedImage struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	ProductID uuid.UUID `json:"productId" gorm:"column:product_id;not null;type:uuid;index"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id;not null;type:uuid;index"`
	Platform  string    `json:"platform"  gorm:"column:platform;not null;type:varchar(50)"`
	ImageURL  string    `json:"imageUrl"  gorm:"column:image_url;not null;type:text"`
	Prompt    string    `json:"prompt"    gorm:"column:prompt;type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (GeneratedImage) TableName() string {
	return "generated_images"
}
