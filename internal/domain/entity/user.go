package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the centralized account table
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Avatar    string    `gorm:"type:text" json:"avatar,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null;default:'USER';index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	FavoriteAnimals  []Animal          `gorm:"many2many:user_favorite_animals" json:"favorite_animals,omitempty"`
	AdoptionRequests []AdoptionRequest `gorm:"foreignKey:UserID" json:"adoption_requests,omitempty"`
	Donations        []Donation        `gorm:"foreignKey:UserID" json:"donations,omitempty"`
	Notifications    []Notification    `gorm:"foreignKey:UserID" json:"notifications,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsStaff reports whether the user belongs to the rescue organisation side
// (platform admins and rescue team members).
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleRescue
}
