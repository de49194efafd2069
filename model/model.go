package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an application user. Email is the de-facto business key;
// the uuid primary key exists only so the store can hand out opaque ids.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Food represents a stored pantry item. Ownership is carried by the owner
// email on the row itself rather than a structural foreign key.
type Food struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Category       string     `gorm:"size:32;not null" json:"category"`
	Perishable     bool       `gorm:"not null" json:"perishable"`
	Quantity       float64    `gorm:"not null" json:"quantity"`
	Unit           string     `gorm:"size:16;not null" json:"unit"`
	EntryDate      time.Time  `gorm:"not null" json:"entry_date"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Email          string     `gorm:"size:255;index;not null" json:"email"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// BeforeCreate assigns a uuid primary key. Client-supplied ids are
// discarded so the store stays the only id authority.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.ID = uuid.NewString()
	return nil
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	f.ID = uuid.NewString()
	return nil
}
