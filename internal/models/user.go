package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	CreatedTasks []Task `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
	UpdatedTasks []Task `gorm:"foreignKey:UpdatedBy;constraint:OnDelete:SET NULL" json:"-"`
	OwnedTasks   []Task `gorm:"foreignKey:UserID" json:"-"`
}
