package models

import (
	"time"

	"gorm.io/gorm"
)

// Income 收入记录，与 Expense 同生命周期（只增不改）
type Income struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Description    string         `json:"description" gorm:"size:255;not null"`
	Amount         float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Source         string         `json:"source" gorm:"size:50;not null"` // 收入来源
	Date           time.Time      `json:"date" gorm:"not null;index"`
	UserID         uint           `json:"userId" gorm:"index;not null"`
	FamilyID       uint           `json:"familyId" gorm:"index;not null"`
	FamilyMemberID uint           `json:"familyMemberId" gorm:"index;not null"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"-"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Income) TableName() string {
	return "incomes"
}
