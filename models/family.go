package models

import (
	"time"

	"gorm.io/gorm"
)

// Family 家庭，创建者自动成为第一个 admin 成员
type Family struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"size:100;not null"`
	Description   string         `json:"description" gorm:"size:255"`
	Currency      string         `json:"currency" gorm:"size:10;default:USD"`
	MonthlyBudget float64        `json:"monthlyBudget" gorm:"type:decimal(10,2);default:0"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"-"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
	Members       []FamilyMember `json:"members,omitempty" gorm:"foreignKey:FamilyID"`
}

// TableName 设置表名
func (Family) TableName() string {
	return "families"
}
