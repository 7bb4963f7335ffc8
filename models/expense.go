package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 支出记录，创建后不可修改，更正通过冲账记录完成
type Expense struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Description    string         `json:"description" gorm:"size:255;not null"`
	Amount         float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Category       string         `json:"category" gorm:"size:50;not null;index"`
	Date           time.Time      `json:"date" gorm:"not null;index"`
	UserID         uint           `json:"userId" gorm:"index;not null"`
	FamilyID       uint           `json:"familyId" gorm:"index;not null"`
	FamilyMemberID uint           `json:"familyMemberId" gorm:"index;not null"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"-"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// 支出类别常量，前端固定候选项，存储时不做强校验（自由字符串）
const (
	CategoryGroceries     = "groceries"
	CategoryTransport     = "transport"
	CategoryUtilities     = "utilities"
	CategoryEntertainment = "entertainment"
	CategoryHealth        = "health"
	CategoryEducation     = "education"
	CategoryHousing       = "housing"
	CategoryOther         = "other"
)

// GetCategories 获取前端候选的支出类别列表
func GetCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryTransport,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryHealth,
		CategoryEducation,
		CategoryHousing,
		CategoryOther,
	}
}
