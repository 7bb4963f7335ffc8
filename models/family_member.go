package models

import (
	"time"

	"gorm.io/gorm"
)

// 成员角色常量
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// FamilyMember 家庭成员，User 与 Family 的关联记录
// 账单归属于成员记录而非用户本身，成员角色变更不影响历史账单归属
type FamilyMember struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"userId" gorm:"not null;uniqueIndex:idx_user_family"`
	FamilyID     uint           `json:"familyId" gorm:"not null;uniqueIndex:idx_user_family;index"`
	Role         string         `json:"role" gorm:"size:20;not null;default:member"`
	MonthlyLimit float64        `json:"monthlyLimit" gorm:"type:decimal(10,2);default:0"`
	JoinedAt     time.Time      `json:"joinedAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
	User         *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (FamilyMember) TableName() string {
	return "family_members"
}

// IsAdmin 是否为家庭管理员
func (m *FamilyMember) IsAdmin() bool {
	return m.Role == RoleAdmin
}
