package models

// User is an operator account. Batch operations and settings management
// require the admin role.
type User struct {
	BaseModel
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"default:admin" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
