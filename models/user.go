package models

// Role values as persisted in the users table. The column is a free string,
// not an enum; these constants only give call sites one spelling.
const (
	RoleStaff    = "Nhân viên"
	RoleCustomer = "user"
)

type User struct {
	ID       string `gorm:"primaryKey;size:10" json:"id"` // NV### for staff
	Username string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"` // sha256 hex digest
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;not null" json:"email"`
	Phone    string `gorm:"size:15" json:"phone"`
	Role     string `gorm:"size:20;default:'Nhân viên'" json:"role"`
}
