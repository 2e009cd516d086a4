package models

const (
	RoleStudent   = "student"
	RoleTeacher   = "teacher"
	RoleModerator = "moderator"
)

type User struct {
	Base
	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:student" json:"role"` // student, teacher, moderator
}

// ValidRole reports whether role is one of the known session roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleTeacher, RoleModerator:
		return true
	default:
		return false
	}
}
