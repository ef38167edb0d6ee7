package models

// User is a registered user. IDs are client-supplied strings prefixed
// with "f". The password is stored and returned verbatim; the API
// exposes raw rows.
type User struct {
	ID       string `gorm:"type:varchar(255);primarykey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"password"`

	// Relations
	Assignments []TaskAssignment `gorm:"foreignKey:UserID" json:"-"`
}
