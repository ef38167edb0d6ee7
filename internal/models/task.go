package models

// Task is a unit of work. IDs are client-supplied strings prefixed
// with "t". CreatedAt is a plain string column, filled with the
// current timestamp when a task is created.
type Task struct {
	ID          string `gorm:"type:varchar(255);primarykey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	CreatedAt   string `gorm:"type:varchar(255)" json:"created_at"`
	Status      int    `gorm:"not null;default:0" json:"status"`

	// Relations
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"-"`
}
