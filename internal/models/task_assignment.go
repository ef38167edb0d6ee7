package models

// TaskAssignment links a user to a task it is responsible for.
// The table has no primary key and no uniqueness constraint: assigning
// the same pair twice stores two identical rows.
type TaskAssignment struct {
	UserID string `gorm:"type:varchar(255);not null;index" json:"user_id"`
	TaskID string `gorm:"type:varchar(255);not null;index" json:"task_id"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

// TableName maps the model to the legacy join table name.
func (TaskAssignment) TableName() string {
	return "users_tasks"
}
