package models

// User - учётная запись (таблица usuario). Создаётся только сидером.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	Password string `json:"-" gorm:"type:varchar(80);not null"`
	IsActive bool   `json:"-" gorm:"not null"`
}

func (User) TableName() string {
	return "usuario"
}

// UserResponse is the public view of a user. The password never leaves the store.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

func (u User) Serialize() UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}
