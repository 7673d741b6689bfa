package model

// User is the only entity stored by the app. Optional profile fields are
// pointers so an unset field stays NULL instead of a zero value.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Email        string  `gorm:"unique;not null" json:"email"`
	Username     string  `gorm:"not null" json:"username"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Age          *int    `json:"age,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Location     *string `json:"location,omitempty"`
	ProfilePic   *string `json:"profile_pic,omitempty"`
}
