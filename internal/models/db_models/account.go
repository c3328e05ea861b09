package db_models

import "gorm.io/datatypes"

const RoleUser = "user"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	AvatarURL    string
	Bio          string
	Preferences  datatypes.JSON
	Role         string `gorm:"default:user"`
	Trips        []Trip `gorm:"foreignKey:OwnerID"`
}
