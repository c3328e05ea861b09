package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Trip struct {
	BaseModel
	OwnerID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	Owner         Account    `gorm:"foreignKey:OwnerID"`
	Title         string     `gorm:"size:255;not null"`
	StartDate     *time.Time `gorm:"type:date"`
	EndDate       *time.Time `gorm:"type:date"`
	BudgetCents   *int64
	Location      string `gorm:"size:255"`
	Vehicle       string `gorm:"size:64"`
	Accessibility datatypes.JSON
	Itinerary     datatypes.JSON
	Carpools      []Carpool     `gorm:"foreignKey:TripID"`
	Requests      []TripRequest `gorm:"foreignKey:TripID"`
}

type Carpool struct {
	BaseModel
	TripID       uuid.UUID `gorm:"type:uuid;index;not null"`
	HostID       uuid.UUID `gorm:"type:uuid;not null"`
	Host         Account   `gorm:"foreignKey:HostID"`
	Seats        int       `gorm:"not null"`
	FromLocation string    `gorm:"size:255;not null"`
	ToLocation   string    `gorm:"size:255;not null"`
	Departure    time.Time `gorm:"index;not null"`
}

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

type TripRequest struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index;not null"`
	RequesterID uuid.UUID `gorm:"type:uuid;index;not null"`
	Requester   Account   `gorm:"foreignKey:RequesterID"`
	Status      string    `gorm:"size:16;default:pending"`
	Message     string
}
