package db_models

import "github.com/google/uuid"

type MemberStatus string

const (
	MemberStatusInvited MemberStatus = "invited"
	MemberStatusJoined  MemberStatus = "joined"
)

type BookingMember struct {
	BaseModel
	BookingID uuid.UUID `gorm:"index"`
	AccountID uuid.UUID
	Email     string
	Status    MemberStatus
}
