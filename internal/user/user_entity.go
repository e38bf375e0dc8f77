package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a team member account. Rows are deleted physically so that
// reimbursements filed by the member block deletion through the FK.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Phone      string    `gorm:"type:varchar(30)"`
	Department string    `gorm:"type:varchar(60)"`
	Position   string    `gorm:"type:varchar(60)"`
	Role       string    `gorm:"type:varchar(20);not null;default:'MEMBER'"`
	Status     string    `gorm:"type:varchar(20);not null;default:'ATIVO';index:idx_users_status"`
	About      string    `gorm:"type:text"`
	Password   string    `gorm:"type:varchar(255);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	StatusActive   = "ATIVO"
	StatusInactive = "INATIVO"
)
