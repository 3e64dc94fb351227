package specification

import (
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

// Email comparison is case-sensitive; callers are expected to store
// and submit addresses verbatim.
func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByUserID struct {
	ID uint
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type OwnedBy struct {
	UserID uint
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
