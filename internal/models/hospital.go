package models

import "time"

// Hospital represents a medical facility with its location and bed capacity.
// Rows are owned by an administrative store; the scheduling core only reads
// them, and AvailableBeds is read fresh at query time.
type Hospital struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Address          string    `gorm:"type:text" json:"address,omitempty"`
	Latitude         float64   `gorm:"not null" json:"latitude"`
	Longitude        float64   `gorm:"not null" json:"longitude"`
	TotalBeds        int       `gorm:"not null;default:0" json:"total_beds"`
	AvailableBeds    int       `gorm:"not null;default:0" json:"available_beds"`
	EmergencyContact string    `gorm:"size:50" json:"emergency_contact,omitempty"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}
