package repository

import (
	"context"

	"smart-healthcare-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog records an action in the audit trail
func (r *AuditRepository) CreateAuditLog(ctx context.Context, patientID *uint, action, details string) error {
	log := &models.AuditLog{
		PatientID: patientID,
		Action:    action,
		Details:   details,
	}
	return r.db.WithContext(ctx).Create(log).Error
}
