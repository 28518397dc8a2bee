package service

import (
	"gorm.io/gorm"

	"example.com/shop-go/internal/model"
)

type ReportInput struct {
	RefCode     string
	Reason      string
	FullName    string
	PhoneNumber string
	Email       string
}

// ReportService files order-issue reports. The form is pre-filled from an
// order located by primary key, but the submitted reference code re-resolves
// the order the Report row points at; the two need not match. Filing never
// mutates the order itself.
type ReportService interface {
	File(in ReportInput) error
}

type reportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) ReportService { return &reportService{db: db} }

func (s *reportService) File(in ReportInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		order, err := orderByRefCode(tx, in.RefCode)
		if err != nil {
			return err
		}

		report := model.Report{
			OrderID:     order.ID,
			Reason:      in.Reason,
			FullName:    in.FullName,
			PhoneNumber: in.PhoneNumber,
			Email:       in.Email,
			RefCode:     in.RefCode,
		}
		return tx.Create(&report).Error
	})
}
