package domain

import (
	"time"

	"github.com/lib/pq"
)

type Review struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	EmployeeID        uint           `gorm:"not null;index" json:"employee_id"`
	Employee          *Employee      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PerformanceReview string         `gorm:"type:text;not null" json:"performance_review"`
	Comments          pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"comments"`
	CreatedAt         time.Time      `json:"created_at"`
}

// ReviewReviewer is an assignment edge granting a reviewer feedback rights on a review.
type ReviewReviewer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReviewID   uint      `gorm:"not null;uniqueIndex:idx_review_reviewer" json:"review_id"`
	Review     *Review   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ReviewerID uint      `gorm:"not null;uniqueIndex:idx_review_reviewer;index" json:"reviewer_id"`
	Reviewer   *Employee `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE" json:"-"`
}
