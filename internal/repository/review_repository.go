package repository

import (
	"context"
	"errors"

	"review_project/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if review.Comments == nil {
		review.Comments = []string{}
	}
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]*domain.Review, error) {
	var reviews []*domain.Review
	if err := r.db.WithContext(ctx).Order("id").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) FindByReviewer(ctx context.Context, reviewerID uint) ([]*domain.Review, error) {
	var reviews []*domain.Review
	err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&domain.ReviewReviewer{}).Select("review_id").Where("reviewer_id = ?", reviewerID)).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update writes only the review text; the comment log is owned by AppendComment.
func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) (bool, error) {
	result := r.db.WithContext(ctx).Model(review).
		Clauses(clause.Returning{}).
		Update("performance_review", review.PerformanceReview)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	return result.RowsAffected > 0, result.Error
}

// AppendComment appends in a single statement so concurrent submissions never
// overwrite each other.
func (r *ReviewRepository) AppendComment(ctx context.Context, reviewID uint, text string) (*domain.Review, error) {
	var reviews []*domain.Review
	result := r.db.WithContext(ctx).Model(&reviews).
		Clauses(clause.Returning{}).
		Where("id = ?", reviewID).
		Update("comments", gorm.Expr("array_append(comments, ?)", text))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || len(reviews) == 0 {
		return nil, nil
	}
	return reviews[0], nil
}

func (r *ReviewRepository) AssignReviewer(ctx context.Context, reviewID, reviewerID uint) (*domain.ReviewReviewer, error) {
	edge := &domain.ReviewReviewer{ReviewID: reviewID, ReviewerID: reviewerID}
	if err := r.db.WithContext(ctx).Create(edge).Error; err != nil {
		return nil, translateError(err)
	}
	return edge, nil
}

func (r *ReviewRepository) IsReviewerAssigned(ctx context.Context, reviewID, reviewerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ReviewReviewer{}).
		Where("review_id = ? AND reviewer_id = ?", reviewID, reviewerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) ListReviewers(ctx context.Context, reviewID uint) ([]*domain.ReviewReviewer, error) {
	var edges []*domain.ReviewReviewer
	if err := r.db.WithContext(ctx).Where("review_id = ?", reviewID).Order("id").Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}
