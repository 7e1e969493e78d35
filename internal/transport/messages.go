package transport

import (
	"review_project/internal/domain"
	reviews_v1 "review_project/pkg/grpc/reviews.v1"
)

func EmployeeMessage(e *domain.Employee) reviews_v1.Employee {
	return reviews_v1.Employee{ID: e.ID, Email: e.Email, Position: e.Position}
}

func ReviewMessage(r *domain.Review) reviews_v1.Review {
	comments := []string(r.Comments)
	if comments == nil {
		comments = []string{}
	}
	return reviews_v1.Review{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		PerformanceReview: r.PerformanceReview,
		Comments:          comments,
		CreatedAt:         r.CreatedAt,
	}
}

func ReviewerMessage(rr *domain.ReviewReviewer) reviews_v1.ReviewReviewer {
	return reviews_v1.ReviewReviewer{ID: rr.ID, ReviewID: rr.ReviewID, ReviewerID: rr.ReviewerID}
}

func EmployeeList(employees []*domain.Employee) reviews_v1.List[reviews_v1.Employee] {
	return reviews_v1.NewList(mapAll(employees, EmployeeMessage))
}

func ReviewList(reviews []*domain.Review) reviews_v1.List[reviews_v1.Review] {
	return reviews_v1.NewList(mapAll(reviews, ReviewMessage))
}

func ReviewerList(edges []*domain.ReviewReviewer) reviews_v1.List[reviews_v1.ReviewReviewer] {
	return reviews_v1.NewList(mapAll(edges, ReviewerMessage))
}

func mapAll[T, M any](in []T, fn func(T) M) []M {
	out := make([]M, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
