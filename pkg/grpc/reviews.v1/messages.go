package reviews_v1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Messages travel as google.protobuf.Struct on the wire. The types below are their
// decoded form and share the JSON field names used by the REST API.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type IDRequest struct {
	ID uint `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type Employee struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Position string `json:"position"`
}

type CreateEmployeeRequest struct {
	Email    string `json:"email"`
	Position string `json:"position"`
	Password string `json:"password,omitempty"`
}

type UpdateEmployeeRequest struct {
	ID       uint    `json:"id"`
	Email    *string `json:"email,omitempty"`
	Position *string `json:"position,omitempty"`
}

type Review struct {
	ID                uint      `json:"id"`
	EmployeeID        uint      `json:"employee_id"`
	PerformanceReview string    `json:"performance_review"`
	Comments          []string  `json:"comments"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateReviewRequest struct {
	EmployeeID        uint   `json:"employee_id"`
	PerformanceReview string `json:"performance_review"`
}

type UpdateReviewRequest struct {
	ID                uint    `json:"id"`
	PerformanceReview *string `json:"performance_review,omitempty"`
}

type AssignReviewerRequest struct {
	ReviewID   uint `json:"review_id"`
	ReviewerID uint `json:"reviewer_id"`
}

type ReviewReviewer struct {
	ID         uint `json:"id"`
	ReviewID   uint `json:"review_id"`
	ReviewerID uint `json:"reviewer_id"`
}

type SubmitFeedbackRequest struct {
	ReviewID uint   `json:"review_id"`
	Comment  string `json:"comment"`
}

// List wraps repeated results, since a Struct cannot be a bare array.
type List[T any] struct {
	Items []T `json:"items"`
}

func NewList[T any](items []T) List[T] {
	if items == nil {
		items = []T{}
	}
	return List[T]{Items: items}
}

// Encode converts a message into its Struct form.
func Encode(v any) (*structpb.Struct, error) {
	if v == nil {
		return &structpb.Struct{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode fills v from a Struct. A nil Struct decodes as an empty object.
func Decode(in *structpb.Struct, v any) error {
	if in == nil {
		in = &structpb.Struct{}
	}
	raw, err := protojson.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
