package http

import (
	"net/http"

	"review_project/internal/domain"
	"review_project/internal/service"
	"review_project/internal/transport"
	reviews_v1 "review_project/pkg/grpc/reviews.v1"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req reviews_v1.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews_v1.LoginResponse{Token: token})
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request, _ map[string]string, _ domain.Identity) {
	var req reviews_v1.CreateEmployeeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	employee, err := h.Employees.CreateEmployee(r.Context(), req.Email, req.Position, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, transport.EmployeeMessage(employee))
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request, _ map[string]string, _ domain.Identity) {
	employees, err := h.Employees.ListEmployees(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transport.EmployeeList(employees).Items)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request, params map[string]string, _ domain.Identity) {
	id, err := pathID(params, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req reviews_v1.UpdateEmployeeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	employee, err := h.Employees.UpdateEmployee(r.Context(), id, service.EmployeeUpdate{Email: req.Email, Position: req.Position})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transport.EmployeeMessage(employee))
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request, params map[string]string, _ domain.Identity) {
	id, err := pathID(params, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Employees.DeleteEmployee(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request, _ map[string]string, _ domain.Identity) {
	var req reviews_v1.CreateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	review, err := h.Workflow.CreateReview(r.Context(), req.EmployeeID, req.PerformanceReview)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, transport.ReviewMessage(review))
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request, _ map[string]string, _ domain.Identity) {
	reviews, err := h.Workflow.ListReviews(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transport.ReviewList(reviews).Items)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request, params map[string]string, _ domain.Identity) {
	id, err := pathID(params, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	review, err := h.Workflow.GetReview(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transport.ReviewMessage(review))
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request, params map[string]string, _ domain.Identity) {
	id, err := pathID(params, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req reviews_v1.UpdateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	review, err := h.Workflow.UpdateReview(r.Context(), id, req.PerformanceReview)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transport.ReviewMessage(review))
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request, params map[string]string, _ domain.Identity) {
	id, err := pathID(params, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Workflow.DeleteReview(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) assignReviewer(w http.ResponseWriter, r *http.Request, params map[string]string, _ domain.Identity) {
	reviewID, err := pathID(params, "review_id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req reviews_v1.AssignReviewerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	edge, err := h.Workflow.AssignReviewer(r.Context(), reviewID, req.ReviewerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, transport.ReviewerMessage(edge))
}

func (h *Handler) listReviewers(w http.ResponseWriter, r *http.Request, params map[string]string, _ domain.Identity) {
	reviewID, err := pathID(params, "review_id")
	if err != nil {
		writeError(w, err)
		return
	}
	edges, err := h.Workflow.ListReviewers(r.Context(), reviewID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transport.ReviewerList(edges).Items)
}

func (h *Handler) listAssignedReviews(w http.ResponseWriter, r *http.Request, _ map[string]string, identity domain.Identity) {
	reviews, err := h.Workflow.ListAssignedReviews(r.Context(), identity.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transport.ReviewList(reviews).Items)
}

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request, params map[string]string, identity domain.Identity) {
	reviewID, err := pathID(params, "review_id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req reviews_v1.SubmitFeedbackRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	review, err := h.Workflow.SubmitFeedback(r.Context(), reviewID, identity.Email, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, transport.ReviewMessage(review))
}
