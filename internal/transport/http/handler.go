package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"review_project/internal/domain"
	"review_project/internal/service"
	"review_project/internal/utils"
	"review_project/pkg/logger"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

type Handler struct {
	Auth      *service.AuthService
	Workflow  *service.ReviewWorkflow
	Employees *service.EmployeeService
	Policy    *service.AccessPolicy
}

func NewHandler(auth *service.AuthService, workflow *service.ReviewWorkflow, employees *service.EmployeeService, policy *service.AccessPolicy) *Handler {
	return &Handler{Auth: auth, Workflow: workflow, Employees: employees, Policy: policy}
}

type route struct {
	method  string
	pattern string
	handle  runtime.HandlerFunc
}

// Mux registers every REST route on a grpc-gateway ServeMux.
func (h *Handler) Mux() (*runtime.ServeMux, error) {
	routes := []route{
		{http.MethodPost, "/login", h.login},

		{http.MethodPost, "/admin/employees", h.admin(h.createEmployee)},
		{http.MethodGet, "/admin/employees", h.admin(h.listEmployees)},
		{http.MethodPut, "/admin/employees/{id}", h.admin(h.updateEmployee)},
		{http.MethodDelete, "/admin/employees/{id}", h.admin(h.deleteEmployee)},

		{http.MethodPost, "/admin/reviews", h.admin(h.createReview)},
		{http.MethodGet, "/admin/reviews", h.admin(h.listReviews)},
		{http.MethodGet, "/admin/reviews/{id}", h.admin(h.getReview)},
		{http.MethodPut, "/admin/reviews/{id}", h.admin(h.updateReview)},
		{http.MethodDelete, "/admin/reviews/{id}", h.admin(h.deleteReview)},
		{http.MethodPost, "/admin/reviews/{review_id}/assign", h.admin(h.assignReviewer)},
		{http.MethodGet, "/admin/reviews/{review_id}/reviewers", h.admin(h.listReviewers)},

		{http.MethodGet, "/employee/reviews", h.authenticated(h.listAssignedReviews)},
		{http.MethodPost, "/employee/reviews/{review_id}/feedback", h.authenticated(h.submitFeedback)},
	}

	mux := runtime.NewServeMux()
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handle); err != nil {
			return nil, err
		}
	}
	return mux, nil
}

type identityHandler func(w http.ResponseWriter, r *http.Request, params map[string]string, identity domain.Identity)

func (h *Handler) identify(r *http.Request) (domain.Identity, error) {
	token, err := utils.ExtractTokenFromRequest(r)
	if err != nil {
		return domain.Identity{}, err
	}
	return h.Auth.Authenticate(token)
}

func (h *Handler) authenticated(next identityHandler) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		identity, err := h.identify(r)
		if err != nil {
			writeError(w, err)
			return
		}
		next(w, r, params, identity)
	}
}

// admin authenticates the caller and applies the admin gate before next reads the body.
func (h *Handler) admin(next identityHandler) runtime.HandlerFunc {
	return h.authenticated(func(w http.ResponseWriter, r *http.Request, params map[string]string, identity domain.Identity) {
		if err := h.Policy.RequireAdmin(identity).Err(); err != nil {
			writeError(w, err)
			return
		}
		next(w, r, params, identity)
	})
}

func pathID(params map[string]string, name string) (uint, error) {
	id, err := strconv.ParseUint(params[name], 10, 64)
	if err != nil || id == 0 {
		return 0, domain.BadRequest("invalid " + name)
	}
	return uint(id), nil
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.BadRequest("invalid request payload")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logger.Error("Failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		logger.Logger.Error("Internal error", zap.Error(err))
	}
	writeJSON(w, code, map[string]string{"error": domain.PublicMessage(err)})
}

func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInternal):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
