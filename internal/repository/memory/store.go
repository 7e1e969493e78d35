// Package memory provides in-process stores with the same contracts as the
// PostgreSQL repositories. All three stores share one lock so multi-table
// operations are atomic.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"review_project/internal/domain"
)

var ErrDuplicate = domain.ErrDuplicateKey
var ErrForeignKey = errors.New("foreign key constraint violated")

type DB struct {
	mu sync.RWMutex

	users     map[uint]domain.User
	employees map[uint]domain.Employee
	reviews   map[uint]domain.Review
	edges     map[uint]domain.ReviewReviewer

	nextUser, nextEmployee, nextReview, nextEdge uint
	now                                          func() time.Time
}

func NewDB() *DB {
	return &DB{
		users:     make(map[uint]domain.User),
		employees: make(map[uint]domain.Employee),
		reviews:   make(map[uint]domain.Review),
		edges:     make(map[uint]domain.ReviewReviewer),
		now:       time.Now,
	}
}

func (db *DB) Users() *UserStore {
	return &UserStore{db: db}
}

func (db *DB) Employees() *EmployeeStore {
	return &EmployeeStore{db: db}
}

func (db *DB) Reviews() *ReviewStore {
	return &ReviewStore{db: db}
}

func (db *DB) insertUser(user *domain.User) error {
	for _, u := range db.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}
	db.nextUser++
	now := db.now()
	user.ID = db.nextUser
	user.CreatedAt, user.UpdatedAt = now, now
	db.users[user.ID] = *user
	return nil
}

func (db *DB) insertEmployee(employee *domain.Employee) error {
	for _, e := range db.employees {
		if e.Email == employee.Email {
			return ErrDuplicate
		}
	}
	db.nextEmployee++
	employee.ID = db.nextEmployee
	db.employees[employee.ID] = *employee
	return nil
}

func copyReview(r domain.Review) *domain.Review {
	r.Comments = append([]string{}, r.Comments...)
	return &r
}

type UserStore struct {
	db *DB
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for _, u := range s.db.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.db.insertUser(user)
}

type EmployeeStore struct {
	db *DB
}

func (s *EmployeeStore) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for _, e := range s.db.employees {
		if e.Email == email {
			employee := e
			return &employee, nil
		}
	}
	return nil, nil
}

func (s *EmployeeStore) FindByID(_ context.Context, id uint) (*domain.Employee, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	e, ok := s.db.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *EmployeeStore) Create(_ context.Context, employee *domain.Employee) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.db.insertEmployee(employee)
}

func (s *EmployeeStore) CreateWithAccount(_ context.Context, employee *domain.Employee, user *domain.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, u := range s.db.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}
	if err := s.db.insertEmployee(employee); err != nil {
		return err
	}
	return s.db.insertUser(user)
}

// Update writes the employee row. When the email changes, the login account holding
// the old email is renamed with it.
func (s *EmployeeStore) Update(_ context.Context, employee *domain.Employee) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	current, ok := s.db.employees[employee.ID]
	if !ok {
		return false, nil
	}
	for id, e := range s.db.employees {
		if id != employee.ID && e.Email == employee.Email {
			return false, ErrDuplicate
		}
	}

	if current.Email != employee.Email {
		var accountID uint
		for id, u := range s.db.users {
			switch u.Email {
			case employee.Email:
				return false, ErrDuplicate
			case current.Email:
				accountID = id
			}
		}
		if accountID != 0 {
			account := s.db.users[accountID]
			account.Email = employee.Email
			account.UpdatedAt = s.db.now()
			s.db.users[accountID] = account
		}
	}

	s.db.employees[employee.ID] = *employee
	return true, nil
}

// Delete removes the employee together with its reviews and assignment edges,
// matching the cascading foreign keys of the SQL schema.
func (s *EmployeeStore) Delete(_ context.Context, id uint) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.employees[id]; !ok {
		return false, nil
	}
	delete(s.db.employees, id)
	for reviewID, r := range s.db.reviews {
		if r.EmployeeID == id {
			s.db.deleteReview(reviewID)
		}
	}
	for edgeID, edge := range s.db.edges {
		if edge.ReviewerID == id {
			delete(s.db.edges, edgeID)
		}
	}
	return true, nil
}

func (s *EmployeeStore) ListAll(_ context.Context) ([]*domain.Employee, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := make([]*domain.Employee, 0, len(s.db.employees))
	for _, e := range s.db.employees {
		employee := e
		out = append(out, &employee)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type ReviewStore struct {
	db *DB
}

func (s *ReviewStore) Create(_ context.Context, review *domain.Review) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.employees[review.EmployeeID]; !ok {
		return ErrForeignKey
	}
	s.db.nextReview++
	review.ID = s.db.nextReview
	review.CreatedAt = s.db.now()
	if review.Comments == nil {
		review.Comments = []string{}
	}
	s.db.reviews[review.ID] = *copyReview(*review)
	return nil
}

func (s *ReviewStore) FindAll(_ context.Context) ([]*domain.Review, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := make([]*domain.Review, 0, len(s.db.reviews))
	for _, r := range s.db.reviews {
		out = append(out, copyReview(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *ReviewStore) FindByID(_ context.Context, id uint) (*domain.Review, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	r, ok := s.db.reviews[id]
	if !ok {
		return nil, nil
	}
	return copyReview(r), nil
}

func (s *ReviewStore) FindByReviewer(_ context.Context, reviewerID uint) ([]*domain.Review, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	seen := make(map[uint]bool)
	out := []*domain.Review{}
	for _, edge := range s.db.edges {
		if edge.ReviewerID != reviewerID || seen[edge.ReviewID] {
			continue
		}
		if r, ok := s.db.reviews[edge.ReviewID]; ok {
			seen[edge.ReviewID] = true
			out = append(out, copyReview(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update writes the review text. The stored comment log is kept as is.
func (s *ReviewStore) Update(_ context.Context, review *domain.Review) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	stored, ok := s.db.reviews[review.ID]
	if !ok {
		return false, nil
	}
	stored.PerformanceReview = review.PerformanceReview
	s.db.reviews[review.ID] = stored
	review.Comments = append([]string{}, stored.Comments...)
	return true, nil
}

func (s *ReviewStore) Delete(_ context.Context, id uint) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.reviews[id]; !ok {
		return false, nil
	}
	s.db.deleteReview(id)
	return true, nil
}

func (db *DB) deleteReview(id uint) {
	delete(db.reviews, id)
	for edgeID, edge := range db.edges {
		if edge.ReviewID == id {
			delete(db.edges, edgeID)
		}
	}
}

func (s *ReviewStore) AppendComment(_ context.Context, reviewID uint, text string) (*domain.Review, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	r, ok := s.db.reviews[reviewID]
	if !ok {
		return nil, nil
	}
	r.Comments = append(append([]string{}, r.Comments...), text)
	s.db.reviews[reviewID] = r
	return copyReview(r), nil
}

func (s *ReviewStore) AssignReviewer(_ context.Context, reviewID, reviewerID uint) (*domain.ReviewReviewer, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.reviews[reviewID]; !ok {
		return nil, ErrForeignKey
	}
	if _, ok := s.db.employees[reviewerID]; !ok {
		return nil, ErrForeignKey
	}
	for _, edge := range s.db.edges {
		if edge.ReviewID == reviewID && edge.ReviewerID == reviewerID {
			return nil, ErrDuplicate
		}
	}
	s.db.nextEdge++
	edge := domain.ReviewReviewer{ID: s.db.nextEdge, ReviewID: reviewID, ReviewerID: reviewerID}
	s.db.edges[edge.ID] = edge
	return &edge, nil
}

func (s *ReviewStore) IsReviewerAssigned(_ context.Context, reviewID, reviewerID uint) (bool, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for _, edge := range s.db.edges {
		if edge.ReviewID == reviewID && edge.ReviewerID == reviewerID {
			return true, nil
		}
	}
	return false, nil
}

func (s *ReviewStore) ListReviewers(_ context.Context, reviewID uint) ([]*domain.ReviewReviewer, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	out := []*domain.ReviewReviewer{}
	for _, e := range s.db.edges {
		if e.ReviewID == reviewID {
			edge := e
			out = append(out, &edge)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
