package repository

import (
	"context"
	"errors"
	"testing"

	"review_project/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError:         true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role"}).
			AddRow(1, "admin@example.com", "hash", "admin"))

	user, err := repo.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.ADMIN, user.Role)
	assert.Equal(t, "hash", user.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmailAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role"}))

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmailFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByEmail(context.Background(), "admin@example.com")
	assert.Error(t, err)
}

func TestReviewRepositoryIsReviewerAssigned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "review_reviewers" WHERE review_id = \$1 AND reviewer_id = \$2`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	assigned, err := repo.IsReviewerAssigned(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, assigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryAppendComment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`UPDATE "reviews" SET "comments"=array_append`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "performance_review", "comments"}).
			AddRow(3, 1, "solid quarter", "{\"first\",\"second\"}"))

	review, err := repo.AppendComment(context.Background(), 3, "second")
	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, uint(3), review.ID)
	assert.Equal(t, []string{"first", "second"}, []string(review.Comments))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryAppendCommentMissingReview(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`UPDATE "reviews" SET "comments"=array_append`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "performance_review", "comments"}))

	review, err := repo.AppendComment(context.Background(), 42, "lost")
	require.NoError(t, err)
	assert.Nil(t, review)
}

func TestReviewRepositoryFindByReviewer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "reviews" WHERE id IN \(SELECT "?review_id"? FROM "review_reviewers" WHERE reviewer_id = \$1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "performance_review", "comments"}).
			AddRow(1, 1, "first", "{}").
			AddRow(2, 1, "second", "{}"))

	reviews, err := repo.FindByReviewer(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, uint(1), reviews[0].ID)
	assert.Equal(t, uint(2), reviews[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectExec(`DELETE FROM "reviews" WHERE "reviews"."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryCreateWithAccountRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_users_email"`))
	mock.ExpectRollback()

	err := repo.CreateWithAccount(context.Background(),
		&domain.Employee{Email: "new@example.com", Position: "QA"},
		&domain.User{Email: "new@example.com", Password: "hash", Role: domain.EMPLOYEE})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	review := &domain.Review{EmployeeID: 1, PerformanceReview: "solid quarter"}
	require.NoError(t, repo.Create(context.Background(), review))
	assert.Equal(t, uint(5), review.ID)
	assert.NotNil(t, review.Comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryFindAllOrdersByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "reviews" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "performance_review", "comments"}).
			AddRow(1, 1, "first", "{}").
			AddRow(2, 1, "second", "{x}"))

	reviews, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, []string{"x"}, []string(reviews[1].Comments))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryUpdateWritesTextOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`^UPDATE "reviews" SET "performance_review"=\$1 WHERE .*"id" = \$2 RETURNING \*$`).
		WithArgs("final", 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "performance_review", "comments"}).
			AddRow(3, 1, "final", "{\"kept\"}"))

	review := &domain.Review{ID: 3, EmployeeID: 1, PerformanceReview: "final"}
	updated, err := repo.Update(context.Background(), review)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, []string{"kept"}, []string(review.Comments))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryUpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`UPDATE "reviews" SET "performance_review"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "performance_review", "comments"}))

	updated, err := repo.Update(context.Background(), &domain.Review{ID: 9, PerformanceReview: "gone"})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryAssignReviewer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`INSERT INTO "review_reviewers"`).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	edge, err := repo.AssignReviewer(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(4), edge.ID)
	assert.Equal(t, uint(2), edge.ReviewerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryAssignReviewerDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`INSERT INTO "review_reviewers"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_review_reviewer"})

	_, err := repo.AssignReviewer(context.Background(), 1, 2)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepositoryListReviewers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "review_reviewers" WHERE review_id = \$1 ORDER BY id`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "review_id", "reviewer_id"}).
			AddRow(1, 3, 2).
			AddRow(2, 3, 5))

	edges, err := repo.ListReviewers(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, uint(5), edges[1].ReviewerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryUpdateRenamesAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "position"}).AddRow(7, "old@example.com", "QA"))
	mock.ExpectExec(`^UPDATE "employees" SET "email"=\$1,"position"=\$2 WHERE`).
		WithArgs("new@example.com", "Lead QA", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET "email"=\$1,"updated_at"=\$2 WHERE email = \$3`).
		WithArgs("new@example.com", sqlmock.AnyArg(), "old@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), &domain.Employee{ID: 7, Email: "new@example.com", Position: "Lead QA"})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryUpdateKeepsAccountWhenEmailUnchanged(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "position"}).AddRow(7, "same@example.com", "QA"))
	mock.ExpectExec(`UPDATE "employees" SET "email"=\$1,"position"=\$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), &domain.Employee{ID: 7, Email: "same@example.com", Position: "Lead QA"})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryUpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "position"}))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), &domain.Employee{ID: 9, Email: "x@example.com"})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
