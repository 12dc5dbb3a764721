package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var fixedEnvironmentID = uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")

const (
	insertEnvironmentSQL = "INSERT INTO environments (id,project_id,name,created_at) VALUES ($1,$2,$3,$4) " +
		"ON CONFLICT (project_id, name) DO UPDATE SET name = EXCLUDED.name RETURNING id"
	selectEnvironmentSQL = "SELECT e.id, e.project_id, p.name, e.name, e.created_at FROM environments e " +
		"JOIN projects p ON p.id = e.project_id WHERE p.name = $1 AND e.name = $2"
)

func TestEnvironmentRepository_CreateEnvironment(t *testing.T) {
	env := domain.Environment{
		ID:        fixedEnvironmentID,
		ProjectID: fixedProjectID,
		Name:      "dev",
		CreatedAt: fixedTime,
	}
	existingID := uuid.MustParse("999e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedID      uuid.UUID
		expectErr       bool
	}{
		"created": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertEnvironmentSQL).
					WithArgs(env.ID, env.ProjectID, env.Name, env.CreatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(fixedEnvironmentID.String()))
			},
			expectedID: fixedEnvironmentID,
		},
		"already-exists": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertEnvironmentSQL).
					WithArgs(env.ID, env.ProjectID, env.Name, env.CreatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(existingID.String()))
			},
			expectedID: existingID,
		},
		"foreign-key-violation": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertEnvironmentSQL).
					WithArgs(env.ID, env.ProjectID, env.Name, env.CreatedAt).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			expectedID: uuid.Nil,
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewEnvironmentRepository(db)
			gotID, gotErr := repo.CreateEnvironment(context.Background(), env)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.Equal(t, tt.expectedID, gotID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnvironmentRepository_GetEnvironment(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedEnv     domain.Environment
		expectedFound   bool
		expectErr       bool
	}{
		"found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectEnvironmentSQL).
					WithArgs("p1", "dev").
					WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "name", "name", "created_at"}).
						AddRow(fixedEnvironmentID.String(), fixedProjectID.String(), "p1", "dev", fixedTime))
			},
			expectedEnv: domain.Environment{
				ID:          fixedEnvironmentID,
				ProjectID:   fixedProjectID,
				ProjectName: "p1",
				Name:        "dev",
				CreatedAt:   fixedTime,
			},
			expectedFound: true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectEnvironmentSQL).
					WithArgs("p1", "dev").
					WillReturnError(sql.ErrNoRows)
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectEnvironmentSQL).
					WithArgs("p1", "dev").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewEnvironmentRepository(db)
			got, found, gotErr := repo.GetEnvironment(context.Background(), "p1", "dev")
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFound, found)
				assert.Equal(t, tt.expectedEnv, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnvironmentRepository_ListEnvironments(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() // nolint:errcheck

	prodID := uuid.MustParse("423e4567-e89b-12d3-a456-426614174000")
	mock.ExpectQuery("SELECT e.id, e.project_id, p.name, e.name, e.created_at FROM environments e "+
		"JOIN projects p ON p.id = e.project_id WHERE e.project_id = $1 ORDER BY e.name").
		WithArgs(fixedProjectID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "name", "name", "created_at"}).
			AddRow(fixedEnvironmentID.String(), fixedProjectID.String(), "p1", "dev", fixedTime).
			AddRow(prodID.String(), fixedProjectID.String(), "p1", "prod", fixedTime))

	repo := NewEnvironmentRepository(db)
	got, err := repo.ListEnvironments(context.Background(), fixedProjectID)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Environment{
		{ID: fixedEnvironmentID, ProjectID: fixedProjectID, ProjectName: "p1", Name: "dev", CreatedAt: fixedTime},
		{ID: prodID, ProjectID: fixedProjectID, ProjectName: "p1", Name: "prod", CreatedAt: fixedTime},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnvironmentRepository_DeleteEnvironment(t *testing.T) {
	const deleteSQL = "DELETE FROM environments WHERE project_id = (SELECT id FROM projects WHERE name = $1) AND name = $2"

	tests := map[string]struct {
		rowsAffected  int64
		dbErr         error
		expectedFound bool
	}{
		"deleted":   {rowsAffected: 1, expectedFound: true},
		"not-found": {rowsAffected: 0},
		"error":     {dbErr: errors.New("database error")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			exp := mock.ExpectExec(deleteSQL).WithArgs("p1", "dev")
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			repo := NewEnvironmentRepository(db)
			found, gotErr := repo.DeleteEnvironment(context.Background(), "p1", "dev")
			assert.Equal(t, tt.dbErr, gotErr)
			assert.Equal(t, tt.expectedFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitEnvironmentRepository_Initialize(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() // nolint:errcheck

	i := InitEnvironmentRepository{DB: db}
	_, err = i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[domain.EnvironmentRepository]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
