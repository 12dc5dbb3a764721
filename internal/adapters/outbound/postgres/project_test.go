package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/common"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	fixedProjectID = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime      = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
)


func TestProjectRepository_UpsertProject(t *testing.T) {
	project := domain.Project{
		ID:           fixedProjectID,
		Name:         "p1",
		Requirements: "must mention the customer",
		Focus:        common.Ptr("billing"),
		CreatedAt:    fixedTime,
	}
	existingID := uuid.MustParse("999e4567-e89b-12d3-a456-426614174000")
	const upsertSQL = "INSERT INTO projects (id,name,requirements,focus,created_at) VALUES ($1,$2,$3,$4,$5) " +
		"ON CONFLICT (name) DO UPDATE SET requirements = EXCLUDED.requirements, focus = EXCLUDED.focus RETURNING id"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedID      uuid.UUID
		expectedErr     error
	}{
		"new-project": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(upsertSQL).
					WithArgs(project.ID, project.Name, project.Requirements, project.Focus, project.CreatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(fixedProjectID.String()))
			},
			expectedID: fixedProjectID,
		},
		"existing-project-keeps-id": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(upsertSQL).
					WithArgs(project.ID, project.Name, project.Requirements, project.Focus, project.CreatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(existingID.String()))
			},
			expectedID: existingID,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(upsertSQL).
					WithArgs(project.ID, project.Name, project.Requirements, project.Focus, project.CreatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectedID:  uuid.Nil,
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewProjectRepository(db)
			gotID, gotErr := repo.UpsertProject(context.Background(), project)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedID, gotID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProjectRepository_UpdateProject(t *testing.T) {
	tests := map[string]struct {
		update          domain.ProjectUpdate
		setExpectations func(mock sqlmock.Sqlmock)
		expectedFound   bool
		expectErr       bool
	}{
		"update-both-fields": {
			update: domain.ProjectUpdate{Requirements: common.Ptr("r2"), Focus: common.Ptr("f2")},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE projects SET requirements = $1, focus = $2 WHERE name = $3").
					WithArgs("r2", "f2", "p1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedFound: true,
		},
		"update-focus-only": {
			update: domain.ProjectUpdate{Focus: common.Ptr("partial focus")},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE projects SET focus = $1 WHERE name = $2").
					WithArgs("partial focus", "p1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedFound: true,
		},
		"blank-focus-stored-as-null": {
			update: domain.ProjectUpdate{Focus: common.Ptr("")},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE projects SET focus = $1 WHERE name = $2").
					WithArgs(nil, "p1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedFound: true,
		},
		"project-not-found": {
			update: domain.ProjectUpdate{Requirements: common.Ptr("r2")},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE projects SET requirements = $1 WHERE name = $2").
					WithArgs("r2", "p1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedFound: false,
		},
		"empty-update-checks-existence": {
			update: domain.ProjectUpdate{},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, name, requirements, focus, created_at FROM projects WHERE name = $1").
					WithArgs("p1").
					WillReturnRows(sqlmock.NewRows(projectFields).
						AddRow(fixedProjectID.String(), "p1", "", nil, fixedTime))
			},
			expectedFound: true,
		},
		"database-error": {
			update: domain.ProjectUpdate{Requirements: common.Ptr("r2")},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE projects SET requirements = $1 WHERE name = $2").
					WithArgs("r2", "p1").
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

			repo := NewProjectRepository(db)
			found, gotErr := repo.UpdateProject(context.Background(), "p1", tt.update)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFound, found)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProjectRepository_GetProject(t *testing.T) {
	project := domain.Project{
		ID:           fixedProjectID,
		Name:         "p1",
		Requirements: "req1",
		Focus:        common.Ptr("focus"),
		CreatedAt:    fixedTime,
	}

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedProject domain.Project
		expectedFound   bool
		expectedErr     bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, name, requirements, focus, created_at FROM projects WHERE name = $1").
					WithArgs("p1").
					WillReturnRows(sqlmock.NewRows(projectFields).
						AddRow(project.ID.String(), project.Name, project.Requirements, "focus", project.CreatedAt))
			},
			expectedProject: project,
			expectedFound:   true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, name, requirements, focus, created_at FROM projects WHERE name = $1").
					WithArgs("p1").
					WillReturnError(sql.ErrNoRows)
			},
			expectedProject: domain.Project{},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, name, requirements, focus, created_at FROM projects WHERE name = $1").
					WithArgs("p1").
					WillReturnError(errors.New("database error"))
			},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewProjectRepository(db)
			got, gotFound, gotErr := repo.GetProject(context.Background(), "p1")
			if tt.expectedErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFound, gotFound)
				assert.Equal(t, tt.expectedProject, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProjectRepository_ListProjects(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() // nolint:errcheck

	secondID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	mock.ExpectQuery("SELECT id, name, requirements, focus, created_at FROM projects ORDER BY name").
		WillReturnRows(sqlmock.NewRows(projectFields).
			AddRow(fixedProjectID.String(), "alpha", "r1", nil, fixedTime).
			AddRow(secondID.String(), "beta", "", "f", fixedTime))

	repo := NewProjectRepository(db)
	got, err := repo.ListProjects(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.Project{
		{ID: fixedProjectID, Name: "alpha", Requirements: "r1", CreatedAt: fixedTime},
		{ID: secondID, Name: "beta", Requirements: "", Focus: common.Ptr("f"), CreatedAt: fixedTime},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_DeleteProject(t *testing.T) {
	tests := map[string]struct {
		rowsAffected  int64
		dbErr         error
		expectedFound bool
	}{
		"deleted":   {rowsAffected: 1, expectedFound: true},
		"not-found": {rowsAffected: 0, expectedFound: false},
		"error":     {dbErr: errors.New("database error")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			exp := mock.ExpectExec("DELETE FROM projects WHERE name = $1").WithArgs("p1")
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			repo := NewProjectRepository(db)
			found, gotErr := repo.DeleteProject(context.Background(), "p1")
			assert.Equal(t, tt.dbErr, gotErr)
			assert.Equal(t, tt.expectedFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitProjectRepository_Initialize(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() // nolint:errcheck

	i := InitProjectRepository{DB: db}
	_, err = i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[domain.ProjectRepository]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
