package records

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/backoffice/internal/common"
)

func newRepoWithMock(t *testing.T, dialect Dialect) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLRepository(db, dialect), mock
}

func TestSQLRepository_Placeholders(t *testing.T) {
	pg := NewSQLRepository(nil, DialectPostgres)
	lite := NewSQLRepository(nil, DialectSQLite)
	q := `UPDATE records SET name = $1 WHERE kind = $10`
	assert.Equal(t, q, pg.q(q))
	assert.Equal(t, `UPDATE records SET name = ?1 WHERE kind = ?10`, lite.q(q))
}

func TestSQLRepository_FindAll(t *testing.T) {
	repo, mock := newRepoWithMock(t, DialectPostgres)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, body FROM records WHERE kind = $1 ORDER BY id`)).
		WithArgs("Tache").
		WillReturnRows(sqlmock.NewRows([]string{"id", "body"}).
			AddRow(1, `{"name":"alpha","contenu":"x"}`).
			AddRow(2, `{"name":"bravo","contenu":"y"}`))

	got, err := repo.FindAll(context.Background(), "Tache")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bravo", got[1].Name())
	assert.Equal(t, "Tache", got[1].Kind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_FindAll_BadBody(t *testing.T) {
	repo, mock := newRepoWithMock(t, DialectPostgres)
	mock.ExpectQuery(`SELECT id, body FROM records`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body"}).AddRow(1, `not json`))

	_, err := repo.FindAll(context.Background(), "Tache")
	assert.ErrorContains(t, err, "decode record 1")
}

func TestSQLRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t, DialectPostgres)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, body FROM records WHERE kind = $1 AND id = $2`)).
		WithArgs("Forum", int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "Forum", 7)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_FindByName_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t, DialectPostgres)
	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT id, body FROM records WHERE kind = \$1 AND name = \$2`).
		WithArgs("Forum", "general").
		WillReturnError(boom)

	_, err := repo.FindByName(context.Background(), "Forum", "general")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLRepository_Create(t *testing.T) {
	repo, mock := newRepoWithMock(t, DialectPostgres)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO records (kind, name, body) VALUES ($1, $2, $3) RETURNING id, body`)).
		WithArgs("Tache", "alpha", `{"contenu":"x","name":"alpha"}`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body"}).AddRow(5, `{"contenu":"x","name":"alpha"}`))

	got, err := repo.Create(context.Background(), "Tache", Fields{"id": 1.0, "name": "alpha", "contenu": "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t, DialectSQLite)
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE records SET name = ?1, body = ?2 WHERE kind = ?3 AND id = ?4 RETURNING id, body`)).
		WithArgs("", `{"contenu":"hello"}`, "Message", int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body"}))

	_, err := repo.Update(context.Background(), "Message", 9, Fields{"contenu": "hello"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_Delete(t *testing.T) {
	repo, mock := newRepoWithMock(t, DialectPostgres)
	q := regexp.QuoteMeta(`DELETE FROM records WHERE kind = $1 AND id = $2`)
	mock.ExpectExec(q).WithArgs("Forum", int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("Forum", int64(2)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "Forum", 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), "Forum", 2), common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
