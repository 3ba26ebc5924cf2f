package pg

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
}

func TestDBConn(t *testing.T) {
	mock := newMockPool(t)
	db := New(mock)

	assert.Equal(t, Database(mock), db.conn(context.Background()))

	tx := &fakeTx{}
	ctx := context.WithValue(context.Background(), txKey{}, pgx.Tx(tx))
	assert.Same(t, tx, db.conn(ctx))
}

func TestDBQueriesOutsideTransaction(t *testing.T) {
	mock := newMockPool(t)
	db := New(mock)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM payment_methods").WillReturnResult(pgxmock.NewResult("DELETE", 2))
	tag, err := db.Exec(ctx, "DELETE FROM payment_methods WHERE enabled = $1", false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tag.RowsAffected())

	mock.ExpectQuery("SELECT login FROM profiles").
		WillReturnRows(pgxmock.NewRows([]string{"login"}).AddRow("alice").AddRow("bob"))
	rows, err := db.Query(ctx, "SELECT login FROM profiles")
	require.NoError(t, err)
	var logins []string
	for rows.Next() {
		var login string
		require.NoError(t, rows.Scan(&login))
		logins = append(logins, login)
	}
	rows.Close()
	assert.Equal(t, []string{"alice", "bob"}, logins)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBQueryRowInsideTransaction(t *testing.T) {
	mock := newMockPool(t)
	db := New(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT role FROM profiles").WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"role"}).AddRow("admin"))
	mock.ExpectCommit()

	var role string
	err := NewTXManager(mock).Begin(context.Background(), func(ctx context.Context) error {
		return db.QueryRow(ctx, "SELECT role FROM profiles WHERE login = $1", "alice").Scan(&role)
	})

	require.NoError(t, err)
	assert.Equal(t, "admin", role)
	assert.NoError(t, mock.ExpectationsWereMet())
}
