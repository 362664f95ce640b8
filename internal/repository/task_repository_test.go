package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (TaskRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	return NewTaskRepository(gdb), mock
}

// The bulk delete must run inside a single transaction so a dashboard reset
// cannot leave a partially cleared planner.
func TestDeleteAllByOwner_SingleTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE owner_id = ?")).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	deleted, err := repo.DeleteAllByOwner(7)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllByOwner_RollsBackOnError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE owner_id = ?")).
		WithArgs(7).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := repo.DeleteAllByOwner(7)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Task rows are removed outright; the model has no soft-delete column, so
// no deleted_at update may appear in the generated SQL.
func TestDelete_IsHardDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE `tasks`.`id` = ?")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_OrdersByDueDate(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title"}).
		AddRow(2, 7, "sooner").
		AddRow(1, 7, "later")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tasks` WHERE owner_id = ? ORDER BY due_date ASC")).
		WithArgs(7).
		WillReturnRows(rows)

	tasks, err := repo.ListByOwner(7)
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "sooner", tasks[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
