package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaultGroups(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGroupService(db, envelopeTestConfig())

	mock.ExpectBegin()
	for range DefaultGroupNames {
		mock.ExpectExec("INSERT INTO `groups`").WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, svc.SeedDefaultGroups(1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDefaultGroups_AlreadySeeded(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGroupService(db, envelopeTestConfig())

	// Conflicting rows are skipped, the seed still succeeds
	mock.ExpectBegin()
	for range DefaultGroupNames {
		mock.ExpectExec("INSERT INTO `groups`").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, svc.SeedDefaultGroups(1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedDefaultGroups_MissingUser(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewGroupService(db, envelopeTestConfig())

	var vErr *ValidationError
	assert.ErrorAs(t, svc.SeedDefaultGroups(0), &vErr)
}

func TestGetGroups(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGroupService(db, envelopeTestConfig())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT \\* FROM `groups` WHERE userid = \\? ORDER BY is_default DESC, created_at ASC").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "userid", "name", "is_default", "created_at"}).
			AddRow(1, 1, "friends", true, now).
			AddRow(4, 1, "hiking club", false, now))
	mock.ExpectQuery("SELECT `people`\\..* FROM `people` JOIN group_members").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "userid", "name", "contact"}))
	mock.ExpectQuery("SELECT `people`\\..* FROM `people` JOIN group_members").
		WithArgs(uint(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "userid", "name", "contact"}).
			AddRow(9, 1, "sam", "sam@example.com"))

	groups, err := svc.GetGroups(1)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "friends", groups[0].Name)
	assert.Empty(t, groups[0].Members)
	require.Len(t, groups[1].Members, 1)
	assert.Equal(t, "sam", groups[1].Members[0].Name)
}

func TestCreateGroup(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGroupService(db, envelopeTestConfig())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `groups`").WillReturnResult(sqlmock.NewResult(5, 1))
	// Blank member entries are skipped entirely
	mock.ExpectExec("INSERT INTO `people`").WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectExec("INSERT INTO `group_members`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	group, err := svc.CreateGroup(1, " book club ", []GroupMemberInput{
		{Name: "   "},
		{Name: "ana", Contact: "ana@example.com"},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 5, group.ID)
	assert.Equal(t, "book club", group.Name)
	assert.False(t, group.IsDefault)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroup_RollsBackOnMemberFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGroupService(db, envelopeTestConfig())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `groups`").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("INSERT INTO `people`").WillReturnError(errors.New("people table is full"))
	mock.ExpectRollback()

	_, err := svc.CreateGroup(1, "book club", []GroupMemberInput{{Name: "ana"}})
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroup_Validation(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewGroupService(db, envelopeTestConfig())

	var vErr *ValidationError

	_, err := svc.CreateGroup(0, "book club", nil)
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateGroup(1, "  ", nil)
	assert.ErrorAs(t, err, &vErr)
}
