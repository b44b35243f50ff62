package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLifeEvent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifeEventService(db, envelopeTestConfig())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `life_events`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	event, err := svc.CreateLifeEvent(&CreateLifeEventRequest{
		UserID:   1,
		Title:    " moved to portland ",
		Location: "   ",
	})
	require.NoError(t, err)

	assert.Equal(t, "moved to portland", event.Title)
	assert.Equal(t, "other", event.Category, "blank category falls back to other")
	assert.Nil(t, event.Location, "blank optional text is stored as NULL")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLifeEvent_Validation(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewLifeEventService(db, envelopeTestConfig())

	var vErr *ValidationError

	_, err := svc.CreateLifeEvent(&CreateLifeEventRequest{UserID: 0, Title: "x"})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateLifeEvent(&CreateLifeEventRequest{UserID: 1, Title: "  "})
	assert.ErrorAs(t, err, &vErr)
}

func TestGetLifeEvents(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLifeEventService(db, envelopeTestConfig())

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT \\* FROM `life_events` WHERE userid = \\? ORDER BY created_at DESC").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "userid", "title", "category", "created_at"}).
			AddRow(2, 1, "new job", "career", now).
			AddRow(1, 1, "moved", "relocation", now.Add(-time.Hour)))

	events, err := svc.GetLifeEvents(1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "new job", events[0].Title)
}
