package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/theblakearruda/memory-app-backend/config"
)

// stubWeather returns a fixed triple without any outbound calls
type stubWeather struct {
	result WeatherResult
}

func (s *stubWeather) GetWeatherForLocation(ctx context.Context, location string) WeatherResult {
	return s.result
}

func resolvedTriple() WeatherResult {
	weather := "rain"
	code := 65
	tempF := 70
	return WeatherResult{Weather: &weather, WeatherCode: &code, TempF: &tempF}
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func envelopeTestConfig() *config.Config {
	return &config.Config{
		EnvelopeTable:       "memories",
		EnvelopeOrderColumn: "date",
	}
}

func TestCreateEnvelope_Success(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnvelopeService(db, envelopeTestConfig(), &stubWeather{result: resolvedTriple()})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `memories`").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	before := time.Now().UTC()
	envelope, err := svc.CreateEnvelope(context.Background(), &CreateEnvelopeRequest{
		UserID:   1,
		PhotoURL: " http://x/a.jpg ",
		Caption:  "hi",
		Location: "Portland",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 7, envelope.ID)
	assert.EqualValues(t, 1, envelope.UserID)
	assert.Equal(t, "http://x/a.jpg", envelope.PhotoURL, "photo URL is trimmed")
	assert.False(t, envelope.IsLegacy)
	assert.WithinDuration(t, before, envelope.Date, 5*time.Second)
	require.NotNil(t, envelope.Weather)
	assert.Equal(t, "rain", *envelope.Weather)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEnvelope_NoWeatherStaysNil(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnvelopeService(db, envelopeTestConfig(), &stubWeather{})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `memories`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	envelope, err := svc.CreateEnvelope(context.Background(), &CreateEnvelopeRequest{
		UserID:   1,
		PhotoURL: "http://x/a.jpg",
	})
	require.NoError(t, err)

	assert.Nil(t, envelope.Weather)
	assert.Nil(t, envelope.WeatherCode)
	assert.Nil(t, envelope.TempF)
}

func TestCreateEnvelope_Validation(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnvelopeService(db, envelopeTestConfig(), &stubWeather{})

	cases := []struct {
		name string
		req  CreateEnvelopeRequest
		msg  string
	}{
		{"zero userid", CreateEnvelopeRequest{UserID: 0, PhotoURL: "http://x/a.jpg"}, "valid userid required"},
		{"negative userid", CreateEnvelopeRequest{UserID: -3, PhotoURL: "http://x/a.jpg"}, "valid userid required"},
		{"missing photourl", CreateEnvelopeRequest{UserID: 1}, "photourl required"},
		{"blank photourl", CreateEnvelopeRequest{UserID: 1, PhotoURL: "   "}, "photourl required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEnvelope(context.Background(), &tc.req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.msg, vErr.Message)
		})
	}

	// Nothing may have reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLegacyEnvelope_Success(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnvelopeService(db, envelopeTestConfig(), &stubWeather{})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `memories`").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	envelope, err := svc.CreateLegacyEnvelope(context.Background(), &CreateLegacyEnvelopeRequest{
		CreateEnvelopeRequest: CreateEnvelopeRequest{
			UserID:   1,
			PhotoURL: "http://x/a.jpg",
		},
		LegacyDate: "1999-12-31",
	})
	require.NoError(t, err)

	assert.True(t, envelope.IsLegacy)
	want := time.Date(1999, 12, 31, 12, 0, 0, 0, time.Local).UTC()
	assert.Equal(t, want, envelope.Date)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLegacyEnvelope_BadDateRejected(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnvelopeService(db, envelopeTestConfig(), &stubWeather{})

	for _, date := range []string{"", "not a date", "2020-13-45"} {
		_, err := svc.CreateLegacyEnvelope(context.Background(), &CreateLegacyEnvelopeRequest{
			CreateEnvelopeRequest: CreateEnvelopeRequest{UserID: 1, PhotoURL: "http://x/a.jpg"},
			LegacyDate:            date,
		})
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, "date %q", date)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEnvelope_Idempotent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnvelopeService(db, envelopeTestConfig(), &stubWeather{})

	// First delete hits a row, second does not; both succeed
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `memories`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `memories`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, svc.DeleteEnvelope(42))
	assert.NoError(t, svc.DeleteEnvelope(42))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEnvelope_ZeroID(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewEnvelopeService(db, envelopeTestConfig(), &stubWeather{})

	var vErr *ValidationError
	assert.ErrorAs(t, svc.DeleteEnvelope(0), &vErr)
}

func TestGetAllEnvelopes(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnvelopeService(db, envelopeTestConfig(), &stubWeather{})

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "userid", "photourl", "caption", "location", "date", "is_legacy", "weather", "weather_code", "temp_f", "created_at"}).
		AddRow(2, 1, "http://x/b.jpg", "", "", now, false, nil, nil, nil, now).
		AddRow(1, 1, "http://x/a.jpg", "", "", now.Add(-time.Hour), true, "rain", 65, 70, now)

	mock.ExpectQuery("SELECT \\* FROM `memories` ORDER BY date DESC").WillReturnRows(rows)

	envelopes, err := svc.GetAllEnvelopes()
	require.NoError(t, err)
	require.Len(t, envelopes, 2)
	assert.EqualValues(t, 2, envelopes[0].ID)
	assert.EqualValues(t, 1, envelopes[1].ID)
	assert.True(t, envelopes[1].IsLegacy)
}

func TestGetAllEnvelopes_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEnvelopeService(db, envelopeTestConfig(), &stubWeather{})

	mock.ExpectQuery("SELECT \\* FROM `memories`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	envelopes, err := svc.GetAllEnvelopes()
	require.NoError(t, err)
	assert.NotNil(t, envelopes)
	assert.Empty(t, envelopes)
}
