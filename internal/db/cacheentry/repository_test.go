package cacheentry_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"clim8bit/weather-service/internal/db/cacheentry"
	"clim8bit/weather-service/internal/inmemorycache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ inmemorycache.Cache = (*cacheentry.Store)(nil)

type CacheStoreSuite struct {
	suite.Suite
	mock  sqlmock.Sqlmock
	store *cacheentry.Store
	ctx   context.Context
}

func (s *CacheStoreSuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	s.Require().NoError(err)

	s.store = cacheentry.NewStore(gdb)
	s.ctx = context.Background()
}

func (s *CacheStoreSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *CacheStoreSuite) rows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "cache_key", "payload", "fetched_at", "expires_at"})
}

func (s *CacheStoreSuite) TestGet() {
	queryRegex := `SELECT \* FROM "weather_cache_entries" WHERE cache_key = \$1`

	s.Run("Returns a fresh entry", func() {
		now := time.Now()
		s.mock.ExpectQuery(queryRegex).
			WithArgs("weather_city_London", 1).
			WillReturnRows(s.rows().AddRow(1, "weather_city_London", []byte(`{"name":"London"}`), now, now.Add(time.Minute)))

		data, ok, err := s.store.Get(s.ctx, "weather_city_London")

		s.Require().NoError(err)
		s.True(ok)
		s.Equal(`{"name":"London"}`, string(data))
	})

	s.Run("Treats an expired entry as a miss", func() {
		past := time.Now().Add(-time.Hour)
		s.mock.ExpectQuery(queryRegex).
			WithArgs("weather_city_Oslo", 1).
			WillReturnRows(s.rows().AddRow(2, "weather_city_Oslo", []byte(`{}`), past, past.Add(10*time.Minute)))

		data, ok, err := s.store.Get(s.ctx, "weather_city_Oslo")

		s.Require().NoError(err)
		s.False(ok)
		s.Nil(data)
	})

	s.Run("Treats a missing row as a miss", func() {
		s.mock.ExpectQuery(queryRegex).
			WithArgs("weather_city_Nowhere", 1).
			WillReturnRows(s.rows())

		_, ok, err := s.store.Get(s.ctx, "weather_city_Nowhere")

		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("Wraps database errors", func() {
		s.mock.ExpectQuery(queryRegex).
			WithArgs("weather_city_Lima", 1).
			WillReturnError(errors.New("connection error"))

		_, ok, err := s.store.Get(s.ctx, "weather_city_Lima")

		s.Require().Error(err)
		s.False(ok)
		s.Contains(err.Error(), "connection error")
	})
}

func (s *CacheStoreSuite) TestSetUpserts() {
	s.mock.ExpectBegin()
	s.mock.ExpectQuery(`INSERT INTO "weather_cache_entries" .* ON CONFLICT \("cache_key"\) DO UPDATE SET "payload"="excluded"."payload"`).
		WithArgs("forecast_city_Paris", []byte(`{"list":[]}`), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	s.mock.ExpectCommit()

	err := s.store.Set(s.ctx, "forecast_city_Paris", []byte(`{"list":[]}`), 10*time.Minute)

	s.Require().NoError(err)
}

func TestCacheStoreSuite(t *testing.T) {
	suite.Run(t, new(CacheStoreSuite))
}
