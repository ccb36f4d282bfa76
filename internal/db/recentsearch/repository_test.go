package recentsearch_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"clim8bit/weather-service/internal/db/recentsearch"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type RecentSearchRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo recentsearch.Repository
	ctx  context.Context
}

func (s *RecentSearchRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = recentsearch.NewRepository(s.DB)
	s.ctx = context.Background()
}

func (s *RecentSearchRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *RecentSearchRepositorySuite) TestAdd() {
	s.Run("Successfully records a search", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "recent_searches"`).
			WithArgs("user-1", "Istanbul", "TR", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		err := s.repo.Add(s.ctx, "user-1", "Istanbul", "TR")

		s.Require().NoError(err)
	})

	s.Run("Returns error when database operation fails", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "recent_searches"`).
			WithArgs("user-1", "Paris", "FR", sqlmock.AnyArg()).
			WillReturnError(errors.New("database error"))
		s.mock.ExpectRollback()

		err := s.repo.Add(s.ctx, "user-1", "Paris", "FR")

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func (s *RecentSearchRepositorySuite) TestList() {
	queryRegex := `SELECT \* FROM "recent_searches" WHERE user_id = \$1 ORDER BY searched_at DESC LIMIT \$2`

	s.Run("Returns newest searches first", func() {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "user_id", "city", "country", "searched_at"}).
			AddRow(2, "user-1", "London", "GB", now).
			AddRow(1, "user-1", "Tokyo", "JP", now.Add(-time.Hour))

		s.mock.ExpectQuery(queryRegex).
			WithArgs("user-1", recentsearch.DefaultLimit).
			WillReturnRows(rows)

		searches, err := s.repo.List(s.ctx, "user-1", 0)

		s.Require().NoError(err)
		s.Require().Len(searches, 2)
		s.Equal("London", searches[0].City)
		s.Equal("Tokyo", searches[1].City)
	})

	s.Run("Returns an empty slice when nothing matches", func() {
		s.mock.ExpectQuery(queryRegex).
			WithArgs("user-2", 3).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "city", "country", "searched_at"}))

		searches, err := s.repo.List(s.ctx, "user-2", 3)

		s.Require().NoError(err)
		s.NotNil(searches)
		s.Empty(searches)
	})

	s.Run("Returns error when database query fails", func() {
		s.mock.ExpectQuery(queryRegex).
			WithArgs("user-1", recentsearch.DefaultLimit).
			WillReturnError(errors.New("connection error"))

		searches, err := s.repo.List(s.ctx, "user-1", 0)

		s.Require().EqualError(err, "connection error")
		s.Nil(searches)
	})
}

func (s *RecentSearchRepositorySuite) TestClear() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(`DELETE FROM "recent_searches" WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 4))
	s.mock.ExpectCommit()

	s.Require().NoError(s.repo.Clear(s.ctx, "user-1"))
}

func TestRecentSearchRepositorySuite(t *testing.T) {
	suite.Run(t, new(RecentSearchRepositorySuite))
}
