package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clim8bit/weather-service/internal/mocks"
	"clim8bit/weather-service/internal/service"
	"clim8bit/weather-service/internal/weather"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TrackedCitiesTestSuite struct {
	suite.Suite
	mockProvider *mocks.MockOpenWeatherService
	mockSource   *mocks.MockCitySource
	ctx          context.Context
}

func (s *TrackedCitiesTestSuite) SetupTest() {
	s.mockProvider = mocks.NewMockOpenWeatherService(s.T())
	s.mockSource = mocks.NewMockCitySource(s.T())
	s.ctx = context.Background()
}

func (s *TrackedCitiesTestSuite) refresher(cities ...string) service.TrackedCitiesRefresher {
	return service.NewTrackedCitiesRefresher(s.mockProvider, s.mockSource, cities, time.Minute, 50*time.Millisecond)
}

func (s *TrackedCitiesTestSuite) TestRefreshMergesConfiguredAndFavoriteCities() {
	s.mockSource.On("Cities", mock.Anything).Return([]string{"Tokyo", "london"}, nil)
	for _, city := range []string{"London", "Paris", "Tokyo"} {
		s.mockProvider.On("FetchCurrent", mock.Anything, weather.CityQuery(city)).
			Return(weather.Current{City: city, Temperature: 10}, nil).Once()
	}

	snapshots := s.refresher("London", "Paris").Refresh(s.ctx)

	s.Require().Len(snapshots, 3)
	s.Equal([]string{"London", "Paris", "Tokyo"}, []string{snapshots[0].City, snapshots[1].City, snapshots[2].City})
	for _, snapshot := range snapshots {
		s.False(snapshot.Placeholder)
		s.Equal(snapshot.City, snapshot.Current.City)
		s.False(snapshot.RefreshedAt.IsZero())
	}
}

func (s *TrackedCitiesTestSuite) TestFailedCityGetsPlaceholder() {
	s.mockSource.On("Cities", mock.Anything).Return(nil, nil)
	s.mockProvider.On("FetchCurrent", mock.Anything, weather.CityQuery("London")).
		Return(weather.Current{City: "London"}, nil)
	s.mockProvider.On("FetchCurrent", mock.Anything, weather.CityQuery("Atlantis")).
		Return(weather.Current{}, &weather.NotFoundError{Query: "Atlantis"})

	snapshots := s.refresher("London", "Atlantis").Refresh(s.ctx)

	s.Require().Len(snapshots, 2)
	s.False(snapshots[0].Placeholder)
	s.True(snapshots[1].Placeholder)
	s.Equal("Atlantis", snapshots[1].Current.City)
	s.Equal("[CITY_ERROR] City not found: Atlantis", snapshots[1].Error)
}

func (s *TrackedCitiesTestSuite) TestSlowCityTimesOutWithoutBlockingOthers() {
	s.mockSource.On("Cities", mock.Anything).Return(nil, nil)
	s.mockProvider.On("FetchCurrent", mock.Anything, weather.CityQuery("Fast")).
		Return(weather.Current{City: "Fast"}, nil)
	s.mockProvider.On("FetchCurrent", mock.Anything, weather.CityQuery("Slow")).
		After(time.Second).
		Return(weather.Current{City: "Slow"}, nil)

	start := time.Now()
	snapshots := s.refresher("Fast", "Slow").Refresh(s.ctx)

	s.Less(time.Since(start), 500*time.Millisecond)
	s.Require().Len(snapshots, 2)
	s.False(snapshots[0].Placeholder)
	s.True(snapshots[1].Placeholder)
	s.Equal("[SERVICE_ERROR] Weather request timed out. Please try again.", snapshots[1].Error)
}

func (s *TrackedCitiesTestSuite) TestFavoriteLookupFailureKeepsConfiguredCities() {
	s.mockSource.On("Cities", mock.Anything).Return(nil, errors.New("connection refused"))
	s.mockProvider.On("FetchCurrent", mock.Anything, weather.CityQuery("Paris")).
		Return(weather.Current{City: "Paris"}, nil)

	snapshots := s.refresher("Paris").Refresh(s.ctx)

	s.Require().Len(snapshots, 1)
	s.Equal("Paris", snapshots[0].City)
}

func (s *TrackedCitiesTestSuite) TestSnapshotsReturnLatestRefresh() {
	refresher := s.refresher("Paris")
	s.Empty(refresher.Snapshots())

	s.mockSource.On("Cities", mock.Anything).Return([]string{}, nil)
	s.mockProvider.On("FetchCurrent", mock.Anything, weather.CityQuery("Paris")).
		Return(weather.Current{City: "Paris", Temperature: 18}, nil)

	refresher.Refresh(s.ctx)

	snapshots := refresher.Snapshots()
	s.Require().Len(snapshots, 1)
	s.Equal(18, snapshots[0].Current.Temperature)
}

func (s *TrackedCitiesTestSuite) TestStartRunsImmediately() {
	s.mockSource.On("Cities", mock.Anything).Return([]string{}, nil)
	s.mockProvider.On("FetchCurrent", mock.Anything, weather.CityQuery("Oslo")).
		Return(weather.Current{City: "Oslo"}, nil)

	refresher := s.refresher("Oslo")
	s.Require().NoError(refresher.Start())
	defer refresher.Stop()

	s.Eventually(func() bool {
		return len(refresher.Snapshots()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTrackedCitiesTestSuite(t *testing.T) {
	suite.Run(t, new(TrackedCitiesTestSuite))
}
