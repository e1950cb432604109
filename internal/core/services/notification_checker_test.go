package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NotificationCheckerTestSuite struct {
	suite.Suite
	ctx           context.Context
	now           time.Time
	profiles      *MockProfileRepository
	contracts     *MockRecordRepository[domain.ServiceContract]
	opps          *MockOpportunityRepository
	notifications *MockNotificationRepository
	tracker       *recordingTracker
}

func (suite *NotificationCheckerTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.profiles = new(MockProfileRepository)
	suite.contracts = new(MockRecordRepository[domain.ServiceContract])
	suite.opps = new(MockOpportunityRepository)
	suite.notifications = new(MockNotificationRepository)
	suite.tracker = &recordingTracker{}
}

func (suite *NotificationCheckerTestSuite) checker() portssvc.NotificationCheckerSvc {
	return services.NewNotificationChecker(suite.profiles, suite.contracts, suite.opps, suite.notifications,
		services.WithCheckerClock(func() time.Time { return suite.now }),
		services.WithCheckerTracker(suite.tracker))
}

func contractWindow(q domain.ListQuery) bool {
	r, ok := q.Ranges["closeDate"]
	return ok && len(q.AnyOf) == 0 &&
		r.From.Equal(mustDate("2026-03-10").Time) && r.To.Equal(mustDate("2026-03-17").Time)
}

func dealWindow(q domain.ListQuery) bool {
	r, ok := q.Ranges["closeDate"]
	stages := q.AnyOf["stage"]
	return ok && len(stages) == 2 && stages[0] == "Hot" && stages[1] == "Warm" &&
		r.From.Equal(mustDate("2026-03-10").Time) && r.To.Equal(mustDate("2026-03-17").Time)
}

func (suite *NotificationCheckerTestSuite) TestCreatesRemindersAndSkipsDuplicates() {
	since := suite.now.Add(-24 * time.Hour)
	suite.profiles.On("List", mock.Anything).Return([]domain.Profile{{ID: "u1"}}, nil).Once()
	suite.contracts.On("ListAll", mock.Anything, mock.MatchedBy(contractWindow)).Return([]domain.ServiceContract{
		{ID: "c1", ClientName: "Монгол ХХК", CloseDate: datePtr("2026-03-13")},
	}, nil).Once()
	suite.opps.On("ListAll", mock.Anything, mock.MatchedBy(dealWindow)).Return([]domain.Opportunity{
		{ID: "d1", ClientName: "Алтай", Stage: domain.StageHot, CloseDate: datePtr("2026-03-12")},
		{ID: "d2", ClientName: "Хангай", Stage: domain.StageWarm, CloseDate: datePtr("2026-03-11")},
	}, nil).Once()

	suite.notifications.On("ExistsSince", mock.Anything, "u1", domain.RelatedServiceContract, "c1", since).Return(false, nil).Once()
	suite.notifications.On("ExistsSince", mock.Anything, "u1", domain.RelatedSalesFunnel, "d1", since).Return(true, nil).Once()
	suite.notifications.On("ExistsSince", mock.Anything, "u1", domain.RelatedSalesFunnel, "d2", since).Return(false, nil).Once()

	suite.notifications.On("Insert", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "u1" &&
			n.Title == "Гэрээ дуусах дөхөж байна" &&
			n.Message == "Монгол ХХК - 3 хоногийн дараа дуусна" &&
			n.Type == domain.NotificationReminder &&
			*n.Link == "/service-contracts/c1" &&
			n.CreatedAt.Equal(suite.now)
	})).Return(echo[domain.Notification], nil).Once()
	suite.notifications.On("Insert", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Title == "Борлуулалт хаах хугацаа дөхөж байна" &&
			n.Message == "Хангай - хаах хугацаа ойрхон байна" &&
			*n.RelatedID == "d2" &&
			*n.Link == "/sales-funnel/d2"
	})).Return(echo[domain.Notification], nil).Once()

	created, err := suite.checker().CheckUpcoming(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(2, created)
	suite.notifications.AssertExpectations(suite.T())
	suite.Require().Len(suite.tracker.events, 1)
	suite.Equal(2, suite.tracker.events[0].props["count"])
}

func (suite *NotificationCheckerTestSuite) TestUserErrorsDoNotStopTheScan() {
	suite.profiles.On("List", mock.Anything).Return([]domain.Profile{{ID: "u1"}, {ID: "u2"}}, nil).Once()
	suite.contracts.On("ListAll", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
	suite.contracts.On("ListAll", mock.Anything, mock.Anything).Return([]domain.ServiceContract{}, nil).Once()
	suite.opps.On("ListAll", mock.Anything, mock.Anything).Return([]domain.Opportunity{
		{ID: "d1", ClientName: "Алтай", Stage: domain.StageHot, CloseDate: datePtr("2026-03-12")},
	}, nil).Once()
	suite.notifications.On("ExistsSince", mock.Anything, "u2", domain.RelatedSalesFunnel, "d1", mock.Anything).Return(false, nil).Once()
	suite.notifications.On("Insert", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed")).Once()

	created, err := suite.checker().CheckUpcoming(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(0, created)
	suite.Empty(suite.tracker.events)
}

func (suite *NotificationCheckerTestSuite) TestProfilesErrorFails() {
	suite.profiles.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := suite.checker().CheckUpcoming(suite.ctx)

	suite.Error(err)
}

func (suite *NotificationCheckerTestSuite) TestPastDueDaysClampToZero() {
	suite.now = time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	suite.profiles.On("List", mock.Anything).Return([]domain.Profile{{ID: "u1"}}, nil).Once()
	suite.contracts.On("ListAll", mock.Anything, mock.Anything).Return([]domain.ServiceContract{
		{ID: "c1", ClientName: "Говь", CloseDate: datePtr("2026-03-10")},
	}, nil).Once()
	suite.opps.On("ListAll", mock.Anything, mock.Anything).Return([]domain.Opportunity{}, nil).Once()
	suite.notifications.On("ExistsSince", mock.Anything, "u1", domain.RelatedServiceContract, "c1", mock.Anything).Return(false, nil).Once()
	suite.notifications.On("Insert", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Message == "Говь - 0 хоногийн дараа дуусна"
	})).Return(echo[domain.Notification], nil).Once()

	created, err := suite.checker().CheckUpcoming(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(1, created)
}

func (suite *NotificationCheckerTestSuite) TestRerunRespectsRollingWindow() {
	store := &memoryNotificationRepository{rows: []domain.Notification{{
		ID:          "earlier",
		UserID:      "u1",
		Type:        domain.NotificationReminder,
		RelatedType: strPtr(domain.RelatedServiceContract),
		RelatedID:   strPtr("c1"),
		CreatedAt:   suite.now.Add(-2 * time.Hour),
	}}}
	suite.profiles.On("List", mock.Anything).Return([]domain.Profile{{ID: "u1"}}, nil)
	suite.contracts.On("ListAll", mock.Anything, mock.Anything).Return([]domain.ServiceContract{
		{ID: "c1", ClientName: "Монгол ХХК", CloseDate: datePtr("2026-03-13")},
	}, nil)
	suite.opps.On("ListAll", mock.Anything, mock.Anything).Return([]domain.Opportunity{}, nil)
	checker := services.NewNotificationChecker(suite.profiles, suite.contracts, suite.opps, store,
		services.WithCheckerClock(func() time.Time { return suite.now }))

	created, err := checker.CheckUpcoming(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(created)
	suite.Len(store.rows, 1)

	suite.now = suite.now.Add(25 * time.Hour)
	created, err = checker.CheckUpcoming(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(1, created)
	suite.Require().Len(store.rows, 2)
	suite.Equal("Монгол ХХК - 2 хоногийн дараа дуусна", store.rows[1].Message)

	created, err = checker.CheckUpcoming(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(created)
}

func TestNotificationCheckerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationCheckerTestSuite))
}
