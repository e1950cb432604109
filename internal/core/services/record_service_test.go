package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sales_crm_backend/internal/apperrors"
	"github.com/SscSPs/sales_crm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/sales_crm_backend/internal/core/ports/services"
	"github.com/SscSPs/sales_crm_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SalaryServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockRepo   *MockSalaryRepository
	authorizer *MockAuthorizer
	publisher  *recordingPublisher
	service    portssvc.SalarySvcFacade
}

func (suite *SalaryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockSalaryRepository)
	suite.authorizer = new(MockAuthorizer)
	suite.publisher = &recordingPublisher{}
	suite.service = services.NewSalaryService(suite.mockRepo,
		services.WithRecordAuthorizer(suite.authorizer),
		services.WithRevalidation(suite.publisher),
	)
}

func validSalary() domain.Salary {
	date, _ := domain.ParseDate("2026-03-25")
	return domain.Salary{
		EmployeeName:  "Бат",
		BaseSalary:    decimal.NewFromInt(2000000),
		Bonus:         decPtr("300000"),
		Deductions:    decPtr("150000"),
		NetSalary:     decimal.NewFromInt(1),
		PaymentDate:   date,
		PaymentMonth:  "2026-03",
		PaymentStatus: domain.PaymentPending,
	}
}

func (suite *SalaryServiceTestSuite) TestCreate_RecomputesNetSalary() {
	suite.mockRepo.On("Insert", suite.ctx, mock.MatchedBy(func(s domain.Salary) bool {
		return s.NetSalary.Equal(decimal.NewFromInt(2150000)) &&
			s.PaymentStatus == domain.PaymentPending &&
			s.CreatedBy != nil && *s.CreatedBy == "actor-1" &&
			s.ID != ""
	})).Return(echo[domain.Salary], nil).Once()

	created, err := suite.service.Create(suite.ctx, "actor-1", validSalary())

	suite.Require().NoError(err)
	suite.True(created.NetSalary.Equal(decimal.NewFromInt(2150000)))
	suite.Equal([]string{services.PathSalary, services.PathDashboard}, suite.publisher.Published())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestCreate_RequiresActor() {
	_, err := suite.service.Create(suite.ctx, "", validSalary())

	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
	suite.mockRepo.AssertNotCalled(suite.T(), "Insert", mock.Anything, mock.Anything)
	suite.Empty(suite.publisher.Published())
}

func (suite *SalaryServiceTestSuite) TestCreate_ValidationError() {
	s := validSalary()
	s.BaseSalary = decimal.Zero
	s.PaymentMonth = "03/2026"

	_, err := suite.service.Create(suite.ctx, "actor-1", s)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "PaymentMonth")
	suite.mockRepo.AssertNotCalled(suite.T(), "Insert", mock.Anything, mock.Anything)
}

func (suite *SalaryServiceTestSuite) TestUpdate_MergesPatchAndRecomputes() {
	stored := validSalary()
	stored.ID = "sal-1"
	stored.CreatedBy = strPtr("actor-1")
	stored.Derive()
	suite.mockRepo.On("FindByID", suite.ctx, "sal-1").Return(&stored, nil).Once()
	suite.authorizer.On("AuthorizeRecordAction", suite.ctx, "actor-1", stored.CreatedBy).Return(nil).Once()
	suite.mockRepo.On("Update", suite.ctx, mock.MatchedBy(func(s domain.Salary) bool {
		return s.NetSalary.Equal(decimal.NewFromInt(2350000)) && s.EmployeeName == "Бат"
	})).Return(echo[domain.Salary], nil).Once()

	patch := domain.PatchFunc[domain.Salary](func(s *domain.Salary) {
		s.Bonus = decPtr("500000")
		s.NetSalary = decimal.NewFromInt(99)
	})
	updated, err := suite.service.Update(suite.ctx, "actor-1", "sal-1", patch)

	suite.Require().NoError(err)
	suite.True(updated.NetSalary.Equal(decimal.NewFromInt(2350000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestUpdate_NotFound() {
	suite.mockRepo.On("FindByID", suite.ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Update(suite.ctx, "actor-1", "gone", nil)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SalaryServiceTestSuite) TestDelete_ForbiddenLeavesRow() {
	stored := validSalary()
	stored.ID = "sal-1"
	stored.CreatedBy = strPtr("someone-else")
	suite.mockRepo.On("FindByID", suite.ctx, "sal-1").Return(&stored, nil).Once()
	suite.authorizer.On("AuthorizeRecordAction", suite.ctx, "actor-1", stored.CreatedBy).Return(apperrors.ErrForbidden).Once()

	err := suite.service.Delete(suite.ctx, "actor-1", "sal-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
	suite.Empty(suite.publisher.Published())
}

func (suite *SalaryServiceTestSuite) TestDelete_Success() {
	stored := validSalary()
	stored.ID = "sal-1"
	stored.CreatedBy = strPtr("actor-1")
	suite.mockRepo.On("FindByID", suite.ctx, "sal-1").Return(&stored, nil).Once()
	suite.authorizer.On("AuthorizeRecordAction", suite.ctx, "actor-1", stored.CreatedBy).Return(nil).Once()
	suite.mockRepo.On("Delete", suite.ctx, "sal-1").Return(nil).Once()

	suite.Require().NoError(suite.service.Delete(suite.ctx, "actor-1", "sal-1"))
	suite.Equal([]string{services.PathSalary, services.PathDashboard}, suite.publisher.Published())
}

func (suite *SalaryServiceTestSuite) TestList_AppliesDefaultsAndNormalizesSearch() {
	suite.mockRepo.On("List", suite.ctx, mock.MatchedBy(func(q domain.ListQuery) bool {
		return q.Limit == domain.DefaultListLimit && q.Offset == 0 && q.Search == "й"
	})).Return(nil, 0, nil).Once()

	page, err := suite.service.List(suite.ctx, domain.ListQuery{Search: " й ", Offset: -5})

	suite.Require().NoError(err)
	suite.NotNil(page.Items)
	suite.Empty(page.Items)
	suite.Equal(domain.DefaultListLimit, page.Limit)
}

func (suite *SalaryServiceTestSuite) TestSummary_FiltersByMonth() {
	rows := []domain.Salary{validSalary(), validSalary()}
	rows[0].Derive()
	rows[1].PaymentStatus = domain.PaymentPaid
	rows[1].Derive()
	suite.mockRepo.On("ListAll", suite.ctx, domain.ListQuery{Filters: map[string]string{"paymentMonth": "2026-03"}}).
		Return(rows, nil).Once()

	summary, err := suite.service.Summary(suite.ctx, "2026-03")

	suite.Require().NoError(err)
	suite.Equal(2, summary.Count)
	suite.True(summary.TotalNetSalary.Equal(decimal.NewFromInt(4300000)))
}

func (suite *SalaryServiceTestSuite) TestSummary_RejectsBadMonth() {
	_, err := suite.service.Summary(suite.ctx, "March")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SalaryServiceTestSuite) TestUpdateStatus() {
	stored := validSalary()
	stored.ID = "sal-1"
	stored.CreatedBy = strPtr("actor-1")
	paid := stored
	paid.PaymentStatus = domain.PaymentPaid
	suite.mockRepo.On("FindByID", suite.ctx, "sal-1").Return(&stored, nil).Once()
	suite.authorizer.On("AuthorizeRecordAction", suite.ctx, "actor-1", stored.CreatedBy).Return(nil).Once()
	suite.mockRepo.On("UpdateStatus", suite.ctx, "sal-1", domain.PaymentPaid, mock.AnythingOfType("time.Time")).Return(&paid, nil).Once()

	updated, err := suite.service.UpdateStatus(suite.ctx, "actor-1", "sal-1", domain.PaymentPaid)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPaid, updated.PaymentStatus)

	_, err = suite.service.UpdateStatus(suite.ctx, "actor-1", "sal-1", "Refunded")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestSalaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalaryServiceTestSuite))
}
