package services

import (
	"context"
	"errors"
	"testing"

	"finboard/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockRevenueRepository struct {
	mock.Mock
}

func (m *MockRevenueRepository) List(ctx context.Context) ([]models.Revenue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Revenue), args.Error(1)
}

type DashboardServiceTestSuite struct {
	suite.Suite
	mockRevenueRepo  *MockRevenueRepository
	mockInvoiceRepo  *MockInvoiceRepository
	mockCustomerRepo *MockCustomerRepository
	mockCache        *MockCacheService
	service          DashboardService
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockRevenueRepo = &MockRevenueRepository{}
	suite.mockInvoiceRepo = &MockInvoiceRepository{}
	suite.mockCustomerRepo = &MockCustomerRepository{}
	suite.mockCache = &MockCacheService{}
	suite.service = NewDashboardService(suite.mockRevenueRepo, suite.mockInvoiceRepo, suite.mockCustomerRepo, suite.mockCache, 0, zerolog.Nop())
}

func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.mockRevenueRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (suite *DashboardServiceTestSuite) expectCardReads() {
	suite.mockInvoiceRepo.On("Count", mock.Anything).Return(int64(13), nil).Once()
	suite.mockCustomerRepo.On("Count", mock.Anything).Return(int64(6), nil).Once()
	suite.mockInvoiceRepo.On("StatusTotals", mock.Anything).Return(int64(102030), int64(50000), nil).Once()
}

func (suite *DashboardServiceTestSuite) TestCards_FormatsTotals() {
	suite.expectCardReads()
	suite.mockCache.On("SetCards", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	cards, err := suite.service.Cards(context.Background(), true)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(13), cards.NumberOfInvoices)
	assert.Equal(suite.T(), int64(6), cards.NumberOfCustomers)
	assert.Equal(suite.T(), "$1,020.30", cards.TotalPaidInvoices)
	assert.Equal(suite.T(), "$500.00", cards.TotalPendingInvoices)
	suite.mockCache.AssertNotCalled(suite.T(), "GetCards", mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestCards_CacheHitSkipsStore() {
	cached := &models.DashboardCards{NumberOfInvoices: 13}
	suite.mockCache.On("GetCards", mock.Anything).Return(cached, nil).Once()

	cards, err := suite.service.Cards(context.Background(), false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), cached, cards)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "Count", mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestCards_DatabaseError() {
	suite.mockInvoiceRepo.On("Count", mock.Anything).
		Return(int64(0), errors.New("connection refused")).Maybe()
	suite.mockCustomerRepo.On("Count", mock.Anything).Return(int64(0), nil).Maybe()
	suite.mockInvoiceRepo.On("StatusTotals", mock.Anything).Return(int64(0), int64(0), nil).Maybe()

	cards, err := suite.service.Cards(context.Background(), true)

	assert.Nil(suite.T(), cards)
	assert.EqualError(suite.T(), err, "failed to fetch card data")
}

func (suite *DashboardServiceTestSuite) TestRevenue_DatabaseError() {
	suite.mockRevenueRepo.On("List", mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	revenue, err := suite.service.Revenue(context.Background())

	assert.Nil(suite.T(), revenue)
	assert.EqualError(suite.T(), err, "failed to fetch revenue data")
}

func (suite *DashboardServiceTestSuite) TestLatestInvoices_FormatsAmounts() {
	raw := []models.LatestInvoiceRaw{
		{ID: uuid.New(), Name: "Amy Burns", Email: "amy@burns.com", Amount: 2550},
		{ID: uuid.New(), Name: "Lee Robinson", Email: "lee@robinson.com", Amount: 123456},
	}
	suite.mockInvoiceRepo.On("Latest", mock.Anything, 5).Return(raw, nil).Once()

	latest, err := suite.service.LatestInvoices(context.Background())

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), latest, 2)
	assert.Equal(suite.T(), "$25.50", latest[0].Amount)
	assert.Equal(suite.T(), "$1,234.56", latest[1].Amount)
}

func (suite *DashboardServiceTestSuite) TestOverview_JoinsAllReads() {
	revenue := []models.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}
	raw := []models.LatestInvoiceRaw{{ID: uuid.New(), Name: "Amy Burns", Amount: 2550}}

	suite.mockRevenueRepo.On("List", mock.Anything).Return(revenue, nil).Once()
	suite.mockInvoiceRepo.On("Latest", mock.Anything, 5).Return(raw, nil).Once()
	suite.expectCardReads()
	suite.mockCache.On("SetCards", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	overview, err := suite.service.Overview(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), revenue, overview.Revenue)
	assert.Len(suite.T(), overview.LatestInvoices, 1)
	assert.Equal(suite.T(), "$1,020.30", overview.Cards.TotalPaidInvoices)
	// The overview always recomputes the cards.
	suite.mockCache.AssertNotCalled(suite.T(), "GetCards", mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestOverview_PropagatesRevenueError() {
	suite.mockRevenueRepo.On("List", mock.Anything).
		Return(nil, errors.New("connection refused")).Once()
	suite.mockInvoiceRepo.On("Latest", mock.Anything, 5).
		Return([]models.LatestInvoiceRaw{}, nil).Maybe()
	suite.mockInvoiceRepo.On("Count", mock.Anything).Return(int64(0), nil).Maybe()
	suite.mockCustomerRepo.On("Count", mock.Anything).Return(int64(0), nil).Maybe()
	suite.mockInvoiceRepo.On("StatusTotals", mock.Anything).Return(int64(0), int64(0), nil).Maybe()
	suite.mockCache.On("SetCards", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	overview, err := suite.service.Overview(context.Background())

	assert.Nil(suite.T(), overview)
	assert.EqualError(suite.T(), err, "failed to fetch revenue data")
}
