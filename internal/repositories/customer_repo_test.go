package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CustomerRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    CustomerRepository
	context context.Context
}

func (suite *CustomerRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewCustomerRepo(mock)
	suite.context = context.Background()
}

func (suite *CustomerRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestCustomerRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepoTestSuite))
}

func (suite *CustomerRepoTestSuite) TestNames_OrderedByName() {
	rows := pgxmock.NewRows([]string{"id", "name"}).
		AddRow(uuid.New(), "Amy Burns").
		AddRow(uuid.New(), "Lee Robinson")

	suite.mock.ExpectQuery(`SELECT id, name`).
		WillReturnRows(rows)

	customers, err := suite.repo.Names(suite.context)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), customers, 2)
	assert.Equal(suite.T(), "Amy Burns", customers[0].Name)
}

func (suite *CustomerRepoTestSuite) TestListFiltered_AggregatesInvoices() {
	customerID := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "name", "email", "image_url", "total_invoices", "total_pending", "total_paid"}).
		AddRow(customerID, "Amy Burns", "amy@burns.com", "/customers/amy-burns.png", int64(3), int64(2550), int64(120000))

	suite.mock.ExpectQuery(`COUNT\(invoices\.id\) AS total_invoices`).
		WithArgs("amy", 6, 0).
		WillReturnRows(rows)

	customers, err := suite.repo.ListFiltered(suite.context, "amy", 6, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), customers, 1)
	assert.Equal(suite.T(), int64(3), customers[0].TotalInvoices)
	assert.Equal(suite.T(), int64(2550), customers[0].TotalPending)
	assert.Equal(suite.T(), int64(120000), customers[0].TotalPaid)
}

func (suite *CustomerRepoTestSuite) TestListFiltered_CustomerWithoutInvoices() {
	rows := pgxmock.NewRows([]string{"id", "name", "email", "image_url", "total_invoices", "total_pending", "total_paid"}).
		AddRow(uuid.New(), "New Customer", "new@customer.com", "/customers/new.png", int64(0), int64(0), int64(0))

	suite.mock.ExpectQuery(`LEFT JOIN invoices`).
		WithArgs("new", 6, 0).
		WillReturnRows(rows)

	customers, err := suite.repo.ListFiltered(suite.context, "new", 6, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), customers, 1)
	assert.Zero(suite.T(), customers[0].TotalInvoices)
}

func (suite *CustomerRepoTestSuite) TestCountFiltered_Success() {
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("burns").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := suite.repo.CountFiltered(suite.context, "burns")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(4), count)
}
