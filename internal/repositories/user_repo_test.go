package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type UserRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    UserRepository
	context context.Context
}

func (suite *UserRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewUserRepo(mock)
	suite.context = context.Background()
}

func (suite *UserRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestUserRepoTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepoTestSuite))
}

func (suite *UserRepoTestSuite) TestGetByEmail_Success() {
	userID := uuid.New()
	rows := pgxmock.NewRows([]string{"id", "name", "email", "password"}).
		AddRow(userID, "User", "user@nextmail.com", "$2b$10$hashedpassword")

	suite.mock.ExpectQuery(`SELECT id, name, email, password`).
		WithArgs("user@nextmail.com").
		WillReturnRows(rows)

	user, err := suite.repo.GetByEmail(suite.context, "user@nextmail.com")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), userID, user.ID)
	assert.Equal(suite.T(), "$2b$10$hashedpassword", user.PasswordHash)
}

func (suite *UserRepoTestSuite) TestGetByEmail_NotFound() {
	suite.mock.ExpectQuery(`SELECT id, name, email, password`).
		WithArgs("nobody@nextmail.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := suite.repo.GetByEmail(suite.context, "nobody@nextmail.com")
	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, pgx.ErrNoRows)
}
