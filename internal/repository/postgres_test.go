//go:build integration
// +build integration

package repository

import (
	"testing"

	"strategic-planning-backend/internal/admin"
	"strategic-planning-backend/internal/database/models"
	"strategic-planning-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// PostgresRepositoryTestSuite runs the storage paths that depend on Postgres types
// (JSONB columns, uuid keys, case-insensitive search over joins) against a real server.
type PostgresRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PostgresRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PostgresRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PostgresRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PostgresRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PostgresRepositoryTestSuite) TestOrganizationCoreValuesJSONB() {
	repo := NewOrganizationRepository(suite.baseTestSuite.DB)
	org := suite.factories.Organization.WithName("Ministry of Health")
	org.CoreValues = []string{"Integrity", "Excellence", "Integrity"}
	suite.Require().NoError(repo.Create(org))

	found, err := repo.GetByName("Ministry of Health")
	suite.Require().NoError(err)
	suite.Equal([]string{"Integrity", "Excellence", "Integrity"}, []string(found.CoreValues))

	found.CoreValues = []string{}
	suite.Require().NoError(repo.Update(found))
	found, err = repo.GetByID(org.ID)
	suite.Require().NoError(err)
	suite.Empty(found.CoreValues)
}

func (suite *PostgresRepositoryTestSuite) TestPlanObjectiveWeightsJSONB() {
	db := suite.baseTestSuite.DB
	org := suite.factories.Organization.Create()
	suite.Require().NoError(NewOrganizationRepository(db).Create(org))
	objective := suite.factories.Strategy.Objective("Health", 40)
	suite.Require().NoError(NewStrategicObjectiveRepository(db).Create(objective))

	repo := NewPlanRepository(db)
	plan := suite.factories.Plan.Create(org)
	suite.Require().NoError(repo.Create(plan))

	found, err := repo.GetByID(plan.ID)
	suite.Require().NoError(err)
	suite.Nil(found.SelectedObjectivesWeights)

	found.SetObjectiveWeights(models.ObjectiveWeights{objective.ID.String(): 62.5})
	suite.Require().NoError(repo.ReplaceSelectedObjectives(found, []models.StrategicObjective{*objective}))

	found, err = repo.GetByID(plan.ID)
	suite.Require().NoError(err)
	suite.Require().Len(found.SelectedObjectives, 1)
	suite.Equal(62.5, found.ObjectiveWeights()[objective.ID.String()])
}

func (suite *PostgresRepositoryTestSuite) TestAdminSearchIsCaseInsensitive() {
	db := suite.baseTestSuite.DB
	orgs := NewOrganizationRepository(db)
	executive := suite.factories.Organization.WithName("Executive Office")
	suite.Require().NoError(orgs.Create(executive))
	desk := suite.factories.Organization.WithType("ICT Desk", models.OrganizationTypeDesk, executive)
	suite.Require().NoError(orgs.Create(desk))

	m, ok := admin.DefaultSite().Get("organizations")
	suite.Require().True(ok)
	params := admin.ListParams{Search: "ict", Order: "-parent"}
	suite.Require().NoError(params.Normalize())

	list, total, err := NewAdminRepository(db).List(m, params)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)

	rows := m.Rows(list)
	suite.Require().Len(rows, 1)
	suite.Equal("ICT Desk", rows[0]["name"])
	suite.Equal("Executive Office", rows[0]["parent"])
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
