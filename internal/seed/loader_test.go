package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"strategic-planning-backend/internal/database/models"
	apperrors "strategic-planning-backend/internal/errors"
	"strategic-planning-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type LoaderTestSuite struct {
	suite.Suite
	db     *gorm.DB
	loader *Loader
	ctx    context.Context
}

func (suite *LoaderTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.loader = NewLoader(suite.db)
	suite.ctx = context.Background()
}

func (suite *LoaderTestSuite) writeFile(dir, name, content string) {
	suite.Require().NoError(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func (suite *LoaderTestSuite) count(model interface{}) int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(model).Count(&n).Error)
	return n
}

func countOf(report *Report, kind string) Count {
	for _, c := range report.Counts {
		if c.Kind == kind {
			return c
		}
	}
	return Count{Kind: kind}
}

func (suite *LoaderTestSuite) TestLoadBundledData() {
	report, err := suite.loader.Load(suite.ctx, filepath.Join("..", "..", "data", "seed"))
	suite.Require().NoError(err)

	suite.Equal(8, countOf(report, "organizations").Created)
	suite.Equal(4, countOf(report, "users").Created)
	suite.Equal(5, countOf(report, "organization_users").Created)
	suite.Equal(3, countOf(report, "strategic_objectives").Created)
	suite.Equal(4, countOf(report, "locations").Created)
	suite.Equal(3, countOf(report, "land_transports").Created)
	suite.Equal(2, countOf(report, "air_transports").Created)
	suite.Equal(4, countOf(report, "printing_costs").Created)

	var ministry models.Organization
	suite.Require().NoError(suite.db.Where("name = ?", "Ministry of Health").First(&ministry).Error)
	suite.Equal([]string{"Integrity", "Excellence", "Accountability", "Collaboration"}, []string(ministry.CoreValues))
	suite.Nil(ministry.ParentID)

	var desk models.Organization
	suite.Require().NoError(suite.db.Where("name = ?", "Data Management Desk").First(&desk).Error)
	suite.Equal(models.OrganizationTypeDesk, desk.Type)
	suite.Require().NotNil(desk.ParentID)

	var feed models.InitiativeFeed
	suite.Require().NoError(suite.db.Where("name = ?", "Legacy Donor Pooling").First(&feed).Error)
	suite.False(feed.Active())

	var active models.InitiativeFeed
	suite.Require().NoError(suite.db.Where("name = ?", "Digital Health").First(&active).Error)
	suite.True(active.Active())
}

func (suite *LoaderTestSuite) TestLoadIsIdempotent() {
	dir := filepath.Join("..", "..", "data", "seed")
	first, err := suite.loader.Load(suite.ctx, dir)
	suite.Require().NoError(err)
	suite.Positive(first.Created())

	second, err := suite.loader.Load(suite.ctx, dir)
	suite.Require().NoError(err)
	suite.Equal(0, second.Created())
	suite.Equal(countOf(first, "organizations").Total, countOf(second, "organizations").Total)
	suite.Equal(int64(8), suite.count(&models.Organization{}))
	suite.Equal(int64(5), suite.count(&models.OrganizationUser{}))
}

func (suite *LoaderTestSuite) TestParentResolvedFromDatabase() {
	dir := suite.T().TempDir()
	suite.writeFile(dir, "organizations.yaml", `
organizations:
  - name: Ministry
    type: MINISTER
`)
	_, err := suite.loader.Load(suite.ctx, dir)
	suite.Require().NoError(err)

	other := suite.T().TempDir()
	suite.writeFile(other, "organizations.yml", `
organizations:
  - name: Finance Desk
    type: DESK
    parent: Ministry
`)
	report, err := suite.loader.Load(suite.ctx, other)
	suite.Require().NoError(err)
	suite.Equal(Count{Kind: "organizations", Created: 1, Total: 1}, countOf(report, "organizations"))

	var ministry, desk models.Organization
	suite.Require().NoError(suite.db.Where("name = ?", "Ministry").First(&ministry).Error)
	suite.Require().NoError(suite.db.Where("name = ?", "Finance Desk").First(&desk).Error)
	suite.Require().NotNil(desk.ParentID)
	suite.Equal(ministry.ID, *desk.ParentID)
}

func (suite *LoaderTestSuite) TestUnknownParentRollsBack() {
	dir := suite.T().TempDir()
	suite.writeFile(dir, "organizations.yaml", `
organizations:
  - name: Ministry
    type: MINISTER
  - name: Orphan Desk
    type: DESK
    parent: Nowhere
`)
	_, err := suite.loader.Load(suite.ctx, dir)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
	suite.Equal(int64(0), suite.count(&models.Organization{}))
}

func (suite *LoaderTestSuite) TestInvalidRegion() {
	dir := suite.T().TempDir()
	suite.writeFile(dir, "locations.yaml", `
locations:
  - name: Atlantis
    region: Atlantic
`)
	_, err := suite.loader.Load(suite.ctx, dir)
	suite.ErrorIs(err, apperrors.ErrInvalidChoice)
	suite.Equal(int64(0), suite.count(&models.Location{}))
}

func (suite *LoaderTestSuite) TestUnknownTransportLocation() {
	dir := suite.T().TempDir()
	suite.writeFile(dir, "locations.yaml", `
locations:
  - name: Adama
    region: Oromia
air_transports:
  - origin: Adama
    destination: Jinka
    price: 100
`)
	_, err := suite.loader.Load(suite.ctx, dir)
	suite.ErrorIs(err, apperrors.ErrLocationNotFound)
}

func (suite *LoaderTestSuite) TestInvalidOrganizationType() {
	dir := suite.T().TempDir()
	suite.writeFile(dir, "organizations.yaml", `
organizations:
  - name: Ministry
    type: KINGDOM
`)
	_, err := suite.loader.Load(suite.ctx, dir)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *LoaderTestSuite) TestMissingDirectory() {
	_, err := suite.loader.Load(suite.ctx, filepath.Join(suite.T().TempDir(), "missing"))
	suite.Error(err)
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func TestReadDirMergesFiles(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "regional")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		filepath.Join(dir, "organizations.yaml"):    "organizations:\n  - name: A\n    type: MINISTER\n",
		filepath.Join(nested, "organizations.yaml"): "organizations:\n  - name: B\n    type: DESK\n    parent: A\n",
		filepath.Join(dir, "README.md"):             "not yaml",
		filepath.Join(dir, "unrelated.yaml"):        "anything: [1, 2]\n",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	data, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	orgs := data.Organizations.Organizations
	if len(orgs) != 2 || orgs[0].Name != "A" || orgs[1].Parent != "A" {
		t.Fatalf("unexpected organizations: %+v", orgs)
	}
}

func TestReadDirRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "users.yaml"), []byte("users: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadDir(dir); err == nil {
		t.Fatal("expected parse error")
	}
}
