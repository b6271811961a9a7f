package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"strategic-planning-backend/internal/admin"
	"strategic-planning-backend/internal/auth"
	"strategic-planning-backend/internal/database/models"
	"strategic-planning-backend/internal/repository"
	"strategic-planning-backend/internal/seed"
	"strategic-planning-backend/internal/service"
	"strategic-planning-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "planctl-test-secret"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type fakeMigrator struct {
	version int64
	calls   []string
	steps   int
	err     error
}

func (f *fakeMigrator) Up() error {
	f.calls = append(f.calls, "up")
	f.version = 3
	return f.err
}

func (f *fakeMigrator) Down(steps int) error {
	f.calls = append(f.calls, "down")
	f.steps = steps
	f.version -= int64(steps)
	return f.err
}

func (f *fakeMigrator) Status() error {
	f.calls = append(f.calls, "status")
	return f.err
}

func (f *fakeMigrator) Version() (int64, error) {
	return f.version, nil
}

// testApp wires an App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) (*App, *gorm.DB) {
	t.Helper()
	db := testutils.NewSQLiteDB(t)

	return &App{
		Admin:    service.NewAdminService(admin.DefaultSite(), repository.NewAdminRepository(db), validator.New()),
		Seeder:   seed.NewLoader(db),
		Migrator: &fakeMigrator{},
		Tokens:   auth.NewTokenService(testSecret),
		SeedDir:  filepath.Join("..", "..", "data", "seed"),
	}, db
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

// --- token ---

func TestTokenCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "token", "--username", "planner", "--ttl", "1h")
	require.NoError(t, err)

	claims, err := auth.NewTokenService(testSecret).ValidateJWT(string(bytes.TrimSpace([]byte(out))))
	require.NoError(t, err)
	assert.Equal(t, "planner", claims.Username)
	assert.True(t, claims.Staff)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenCmd_NotStaff(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "token", "--username", "viewer", "--staff=false")
	require.NoError(t, err)

	claims, err := auth.NewTokenService(testSecret).ValidateJWT(string(bytes.TrimSpace([]byte(out))))
	require.NoError(t, err)
	assert.False(t, claims.Staff)
}

func TestTokenCmd_RequiresUsername(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "token")
	assert.Error(t, err)
}

// --- seed ---

func TestSeedCmd(t *testing.T) {
	app, db := testApp(t)

	out, err := executeCmd(t, app, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "organizations")
	assert.Contains(t, out, "printing_costs")

	var count int64
	require.NoError(t, db.Model(&models.Organization{}).Count(&count).Error)
	assert.Equal(t, int64(8), count)

	out, err = executeCmd(t, app, "seed", "--dir", app.SeedDir)
	require.NoError(t, err)
	assert.Regexp(t, `organizations\s+0\s+8`, out)
}

func TestSeedCmd_MissingDir(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "seed", "--dir", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

// --- admin ---

func TestAdminEntitiesCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "admin", "entities")
	require.NoError(t, err)
	assert.Contains(t, out, "ENTITY")
	assert.Contains(t, out, "organizations")
	assert.Contains(t, out, "team-desk-plans")
}

func TestAdminListCmd(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "seed")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "admin", "list", "organizations", "--search", "desk")
	require.NoError(t, err)
	assert.Contains(t, out, "Data Management Desk")
	assert.NotContains(t, out, "Planning Lead Executive Office")
	assert.Contains(t, out, "Page 1 of 1 (1 total)")

	out, err = executeCmd(t, app, "admin", "list", "locations", "--filter", "is_hardship_area=true", "--order", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "Gambela")
	assert.Contains(t, out, "Semera")
	assert.NotContains(t, out, "Adama")
	assert.Contains(t, out, "(2 total)")
}

func TestAdminListCmd_Paging(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "seed")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "admin", "list", "organizations", "--page", "2", "--page-size", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 2 of 3 (8 total)")
}

func TestAdminListCmd_Errors(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "admin", "list", "organizations", "--filter", "type")
	assert.ErrorContains(t, err, "expected key=value")

	_, err = executeCmd(t, app, "admin", "list", "spaceships")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "admin", "list")
	assert.Error(t, err)
}

func TestAdminGetCmd(t *testing.T) {
	app, db := testApp(t)
	_, err := executeCmd(t, app, "seed")
	require.NoError(t, err)

	var org models.Organization
	require.NoError(t, db.Where("name = ?", "Ministry of Health").First(&org).Error)

	out, err := executeCmd(t, app, "admin", "get", "organizations", org.ID.String())
	require.NoError(t, err)
	assert.Contains(t, out, org.ID.String())
	assert.Contains(t, out, "Ministry of Health")
	assert.Contains(t, out, "Metadata")
	assert.Contains(t, out, "Integrity")

	_, err = executeCmd(t, app, "admin", "get", "organizations", "not-a-uuid")
	assert.ErrorContains(t, err, "invalid id")
}

// --- migrate ---

func TestMigrateCmds(t *testing.T) {
	app, _ := testApp(t)
	migrator := app.Migrator.(*fakeMigrator)

	out, err := executeCmd(t, app, "migrate", "up")
	require.NoError(t, err)
	assert.Equal(t, "Schema version: 3\n", out)

	out, err = executeCmd(t, app, "migrate", "down", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, migrator.steps)
	assert.Equal(t, "Schema version: 1\n", out)

	out, err = executeCmd(t, app, "migrate", "status")
	require.NoError(t, err)
	assert.Equal(t, "Schema version: 1\n", out)

	out, err = executeCmd(t, app, "migrate", "version")
	require.NoError(t, err)
	assert.Equal(t, "Schema version: 1\n", out)

	assert.Equal(t, []string{"up", "down", "status"}, migrator.calls)
}

func TestMigrateDown_RejectsNonPositiveSteps(t *testing.T) {
	app, _ := testApp(t)
	migrator := app.Migrator.(*fakeMigrator)

	_, err := executeCmd(t, app, "migrate", "down", "--steps", "0")
	assert.ErrorContains(t, err, "must be positive")
	assert.Empty(t, migrator.calls)
}

func TestMigrateUp_PropagatesError(t *testing.T) {
	app, _ := testApp(t)
	app.Migrator = &fakeMigrator{err: errors.New("boom")}

	_, err := executeCmd(t, app, "migrate", "up")
	assert.EqualError(t, err, "boom")
}

// --- wiring ---

func TestConnectRunsOnceWithOptions(t *testing.T) {
	full, _ := testApp(t)
	var calls []ConnectOptions
	app := &App{
		Connect: func(app *App, opts ConnectOptions) error {
			calls = append(calls, opts)
			app.Admin = full.Admin
			app.Migrator = full.Migrator
			return nil
		},
	}

	_, err := executeCmd(t, app, "migrate", "version")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "admin", "entities")
	require.NoError(t, err)

	assert.Equal(t, []ConnectOptions{{SkipAutoMigrate: true}}, calls)
}

func TestConnectError(t *testing.T) {
	app := &App{
		Connect: func(app *App, opts ConnectOptions) error {
			return errors.New("connection refused")
		},
	}

	_, err := executeCmd(t, app, "admin", "entities")
	assert.EqualError(t, err, "connection refused")
}

func TestNotConfigured(t *testing.T) {
	app := &App{}

	_, err := executeCmd(t, app, "admin", "entities")
	assert.ErrorIs(t, err, errNotConfigured)

	_, err = executeCmd(t, app, "seed")
	assert.ErrorIs(t, err, errNotConfigured)

	_, err = executeCmd(t, app, "token", "--username", "x")
	assert.ErrorIs(t, err, errNotConfigured)
}

func TestParseFilters(t *testing.T) {
	filters, err := parseFilters([]string{"type=DESK", "region=Addis Ababa", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"type": "DESK", "region": "Addis Ababa", "empty": ""}, filters)

	filters, err = parseFilters(nil)
	require.NoError(t, err)
	assert.Nil(t, filters)

	_, err = parseFilters([]string{"=DESK"})
	assert.Error(t, err)
}
