package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/josefahaz/bucksportbaseball/config"
	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	division := string(entities.DivisionBaseball)
	coach := "Sam Gray"

	team, err := repo.CreateTeam(ctx, entities.Team{Name: "Majors Red", Division: &division, Coach: &coach})
	require.NoError(t, err)
	require.NotZero(t, team.ID)

	_, err = repo.CreateTeam(ctx, entities.Team{Name: "Majors Red"})
	require.ErrorIs(t, err, entities.ErrTeamExists)

	fetched, err := repo.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, "Majors Red", fetched.Name)

	fetched.Name = "Majors Crimson"
	updated, err := repo.UpdateTeam(ctx, *fetched)
	require.NoError(t, err)
	require.Equal(t, "Majors Crimson", updated.Name)

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	_, err = repo.GetTeam(ctx, 9999)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	player, err := repo.CreatePlayer(ctx, entities.Player{
		FirstName: "Jamie",
		LastName:  "Lee",
		Birthdate: time.Date(2014, 5, 12, 0, 0, 0, 0, time.UTC),
		Email:     "jamie.lee@example.com",
		Phone:     "207-555-0101",
		TeamID:    &team.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, player.ID)

	_, err = repo.CreatePlayer(ctx, entities.Player{
		FirstName: "Other",
		LastName:  "Kid",
		Birthdate: time.Date(2013, 1, 2, 0, 0, 0, 0, time.UTC),
		Email:     "jamie.lee@example.com",
		Phone:     "207-555-0102",
	})
	require.ErrorIs(t, err, entities.ErrEmailTaken)

	players, err := repo.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)

	badTeam := int64(424242)
	_, err = repo.CreatePlayer(ctx, entities.Player{
		FirstName: "No",
		LastName:  "Team",
		Birthdate: time.Date(2012, 3, 4, 0, 0, 0, 0, time.UTC),
		Email:     "no.team@example.com",
		Phone:     "207-555-0103",
		TeamID:    &badTeam,
	})
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	start := time.Date(2026, 6, 1, 17, 0, 0, 0, time.UTC)
	event, err := repo.CreateEvent(ctx, entities.Event{
		Title:     "Opening Day",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		TeamID:    &team.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, event.ID)

	events, err := repo.ListEvents(ctx, &team.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)

	all, err := repo.ListEvents(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestInventoryAndRosterIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	softball := string(entities.DivisionSoftball)

	item, err := repo.CreateItem(ctx, entities.InventoryItem{
		ItemName: "Helmet Size M",
		Category: entities.CategoryHelmet,
		Division: &softball,
		Quantity: 6,
		Status:   entities.StatusAvailable,
	})
	require.NoError(t, err)
	require.NotZero(t, item.ID)

	_, err = repo.CreateItem(ctx, entities.InventoryItem{
		ItemName: "Bat 28in",
		Category: entities.CategoryBat,
		Quantity: 3,
		Status:   entities.StatusCheckedOut,
	})
	require.NoError(t, err)

	helmetCat := entities.CategoryHelmet
	filtered, err := repo.ListItems(ctx, entities.InventoryFilter{Category: &helmetCat})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "Helmet Size M", filtered[0].ItemName)

	item.Quantity = 5
	item.Status = entities.StatusNeedsRepair
	saved, err := repo.UpdateItem(ctx, *item)
	require.NoError(t, err)
	require.Equal(t, 5, saved.Quantity)

	require.NoError(t, repo.DeleteItem(ctx, item.ID))
	require.ErrorIs(t, repo.DeleteItem(ctx, item.ID), entities.ErrItemNotFound)

	member, err := repo.CreateBoardMember(ctx, entities.BoardMember{
		Name:     "Pat Doyle",
		Position: "President",
		Email:    "pat@bucksportll.org",
		Phone:    "207-555-0200",
	})
	require.NoError(t, err)

	member.Position = "Treasurer"
	updatedMember, err := repo.UpdateBoardMember(ctx, *member)
	require.NoError(t, err)
	require.Equal(t, "Treasurer", updatedMember.Position)

	members, err := repo.ListBoardMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)

	require.NoError(t, repo.DeleteBoardMember(ctx, member.ID))
	require.ErrorIs(t, repo.DeleteBoardMember(ctx, member.ID), entities.ErrBoardMemberNotFound)

	loc, err := repo.CreateLocation(ctx, entities.Location{Name: "Miles Lane Field"})
	require.NoError(t, err)

	_, err = repo.CreateLocation(ctx, entities.Location{Name: "Miles Lane Field"})
	require.ErrorIs(t, err, entities.ErrLocationExists)

	locations, err := repo.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 1)

	require.NoError(t, repo.DeleteLocation(ctx, loc.ID))
}

func TestScheduleAndDonationIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	ev, err := repo.CreateScheduleEvent(ctx, entities.ScheduleEvent{
		Title:     "Practice",
		EventDate: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		EventTime: "17:30",
		EventType: "practice",
		Location:  "Miles Lane Field",
		Status:    entities.SchedulePending,
	})
	require.NoError(t, err)
	require.Equal(t, entities.SchedulePending, ev.Status)

	pending := entities.SchedulePending
	list, err := repo.ListScheduleEvents(ctx, entities.ScheduleFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, list, 1)

	ev.Status = entities.ScheduleApproved
	approved, err := repo.UpdateScheduleEvent(ctx, *ev)
	require.NoError(t, err)
	require.Equal(t, entities.ScheduleApproved, approved.Status)

	list, err = repo.ListScheduleEvents(ctx, entities.ScheduleFilter{Status: &pending})
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, repo.DeleteScheduleEvent(ctx, ev.ID))
	require.ErrorIs(t, repo.DeleteScheduleEvent(ctx, ev.ID), entities.ErrScheduleEventNotFound)

	d1, err := repo.CreateDonation(ctx, entities.Donation{
		Name:         "Hannaford",
		Amount:       500,
		DonationType: "sponsorship",
		DonatedOn:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotZero(t, d1.ID)

	_, err = repo.CreateDonation(ctx, entities.Donation{
		Name:         "Local Hardware",
		Amount:       150,
		DonationType: "donation",
		DonatedOn:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	year := 2024
	byYear, err := repo.ListDonations(ctx, entities.DonationFilter{Year: &year})
	require.NoError(t, err)
	require.Len(t, byYear, 1)
	require.Equal(t, "Hannaford", byYear[0].Name)

	summary, err := repo.DonationSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	require.Equal(t, 2024, summary[0].Year)
	require.InDelta(t, 500.0, summary[0].Total, 0.001)

	count, err := repo.ReplaceDonations(ctx, []entities.Donation{
		{Name: "Replaced", Amount: 75, DonationType: "donation", DonatedOn: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	remaining, err := repo.ListDonations(ctx, entities.DonationFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
}

func TestSheetUserActivityIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	sheet := entities.SponsorshipSheet{
		SheetName: "Master Sheet",
		Columns:   []string{"Business", "Amount", "Contact"},
	}
	rows := []entities.SponsorshipRow{
		{SheetName: "Master Sheet", RowIndex: 0, Data: map[string]any{"Business": "Hannaford", "Amount": 500.0}},
		{SheetName: "Master Sheet", RowIndex: 1, Data: map[string]any{"Business": "Local Hardware", "Amount": 150.0}},
	}

	count, err := repo.ReplaceSheet(ctx, sheet, rows)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	sheets, err := repo.ListSheets(ctx)
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	meta, gotRows, err := repo.GetSheet(ctx, "Master Sheet")
	require.NoError(t, err)
	require.Equal(t, []string{"Business", "Amount", "Contact"}, meta.Columns)
	require.Len(t, gotRows, 2)
	require.Equal(t, "Hannaford", gotRows[0].Data["Business"])

	count, err = repo.ReplaceSheet(ctx, sheet, rows[:1])
	require.NoError(t, err)
	require.Equal(t, 1, count)

	_, _, err = repo.GetSheet(ctx, "Missing Sheet")
	require.ErrorIs(t, err, entities.ErrSheetNotFound)

	user, err := repo.CreateUser(ctx, entities.User{
		Email:     "admin@bucksportll.org",
		FirstName: "League",
		LastName:  "Admin",
		Role:      entities.RoleAdmin,
		IsActive:  true,
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	_, err = repo.CreateUser(ctx, entities.User{Email: "admin@bucksportll.org", Role: entities.RoleAdmin, IsActive: true})
	require.ErrorIs(t, err, entities.ErrUserExists)

	byEmail, err := repo.GetUserByEmail(ctx, "admin@bucksportll.org")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetUserByEmail(ctx, "nobody@bucksportll.org")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	stamped, err := repo.RecordLogin(ctx, user.ID, "google-sub-123")
	require.NoError(t, err)
	require.NotNil(t, stamped.LastLogin)
	require.NotNil(t, stamped.GoogleID)
	require.Equal(t, "google-sub-123", *stamped.GoogleID)

	again, err := repo.RecordLogin(ctx, user.ID, "different-sub")
	require.NoError(t, err)
	require.Equal(t, "google-sub-123", *again.GoogleID)

	require.NoError(t, repo.AppendActivity(ctx, entities.ActivityEntry{
		ID:         uuid.NewString(),
		ActorEmail: user.Email,
		Action:     "create",
		EntityType: "team",
		EntityID:   "1",
	}))

	entries, err := repo.ListActivity(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "create", entries[0].Action)

	require.NoError(t, repo.DeleteUser(ctx, user.ID))
	require.ErrorIs(t, repo.DeleteUser(ctx, user.ID), entities.ErrUserNotFound)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=bucksport_league_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "bucksport_league_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=bucksport_league_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
