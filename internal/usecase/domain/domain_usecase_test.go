package domain

import (
	"context"
	"testing"
	"time"

	"github.com/josefahaz/bucksportbaseball/internal/auth"
	"github.com/josefahaz/bucksportbaseball/internal/entities"
	"github.com/josefahaz/bucksportbaseball/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) ListTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) DeleteTeam(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CreatePlayer(ctx context.Context, p entities.Player) (*entities.Player, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Player), args.Error(1)
}

func (m *repoMock) GetPlayer(ctx context.Context, id int64) (*entities.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Player), args.Error(1)
}

func (m *repoMock) ListPlayers(ctx context.Context) ([]entities.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Player), args.Error(1)
}

func (m *repoMock) CreateEvent(ctx context.Context, e entities.Event) (*entities.Event, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *repoMock) ListEvents(ctx context.Context, teamID *int64) ([]entities.Event, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Event), args.Error(1)
}

func (m *repoMock) CreateItem(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InventoryItem), args.Error(1)
}

func (m *repoMock) GetItem(ctx context.Context, id int64) (*entities.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InventoryItem), args.Error(1)
}

func (m *repoMock) ListItems(ctx context.Context, filter entities.InventoryFilter) ([]entities.InventoryItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.InventoryItem), args.Error(1)
}

func (m *repoMock) UpdateItem(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InventoryItem), args.Error(1)
}

func (m *repoMock) DeleteItem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) ReplaceItems(ctx context.Context, items []entities.InventoryItem) (int, error) {
	args := m.Called(ctx, items)
	return args.Int(0), args.Error(1)
}

func (m *repoMock) CreateBoardMember(ctx context.Context, bm entities.BoardMember) (*entities.BoardMember, error) {
	args := m.Called(ctx, bm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BoardMember), args.Error(1)
}

func (m *repoMock) ListBoardMembers(ctx context.Context) ([]entities.BoardMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.BoardMember), args.Error(1)
}

func (m *repoMock) UpdateBoardMember(ctx context.Context, bm entities.BoardMember) (*entities.BoardMember, error) {
	args := m.Called(ctx, bm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BoardMember), args.Error(1)
}

func (m *repoMock) DeleteBoardMember(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CreateCoach(ctx context.Context, c entities.Coach) (*entities.Coach, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Coach), args.Error(1)
}

func (m *repoMock) ListCoaches(ctx context.Context) ([]entities.Coach, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Coach), args.Error(1)
}

func (m *repoMock) UpdateCoach(ctx context.Context, c entities.Coach) (*entities.Coach, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Coach), args.Error(1)
}

func (m *repoMock) DeleteCoach(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CreateLocation(ctx context.Context, l entities.Location) (*entities.Location, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Location), args.Error(1)
}

func (m *repoMock) ListLocations(ctx context.Context) ([]entities.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Location), args.Error(1)
}

func (m *repoMock) DeleteLocation(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CreateScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ScheduleEvent), args.Error(1)
}

func (m *repoMock) ListScheduleEvents(ctx context.Context, filter entities.ScheduleFilter) ([]entities.ScheduleEvent, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ScheduleEvent), args.Error(1)
}

func (m *repoMock) UpdateScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ScheduleEvent), args.Error(1)
}

func (m *repoMock) DeleteScheduleEvent(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CreateDonation(ctx context.Context, d entities.Donation) (*entities.Donation, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Donation), args.Error(1)
}

func (m *repoMock) ListDonations(ctx context.Context, filter entities.DonationFilter) ([]entities.Donation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Donation), args.Error(1)
}

func (m *repoMock) UpdateDonation(ctx context.Context, d entities.Donation) (*entities.Donation, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Donation), args.Error(1)
}

func (m *repoMock) DeleteDonation(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) DonationSummary(ctx context.Context) ([]entities.DonationYearSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.DonationYearSummary), args.Error(1)
}

func (m *repoMock) ReplaceDonations(ctx context.Context, donations []entities.Donation) (int, error) {
	args := m.Called(ctx, donations)
	return args.Int(0), args.Error(1)
}

func (m *repoMock) ListSheets(ctx context.Context) ([]entities.SponsorshipSheet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SponsorshipSheet), args.Error(1)
}

func (m *repoMock) GetSheet(ctx context.Context, name string) (*entities.SponsorshipSheet, []entities.SponsorshipRow, error) {
	args := m.Called(ctx, name)
	var sheet *entities.SponsorshipSheet
	if args.Get(0) != nil {
		sheet = args.Get(0).(*entities.SponsorshipSheet)
	}
	var rows []entities.SponsorshipRow
	if args.Get(1) != nil {
		rows = args.Get(1).([]entities.SponsorshipRow)
	}
	return sheet, rows, args.Error(2)
}

func (m *repoMock) ReplaceSheet(ctx context.Context, sheet entities.SponsorshipSheet, rows []entities.SponsorshipRow) (int, error) {
	args := m.Called(ctx, sheet, rows)
	return args.Int(0), args.Error(1)
}

func (m *repoMock) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) CreateUser(ctx context.Context, u entities.User) (*entities.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) RecordLogin(ctx context.Context, id int64, googleID string) (*entities.User, error) {
	args := m.Called(ctx, id, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) AppendActivity(ctx context.Context, e entities.ActivityEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *repoMock) ListActivity(ctx context.Context, limit int) ([]entities.ActivityEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ActivityEntry), args.Error(1)
}

type verifierMock struct{ mock.Mock }

var _ auth.GoogleVerifier = (*verifierMock)(nil)

func (m *verifierMock) Verify(ctx context.Context, token string) (*auth.GooglePayload, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.GooglePayload), args.Error(1)
}

func newTestUsecase(repo repository.Repository, verifier auth.GoogleVerifier) *Usecase {
	return New(
		zap.NewNop().Sugar(),
		context.Background(),
		repo,
		time.Second,
		auth.NewTokenManager("test-secret", time.Hour),
		verifier,
		"bucksportll.org",
	)
}

func TestUsecase_CreateTeamValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	_, err := uc.CreateTeam(context.Background(), entities.Team{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)

	bad := "lacrosse"
	_, err = uc.CreateTeam(context.Background(), entities.Team{Name: "Majors", Division: &bad})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_CreateTeamDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	expected := &entities.Team{ID: 1, Name: "Majors Red"}
	repo.On("CreateTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return team.Name == "Majors Red"
	})).Return(expected, nil)

	team, err := uc.CreateTeam(context.Background(), entities.Team{Name: "Majors Red"})
	require.NoError(t, err)
	require.Equal(t, expected, team)
	repo.AssertExpectations(t)
}

func TestUsecase_RegisterPlayerValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	_, err := uc.RegisterPlayer(context.Background(), entities.Player{FirstName: "Jamie"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.RegisterPlayer(context.Background(), entities.Player{FirstName: "Jamie", LastName: "Lee"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreatePlayer", mock.Anything, mock.Anything)
}

func TestUsecase_CreateEventRejectsInvertedTimes(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	start := time.Date(2026, 6, 1, 17, 0, 0, 0, time.UTC)
	_, err := uc.CreateEvent(context.Background(), entities.Event{
		Title:     "Opening Day",
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateEvent(context.Background(), entities.Event{
		Title:     "Opening Day",
		StartTime: start,
		EndTime:   start,
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestUsecase_AddItemValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	_, err := uc.AddItem(context.Background(), entities.InventoryItem{ItemName: "Helmet", Category: "snowboard"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.AddItem(context.Background(), entities.InventoryItem{ItemName: "Helmet", Category: entities.CategoryHelmet, Quantity: -1})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestUsecase_RequestScheduleEventForcesPending(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	repo.On("CreateScheduleEvent", mock.Anything, mock.MatchedBy(func(e entities.ScheduleEvent) bool {
		return e.Status == entities.SchedulePending
	})).Return(&entities.ScheduleEvent{ID: 1, Status: entities.SchedulePending}, nil)

	got, err := uc.RequestScheduleEvent(context.Background(), entities.ScheduleEvent{
		Title:     "Practice",
		EventDate: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
		EventType: "practice",
		Status:    entities.ScheduleApproved,
	})
	require.NoError(t, err)
	require.Equal(t, entities.SchedulePending, got.Status)
	repo.AssertExpectations(t)
}

func TestUsecase_GoogleLoginRejectsOutsideDomain(t *testing.T) {
	repo := &repoMock{}
	verifier := &verifierMock{}
	uc := newTestUsecase(repo, verifier)

	verifier.On("Verify", mock.Anything, "tok").
		Return(&auth.GooglePayload{Email: "Someone@Gmail.com", GoogleID: "g1"}, nil)

	_, err := uc.GoogleLogin(context.Background(), "tok")
	require.ErrorIs(t, err, entities.ErrDomainNotAllowed)
	repo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
}

func TestUsecase_GoogleLoginRejectsUnknownUser(t *testing.T) {
	repo := &repoMock{}
	verifier := &verifierMock{}
	uc := newTestUsecase(repo, verifier)

	verifier.On("Verify", mock.Anything, "tok").
		Return(&auth.GooglePayload{Email: "Stranger@BucksportLL.org", GoogleID: "g1"}, nil)
	repo.On("GetUserByEmail", mock.Anything, "stranger@bucksportll.org").
		Return(nil, entities.ErrUserNotFound)

	_, err := uc.GoogleLogin(context.Background(), "tok")
	require.ErrorIs(t, err, entities.ErrUserNotAuthorized)
}

func TestUsecase_GoogleLoginIssuesSession(t *testing.T) {
	repo := &repoMock{}
	verifier := &verifierMock{}
	uc := newTestUsecase(repo, verifier)

	account := &entities.User{ID: 7, Email: "admin@bucksportll.org", Role: entities.RoleAdmin, IsActive: true}
	verifier.On("Verify", mock.Anything, "tok").
		Return(&auth.GooglePayload{Email: "admin@bucksportll.org", GoogleID: "g7"}, nil)
	repo.On("GetUserByEmail", mock.Anything, "admin@bucksportll.org").Return(account, nil)
	repo.On("RecordLogin", mock.Anything, int64(7), "g7").Return(account, nil)

	session, err := uc.GoogleLogin(context.Background(), "tok")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, *account, session.User)

	claims, err := auth.NewTokenManager("test-secret", time.Hour).Parse(session.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@bucksportll.org", claims.Email)
	require.Equal(t, entities.RoleAdmin, claims.Role)
	repo.AssertExpectations(t)
}

func TestUsecase_GoogleLoginRejectsInactive(t *testing.T) {
	repo := &repoMock{}
	verifier := &verifierMock{}
	uc := newTestUsecase(repo, verifier)

	verifier.On("Verify", mock.Anything, "tok").
		Return(&auth.GooglePayload{Email: "old@bucksportll.org", GoogleID: "g2"}, nil)
	repo.On("GetUserByEmail", mock.Anything, "old@bucksportll.org").
		Return(&entities.User{ID: 2, Email: "old@bucksportll.org", Role: entities.RoleAdmin, IsActive: false}, nil)

	_, err := uc.GoogleLogin(context.Background(), "tok")
	require.ErrorIs(t, err, entities.ErrUserNotAuthorized)
	repo.AssertNotCalled(t, "RecordLogin", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_CreateUserRoleWhitelist(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	_, err := uc.CreateUser(context.Background(), entities.User{Email: "new@bucksportll.org", Role: "superuser"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUsecase_CreateUserLowercasesEmail(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.Email == "new@bucksportll.org" && u.IsActive
	})).Return(&entities.User{ID: 3, Email: "new@bucksportll.org", Role: entities.RoleBoardMember, IsActive: true}, nil)

	got, err := uc.CreateUser(context.Background(), entities.User{Email: "New@BucksportLL.org", Role: entities.RoleBoardMember})
	require.NoError(t, err)
	require.Equal(t, "new@bucksportll.org", got.Email)
	repo.AssertExpectations(t)
}

func TestUsecase_DeleteUserForbidsSelf(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	repo.On("GetUser", mock.Anything, int64(7)).
		Return(&entities.User{ID: 7, Email: "admin@bucksportll.org"}, nil)

	err := uc.DeleteUser(context.Background(), "Admin@bucksportll.org", 7)
	require.ErrorIs(t, err, entities.ErrSelfDelete)
	repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestUsecase_DeleteUserDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	repo.On("GetUser", mock.Anything, int64(9)).
		Return(&entities.User{ID: 9, Email: "other@bucksportll.org"}, nil)
	repo.On("DeleteUser", mock.Anything, int64(9)).Return(nil)

	require.NoError(t, uc.DeleteUser(context.Background(), "admin@bucksportll.org", 9))
	repo.AssertExpectations(t)
}

func TestUsecase_ActivityLimitValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil)

	_, err := uc.Activity(context.Background(), 0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.Activity(context.Background(), 1000)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
