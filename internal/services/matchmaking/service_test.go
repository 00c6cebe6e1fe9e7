package matchmaking_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/parlorbot/parlor/internal/common/clock/mocks"
	uuidMocks "github.com/parlorbot/parlor/internal/common/uuid/mocks"
	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/ordering"
	"github.com/parlorbot/parlor/internal/ratings"
	engineMocks "github.com/parlorbot/parlor/internal/ratings/mocks"
	ratingRepo "github.com/parlorbot/parlor/internal/repositories/rating"
	ratingMocks "github.com/parlorbot/parlor/internal/repositories/rating/mocks"
	"github.com/parlorbot/parlor/internal/services/matchmaking"
	mmMocks "github.com/parlorbot/parlor/internal/services/matchmaking/mocks"
	"github.com/parlorbot/parlor/internal/transport"
)

type duelFactory struct{}

func (f *duelFactory) GameType() string              { return "duel" }
func (f *duelFactory) Name() string                  { return "Duel" }
func (f *duelFactory) Description() string           { return "a two player test game" }
func (f *duelFactory) PlayerCounts() []int           { return []int{2} }
func (f *duelFactory) Ordering() ordering.Policy     { return ordering.PolicyPreserve }
func (f *duelFactory) Moves() []games.MoveDescriptor { return nil }

func (f *duelFactory) New(players []*models.Player) (games.Plugin, error) {
	return nil, errors.New("not playable in this test")
}

type MatchmakingServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockRatingRepo *ratingMocks.MockRepository
	mockEngine     *engineMocks.MockEngine
	mockSessions   *mmMocks.MockSessionGateway
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	svc            matchmaking.Service
	ctx            context.Context

	testTime time.Time
}

func (s *MatchmakingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRatingRepo = ratingMocks.NewMockRepository(s.mockCtrl)
	s.mockEngine = engineMocks.NewMockEngine(s.mockCtrl)
	s.mockSessions = mmMocks.NewMockSessionGateway(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	nextID := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		nextID++
		return fmt.Sprintf("lobby-%d", nextID)
	}).AnyTimes()

	// Default: nobody has a stored rating and nobody is mid-game
	s.mockRatingRepo.EXPECT().
		GetRating(gomock.Any(), gomock.Any()).
		Return(nil, ratingRepo.ErrRatingNotFound).
		AnyTimes()
	s.mockEngine.EXPECT().
		InitialRating("duel").
		Return(ratings.PlayerRating{Mu: 1000, Sigma: 1000.0 / 6.0}).
		AnyTimes()
	s.mockSessions.EXPECT().InSession(gomock.Any()).Return(false).AnyTimes()

	registry := games.NewRegistry()
	s.Require().NoError(registry.Register(&duelFactory{}))

	svc, err := matchmaking.NewService(&matchmaking.Config{
		Registry:   registry,
		RatingRepo: s.mockRatingRepo,
		Engine:     s.mockEngine,
		Sessions:   s.mockSessions,
		Clock:      s.mockClock,
		UUID:       s.mockUUID,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *MatchmakingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchmakingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MatchmakingServiceTestSuite))
}

func (s *MatchmakingServiceTestSuite) createLobby(private bool, whitelist ...string) *matchmaking.LobbySnapshot {
	output, err := s.svc.CreateLobby(s.ctx, &matchmaking.CreateLobbyInput{
		GuildID:     "guild-1",
		ChannelID:   "channel-1",
		GameType:    "duel",
		CreatorID:   "creator",
		CreatorName: "Creator",
		Rated:       true,
		Private:     private,
		Whitelist:   whitelist,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Lobby)
	return output.Lobby
}

func (s *MatchmakingServiceTestSuite) TestCreateLobbySeedsCreator() {
	lobby := s.createLobby(false)

	s.Equal("lobby-1", lobby.ID)
	s.Equal("duel", lobby.GameType)
	s.Equal("creator", lobby.CreatorID)
	s.True(lobby.Rated)
	s.Require().Len(lobby.Players, 1)
	s.Equal("creator", lobby.Players[0].ID)
	s.InDelta(1000.0, lobby.Players[0].Mu, 1e-9)
	s.Equal(s.testTime, lobby.CreatedAt)
}

func (s *MatchmakingServiceTestSuite) TestCreateLobbyUnknownGameType() {
	_, err := s.svc.CreateLobby(s.ctx, &matchmaking.CreateLobbyInput{
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		GameType:  "checkers",
		CreatorID: "creator",
	})
	s.ErrorIs(err, games.ErrUnknownGameType)
}

func (s *MatchmakingServiceTestSuite) TestCreateLobbyFailsFastOnRatingError() {
	boom := errors.New("redis down")
	repo := ratingMocks.NewMockRepository(s.mockCtrl)
	repo.EXPECT().GetRating(gomock.Any(), gomock.Any()).Return(nil, boom)

	registry := games.NewRegistry()
	s.Require().NoError(registry.Register(&duelFactory{}))
	svc, err := matchmaking.NewService(&matchmaking.Config{
		Registry:   registry,
		RatingRepo: repo,
		Engine:     s.mockEngine,
		Sessions:   s.mockSessions,
		Clock:      s.mockClock,
		UUID:       s.mockUUID,
	})
	s.Require().NoError(err)

	_, err = svc.CreateLobby(s.ctx, &matchmaking.CreateLobbyInput{
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		GameType:  "duel",
		CreatorID: "creator",
	})
	s.Require().Error(err)
	s.ErrorIs(err, boom)
}

func (s *MatchmakingServiceTestSuite) TestCreateLobbyWhileInLobby() {
	s.createLobby(false)

	_, err := s.svc.CreateLobby(s.ctx, &matchmaking.CreateLobbyInput{
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		GameType:  "duel",
		CreatorID: "creator",
	})
	s.ErrorIs(err, matchmaking.ErrAlreadyInLobby)
}

func (s *MatchmakingServiceTestSuite) TestJoin() {
	lobby := s.createLobby(false)

	output, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{
		LobbyID:    lobby.ID,
		PlayerID:   "joiner",
		PlayerName: "Joiner",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Lobby.Players, 2)
	s.Equal("joiner", output.Lobby.Players[1].ID)
}

func (s *MatchmakingServiceTestSuite) TestJoinTwice() {
	lobby := s.createLobby(false)

	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	_, err = s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.ErrorIs(err, matchmaking.ErrAlreadyQueued)
}

func (s *MatchmakingServiceTestSuite) TestJoinFullLobby() {
	lobby := s.createLobby(false)

	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "second"})
	s.Require().NoError(err)

	// duel accepts exactly 2 players
	_, err = s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "third"})
	s.ErrorIs(err, matchmaking.ErrLobbyFull)
}

func (s *MatchmakingServiceTestSuite) TestJoinPrivateLobbyRequiresWhitelist() {
	lobby := s.createLobby(true, "friend")

	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "stranger"})
	s.ErrorIs(err, matchmaking.ErrNotWhitelisted)

	_, err = s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "friend"})
	s.NoError(err)
}

func (s *MatchmakingServiceTestSuite) TestJoinUnknownLobby() {
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: "nope", PlayerID: "joiner"})
	s.ErrorIs(err, matchmaking.ErrLobbyNotFound)
}

func (s *MatchmakingServiceTestSuite) TestLeaveTransfersCreator() {
	lobby := s.createLobby(false)
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	output, err := s.svc.Leave(s.ctx, &matchmaking.LeaveInput{LobbyID: lobby.ID, PlayerID: "creator"})
	s.Require().NoError(err)
	s.False(output.Cancelled)
	s.Equal("joiner", output.NewCreatorID)
	s.Equal("joiner", output.Lobby.CreatorID)
}

func (s *MatchmakingServiceTestSuite) TestLeaveLastPlayerCancels() {
	lobby := s.createLobby(false)

	handle := &transport.MessageHandle{ChannelID: "channel-1", MessageID: "msg-1"}
	s.Require().NoError(s.svc.AttachMessage(s.ctx, &matchmaking.AttachMessageInput{
		LobbyID: lobby.ID,
		Message: handle,
	}))

	output, err := s.svc.Leave(s.ctx, &matchmaking.LeaveInput{LobbyID: lobby.ID, PlayerID: "creator"})
	s.Require().NoError(err)
	s.True(output.Cancelled)
	s.Equal(handle, output.Message)

	_, err = s.svc.GetLobby(s.ctx, &matchmaking.GetLobbyInput{LobbyID: lobby.ID})
	s.ErrorIs(err, matchmaking.ErrLobbyNotFound)
}

func (s *MatchmakingServiceTestSuite) TestLeaveNotQueued() {
	lobby := s.createLobby(false)

	_, err := s.svc.Leave(s.ctx, &matchmaking.LeaveInput{LobbyID: lobby.ID, PlayerID: "stranger"})
	s.ErrorIs(err, matchmaking.ErrNotQueued)
}

func (s *MatchmakingServiceTestSuite) TestLeaveFreesMembership() {
	lobby := s.createLobby(false)
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	_, err = s.svc.Leave(s.ctx, &matchmaking.LeaveInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	// the player can queue again
	_, err = s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.NoError(err)
}

func (s *MatchmakingServiceTestSuite) TestKickRequiresCreator() {
	lobby := s.createLobby(false)
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	_, err = s.svc.Kick(s.ctx, &matchmaking.KickInput{
		LobbyID:  lobby.ID,
		ActorID:  "joiner",
		TargetID: "creator",
	})
	s.ErrorIs(err, matchmaking.ErrNotCreator)
}

func (s *MatchmakingServiceTestSuite) TestKickRemovesTarget() {
	lobby := s.createLobby(false)
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	output, err := s.svc.Kick(s.ctx, &matchmaking.KickInput{
		LobbyID:  lobby.ID,
		ActorID:  "creator",
		TargetID: "joiner",
	})
	s.Require().NoError(err)
	s.False(output.Cancelled)
	s.Require().Len(output.Lobby.Players, 1)
	s.Equal("creator", output.Lobby.Players[0].ID)
}

func (s *MatchmakingServiceTestSuite) TestBanOnPublicLobbyBlocksRejoin() {
	lobby := s.createLobby(false)
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	output, err := s.svc.Ban(s.ctx, &matchmaking.BanInput{
		LobbyID:  lobby.ID,
		ActorID:  "creator",
		TargetID: "joiner",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Lobby.Players, 1)

	_, err = s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.ErrorIs(err, matchmaking.ErrBanned)
}

func (s *MatchmakingServiceTestSuite) TestBanOnPrivateLobbyRemovesWhitelist() {
	lobby := s.createLobby(true, "friend")

	_, err := s.svc.Ban(s.ctx, &matchmaking.BanInput{
		LobbyID:  lobby.ID,
		ActorID:  "creator",
		TargetID: "friend",
	})
	s.Require().NoError(err)

	_, err = s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "friend"})
	s.ErrorIs(err, matchmaking.ErrNotWhitelisted)
}

func (s *MatchmakingServiceTestSuite) TestBanOnPrivateLobbyNotWhitelisted() {
	lobby := s.createLobby(true)

	_, err := s.svc.Ban(s.ctx, &matchmaking.BanInput{
		LobbyID:  lobby.ID,
		ActorID:  "creator",
		TargetID: "stranger",
	})
	s.ErrorIs(err, matchmaking.ErrCannotBan)
}

func (s *MatchmakingServiceTestSuite) TestInviteRequiresCreator() {
	lobby := s.createLobby(false)
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	_, err = s.svc.Invite(s.ctx, &matchmaking.InviteInput{
		LobbyID:  lobby.ID,
		ActorID:  "joiner",
		TargetID: "friend",
	})
	s.ErrorIs(err, matchmaking.ErrNotCreator)
}

func (s *MatchmakingServiceTestSuite) TestInviteAllowsJoiningPrivateLobby() {
	lobby := s.createLobby(true)

	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "friend"})
	s.ErrorIs(err, matchmaking.ErrNotWhitelisted)

	_, err = s.svc.Invite(s.ctx, &matchmaking.InviteInput{
		LobbyID:  lobby.ID,
		ActorID:  "creator",
		TargetID: "friend",
	})
	s.Require().NoError(err)

	_, err = s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "friend"})
	s.NoError(err)
}

func (s *MatchmakingServiceTestSuite) TestInviteLiftsBanOnPublicLobby() {
	lobby := s.createLobby(false)
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	_, err = s.svc.Ban(s.ctx, &matchmaking.BanInput{
		LobbyID:  lobby.ID,
		ActorID:  "creator",
		TargetID: "joiner",
	})
	s.Require().NoError(err)
	_, err = s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.ErrorIs(err, matchmaking.ErrBanned)

	_, err = s.svc.Invite(s.ctx, &matchmaking.InviteInput{
		LobbyID:  lobby.ID,
		ActorID:  "creator",
		TargetID: "joiner",
	})
	s.Require().NoError(err)

	_, err = s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.NoError(err)
}

func (s *MatchmakingServiceTestSuite) TestUpdateSettings() {
	lobby := s.createLobby(false)

	rated := false
	private := true
	output, err := s.svc.UpdateSettings(s.ctx, &matchmaking.UpdateSettingsInput{
		LobbyID: lobby.ID,
		ActorID: "creator",
		Rated:   &rated,
		Private: &private,
	})
	s.Require().NoError(err)
	s.False(output.Lobby.Rated)
	s.True(output.Lobby.Private)

	_, err = s.svc.UpdateSettings(s.ctx, &matchmaking.UpdateSettingsInput{
		LobbyID: lobby.ID,
		ActorID: "joiner",
	})
	s.ErrorIs(err, matchmaking.ErrNotCreator)
}

func (s *MatchmakingServiceTestSuite) TestStartRequiresCapacity() {
	lobby := s.createLobby(false)

	_, err := s.svc.Start(s.ctx, &matchmaking.StartInput{LobbyID: lobby.ID, ActorID: "creator"})
	s.ErrorIs(err, matchmaking.ErrCapacityNotMet)
}

func (s *MatchmakingServiceTestSuite) TestStartRequiresCreator() {
	lobby := s.createLobby(false)
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	_, err = s.svc.Start(s.ctx, &matchmaking.StartInput{LobbyID: lobby.ID, ActorID: "joiner"})
	s.ErrorIs(err, matchmaking.ErrNotCreator)
}

func (s *MatchmakingServiceTestSuite) TestStartHandsOffAndRetiresLobby() {
	lobby := s.createLobby(false)
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	s.mockSessions.EXPECT().
		StartGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *matchmaking.StartGameRequest) (string, error) {
			s.Equal(lobby.ID, req.LobbyID)
			s.Equal("duel", req.GameType)
			s.True(req.Rated)
			s.Require().Len(req.Players, 2)
			s.Equal("creator", req.Players[0].ID)
			s.Equal("joiner", req.Players[1].ID)
			return "session-1", nil
		})

	output, err := s.svc.Start(s.ctx, &matchmaking.StartInput{LobbyID: lobby.ID, ActorID: "creator"})
	s.Require().NoError(err)
	s.Equal("session-1", output.SessionID)

	_, err = s.svc.GetLobby(s.ctx, &matchmaking.GetLobbyInput{LobbyID: lobby.ID})
	s.ErrorIs(err, matchmaking.ErrLobbyNotFound)
	_, err = s.svc.LobbyForPlayer(s.ctx, "creator")
	s.ErrorIs(err, matchmaking.ErrLobbyNotFound)
}

func (s *MatchmakingServiceTestSuite) TestStartFailureKeepsLobby() {
	lobby := s.createLobby(false)
	_, err := s.svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: lobby.ID, PlayerID: "joiner"})
	s.Require().NoError(err)

	s.mockSessions.EXPECT().
		StartGame(gomock.Any(), gomock.Any()).
		Return("", errors.New("thread creation failed"))

	_, err = s.svc.Start(s.ctx, &matchmaking.StartInput{LobbyID: lobby.ID, ActorID: "creator"})
	s.Require().Error(err)

	output, err := s.svc.GetLobby(s.ctx, &matchmaking.GetLobbyInput{LobbyID: lobby.ID})
	s.Require().NoError(err)
	s.Len(output.Lobby.Players, 2)
}

func (s *MatchmakingServiceTestSuite) TestLobbyForPlayer() {
	lobby := s.createLobby(false)

	output, err := s.svc.LobbyForPlayer(s.ctx, "creator")
	s.Require().NoError(err)
	s.Equal(lobby.ID, output.Lobby.ID)

	_, err = s.svc.LobbyForPlayer(s.ctx, "stranger")
	s.ErrorIs(err, matchmaking.ErrLobbyNotFound)
}

func (s *MatchmakingServiceTestSuite) TestJoinWhileInSession() {
	sessions := mmMocks.NewMockSessionGateway(s.mockCtrl)
	sessions.EXPECT().InSession("creator").Return(false)
	sessions.EXPECT().InSession("busy").Return(true)

	registry := games.NewRegistry()
	s.Require().NoError(registry.Register(&duelFactory{}))
	svc, err := matchmaking.NewService(&matchmaking.Config{
		Registry:   registry,
		RatingRepo: s.mockRatingRepo,
		Engine:     s.mockEngine,
		Sessions:   sessions,
		Clock:      s.mockClock,
		UUID:       s.mockUUID,
	})
	s.Require().NoError(err)

	output, err := svc.CreateLobby(s.ctx, &matchmaking.CreateLobbyInput{
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		GameType:  "duel",
		CreatorID: "creator",
	})
	s.Require().NoError(err)

	_, err = svc.Join(s.ctx, &matchmaking.JoinInput{LobbyID: output.Lobby.ID, PlayerID: "busy"})
	s.ErrorIs(err, matchmaking.ErrInSession)
}
