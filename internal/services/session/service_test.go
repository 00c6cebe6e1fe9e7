package session_test

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
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
	matchRepo "github.com/parlorbot/parlor/internal/repositories/match"
	matchMocks "github.com/parlorbot/parlor/internal/repositories/match/mocks"
	ratingRepo "github.com/parlorbot/parlor/internal/repositories/rating"
	ratingMocks "github.com/parlorbot/parlor/internal/repositories/rating/mocks"
	"github.com/parlorbot/parlor/internal/services/messaging"
	"github.com/parlorbot/parlor/internal/services/session"
	"github.com/parlorbot/parlor/internal/transport"
	transportMocks "github.com/parlorbot/parlor/internal/transport/mocks"
)

// tapGame is a minimal turn-taking game: each tap passes the turn, and the
// game ends once the configured number of taps lands.
type tapGame struct {
	players []*models.Player
	turn    int
	taps    int

	winAt   int
	drawAt  int
	moveErr error
	panics  bool

	outcome *models.Outcome
}

func (g *tapGame) State() *games.State {
	return &games.State{
		Fields: []games.StateField{{Name: "Taps", Value: fmt.Sprintf("%d", g.taps)}},
		Buttons: []games.StateButton{{
			Label:        "Tap",
			Style:        games.ButtonStylePrimary,
			Move:         "tap",
			TurnRequired: true,
		}},
	}
}

func (g *tapGame) CurrentTurn() *models.Player {
	return g.players[g.turn]
}

func (g *tapGame) Outcome() *models.Outcome {
	return g.outcome
}

func (g *tapGame) Resolve(name string) (games.MoveHandler, bool) {
	if name != "tap" {
		return nil, false
	}
	return func(actor *models.Player, args games.Args) error {
		if g.moveErr != nil {
			return g.moveErr
		}
		if g.panics {
			panic("tap exploded")
		}
		g.taps++
		g.turn = (g.turn + 1) % len(g.players)
		if g.winAt > 0 && g.taps >= g.winAt {
			g.outcome = models.WinnerOutcome(g.players[0])
		}
		if g.drawAt > 0 && g.taps >= g.drawAt {
			g.outcome = models.PlacementOutcome([][]*models.Player{g.players})
		}
		return nil
	}, true
}

type tapFactory struct {
	winAt   int
	drawAt  int
	moveErr error
	panics  bool
}

func (f *tapFactory) GameType() string          { return "tap" }
func (f *tapFactory) Name() string              { return "Tap Race" }
func (f *tapFactory) Description() string       { return "first to tap wins" }
func (f *tapFactory) PlayerCounts() []int       { return []int{2} }
func (f *tapFactory) Ordering() ordering.Policy { return ordering.PolicyPreserve }

func (f *tapFactory) Moves() []games.MoveDescriptor {
	return []games.MoveDescriptor{{Name: "tap", Description: "tap the button", TurnRequired: true}}
}

func (f *tapFactory) New(players []*models.Player) (games.Plugin, error) {
	return &tapGame{
		players: players,
		winAt:   f.winAt,
		drawAt:  f.drawAt,
		moveErr: f.moveErr,
		panics:  f.panics,
	}, nil
}

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockRatingRepo *ratingMocks.MockRepository
	mockMatchRepo  *matchMocks.MockRepository
	mockEngine     *engineMocks.MockEngine
	mockMessenger  *transportMocks.MockMessenger
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	ctx            context.Context

	testTime time.Time
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRatingRepo = ratingMocks.NewMockRepository(s.mockCtrl)
	s.mockMatchRepo = matchMocks.NewMockRepository(s.mockCtrl)
	s.mockEngine = engineMocks.NewMockEngine(s.mockCtrl)
	s.mockMessenger = transportMocks.NewMockMessenger(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 5, 1, 19, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	nextID := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		nextID++
		return fmt.Sprintf("id-%d", nextID)
	}).AnyTimes()

	s.mockEngine.EXPECT().
		InitialRating("tap").
		Return(ratings.PlayerRating{Mu: 1000, Sigma: 1000.0 / 6.0}).
		AnyTimes()
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) newService(factory *tapFactory) session.Service {
	registry := games.NewRegistry()
	s.Require().NoError(registry.Register(factory))

	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{RandSeed: 7})
	s.Require().NoError(err)

	svc, err := session.NewService(&session.Config{
		Registry:   registry,
		RatingRepo: s.mockRatingRepo,
		MatchRepo:  s.mockMatchRepo,
		Engine:     s.mockEngine,
		Messenger:  s.mockMessenger,
		Messaging:  msgSvc,
		Clock:      s.mockClock,
		UUID:       s.mockUUID,
		RandSeed:   42,
	})
	s.Require().NoError(err)
	return svc
}

func (s *SessionServiceTestSuite) expectStart(ratingRecords map[string]*models.RatingRecord) {
	s.mockRatingRepo.EXPECT().
		GetRatings(gomock.Any(), gomock.Any()).
		Return(&ratingRepo.GetRatingsOutput{Ratings: ratingRecords}, nil)
	s.mockMessenger.EXPECT().
		CreateGameThread(gomock.Any(), "channel-1", gomock.Any()).
		Return("thread-1", nil)
	s.mockMessenger.EXPECT().AddThreadMember(gomock.Any(), "thread-1", "p1").Return(nil)
	s.mockMessenger.EXPECT().AddThreadMember(gomock.Any(), "thread-1", "p2").Return(nil)
}

func (s *SessionServiceTestSuite) startInput(rated bool) *session.StartGameInput {
	return &session.StartGameInput{
		LobbyID:   "lobby-1",
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		GameType:  "tap",
		Rated:     rated,
		CreatorID: "p1",
		Players: []*models.Player{
			{ID: "p1", Name: "Alice", Mu: 1000, Sigma: 1000.0 / 6.0},
			{ID: "p2", Name: "Bob", Mu: 1000, Sigma: 1000.0 / 6.0},
		},
	}
}

func (s *SessionServiceTestSuite) TestStartGameSeatsAndAnnounces() {
	svc := s.newService(&tapFactory{winAt: 10})

	s.expectStart(map[string]*models.RatingRecord{
		"p1": {PlayerID: "p1", GuildID: "guild-1", GameType: "tap", Mu: 1100, Sigma: 90},
	})

	var posted *transport.MessageContent
	s.mockMessenger.EXPECT().
		SendMessage(gomock.Any(), "thread-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, content *transport.MessageContent) (*transport.MessageHandle, error) {
			posted = content
			return &transport.MessageHandle{ChannelID: "thread-1", MessageID: "m1"}, nil
		})

	output, err := svc.StartGame(s.ctx, s.startInput(true))
	s.Require().NoError(err)
	s.Equal("id-1", output.SessionID)
	s.Equal("thread-1", output.ThreadID)

	s.Require().NotNil(posted)
	s.Equal("Tap Race", posted.Title)
	s.Contains(posted.Description, "<@p1>")
	s.Require().Len(posted.Buttons, 1)
	s.Equal(transport.ActionMove, posted.Buttons[0].Action.Type)
	s.Equal(output.SessionID, posted.Buttons[0].Action.SessionID)
	s.Equal("tap", posted.Buttons[0].Action.Move)

	s.True(svc.InSession("p1"))
	s.True(svc.InSession("p2"))

	got, err := svc.GetSession(s.ctx, &session.GetSessionInput{SessionID: output.SessionID})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Players, 2)
	// stored rating refreshed, fresh player seeded
	s.InDelta(1100.0, got.Session.Players[0].Mu, 1e-9)
	s.InDelta(1000.0, got.Session.Players[1].Mu, 1e-9)
	s.Equal("p1", got.Session.CurrentTurnID)
	s.False(got.Session.Ended)
}

func (s *SessionServiceTestSuite) TestStartGameUnknownGameType() {
	svc := s.newService(&tapFactory{winAt: 10})

	input := s.startInput(true)
	input.GameType = "checkers"
	_, err := svc.StartGame(s.ctx, input)
	s.ErrorIs(err, games.ErrUnknownGameType)
}

func (s *SessionServiceTestSuite) TestStartGamePlayerBusy() {
	svc := s.newService(&tapFactory{winAt: 10})

	s.expectStart(nil)
	s.mockMessenger.EXPECT().
		SendMessage(gomock.Any(), "thread-1", gomock.Any()).
		Return(&transport.MessageHandle{ChannelID: "thread-1", MessageID: "m1"}, nil)

	_, err := svc.StartGame(s.ctx, s.startInput(true))
	s.Require().NoError(err)

	_, err = svc.StartGame(s.ctx, s.startInput(true))
	s.ErrorIs(err, session.ErrPlayerBusy)
}

func (s *SessionServiceTestSuite) start(svc session.Service, rated bool) string {
	s.expectStart(nil)
	s.mockMessenger.EXPECT().
		SendMessage(gomock.Any(), "thread-1", gomock.Any()).
		Return(&transport.MessageHandle{ChannelID: "thread-1", MessageID: "m1"}, nil)

	output, err := svc.StartGame(s.ctx, s.startInput(rated))
	s.Require().NoError(err)
	return output.SessionID
}

func (s *SessionServiceTestSuite) TestSubmitMoveTurnOrder() {
	svc := s.newService(&tapFactory{winAt: 10})
	sessionID := s.start(svc, true)

	_, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: sessionID, PlayerID: "p2", Move: "tap",
	})
	s.ErrorIs(err, session.ErrNotYourTurn)

	s.mockMessenger.EXPECT().
		EditMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	output, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: sessionID, PlayerID: "p1", Move: "tap",
	})
	s.Require().NoError(err)
	s.False(output.Ended)

	// turn has passed to p2
	_, err = svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: sessionID, PlayerID: "p1", Move: "tap",
	})
	s.ErrorIs(err, session.ErrNotYourTurn)
}

func (s *SessionServiceTestSuite) TestConcurrentMovesApplyExactlyOnce() {
	const winAt = 25

	svc := s.newService(&tapFactory{winAt: winAt})
	sessionID := s.start(svc, false)

	s.mockMessenger.EXPECT().
		EditMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	s.mockMessenger.EXPECT().CloseThread(gomock.Any(), "thread-1").Return(nil)
	s.mockMatchRepo.EXPECT().RecordMatch(gomock.Any(), gomock.Any()).Return(nil)

	var applied int64
	errs := make(chan error, 3)

	// both players hammer the button; only the turn holder's tap may land
	tap := func(playerID string) {
		for {
			_, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
				SessionID: sessionID, PlayerID: playerID, Move: "tap",
			})
			switch {
			case err == nil:
				atomic.AddInt64(&applied, 1)
			case errors.Is(err, session.ErrNotYourTurn):
				runtime.Gosched()
			case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, session.ErrGameEnding):
				return
			default:
				errs <- err
				return
			}
		}
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); tap("p1") }()
	go func() { defer wg.Done(); tap("p2") }()
	go func() {
		defer wg.Done()
		// a reader racing the movers must see consistent snapshots
		for {
			_, err := svc.GetSession(s.ctx, &session.GetSessionInput{SessionID: sessionID})
			if errors.Is(err, session.ErrSessionNotFound) {
				return
			}
			if err != nil {
				errs <- err
				return
			}
			runtime.Gosched()
		}
	}()
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}
	s.Equal(int64(winAt), atomic.LoadInt64(&applied))
	s.False(svc.InSession("p1"))
	s.False(svc.InSession("p2"))
	_, err := svc.GetSession(s.ctx, &session.GetSessionInput{SessionID: sessionID})
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestSubmitMoveUnknownMove() {
	svc := s.newService(&tapFactory{winAt: 10})
	sessionID := s.start(svc, true)

	_, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: sessionID, PlayerID: "p1", Move: "clap",
	})
	s.ErrorIs(err, games.ErrUnknownMove)
}

func (s *SessionServiceTestSuite) TestSubmitMoveNotParticipant() {
	svc := s.newService(&tapFactory{winAt: 10})
	sessionID := s.start(svc, true)

	_, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: sessionID, PlayerID: "stranger", Move: "tap",
	})
	s.ErrorIs(err, session.ErrNotInSession)
}

func (s *SessionServiceTestSuite) TestSubmitMoveUnknownSession() {
	svc := s.newService(&tapFactory{winAt: 10})

	_, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: "nope", PlayerID: "p1", Move: "tap",
	})
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestWinningMoveSettlesRatings() {
	svc := s.newService(&tapFactory{winAt: 1})
	sessionID := s.start(svc, true)

	s.mockEngine.EXPECT().
		Rate("tap", gomock.Any(), []int{0, 1}).
		Return([]ratings.PlayerRating{
			{Mu: 1012, Sigma: 150},
			{Mu: 988, Sigma: 150},
		}, nil)
	s.mockRatingRepo.EXPECT().
		GetRatings(gomock.Any(), gomock.Any()).
		Return(&ratingRepo.GetRatingsOutput{Ratings: map[string]*models.RatingRecord{
			"p1": {PlayerID: "p1", MatchesPlayed: 3},
		}}, nil)

	saved := make(map[string]*models.RatingRecord)
	s.mockRatingRepo.EXPECT().
		UpsertRating(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ratingRepo.UpsertRatingInput) error {
			saved[input.Rating.PlayerID] = input.Rating
			return nil
		}).
		Times(2)

	var recorded *models.Match
	s.mockMatchRepo.EXPECT().
		RecordMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.RecordMatchInput) error {
			recorded = input.Match
			return nil
		})

	s.mockMessenger.EXPECT().EditMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().CloseThread(gomock.Any(), "thread-1").Return(nil)

	output, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: sessionID, PlayerID: "p1", Move: "tap",
	})
	s.Require().NoError(err)
	s.True(output.Ended)

	s.Require().Contains(saved, "p1")
	s.Require().Contains(saved, "p2")
	s.InDelta(1012.0, saved["p1"].Mu, 1e-9)
	s.Equal(4, saved["p1"].MatchesPlayed)
	s.Equal(1, saved["p2"].MatchesPlayed)
	s.Equal(s.testTime, saved["p1"].LastPlayed)

	s.Require().NotNil(recorded)
	s.Equal("guild-1", recorded.GuildID)
	s.True(recorded.Rated)
	s.Require().Len(recorded.Participants, 2)
	s.Equal(0, recorded.Participants[0].Rank)
	s.Equal(1, recorded.Participants[1].Rank)
	s.InDelta(12.0, recorded.Participants[0].MuDelta, 1e-9)
	s.InDelta(-12.0, recorded.Participants[1].MuDelta, 1e-9)

	// the session is gone
	s.False(svc.InSession("p1"))
	_, err = svc.GetSession(s.ctx, &session.GetSessionInput{SessionID: sessionID})
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestUnratedMatchRecordsHistoryOnly() {
	svc := s.newService(&tapFactory{winAt: 1})
	sessionID := s.start(svc, false)

	var recorded *models.Match
	s.mockMatchRepo.EXPECT().
		RecordMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.RecordMatchInput) error {
			recorded = input.Match
			return nil
		})
	s.mockMessenger.EXPECT().EditMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().CloseThread(gomock.Any(), "thread-1").Return(nil)

	output, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: sessionID, PlayerID: "p1", Move: "tap",
	})
	s.Require().NoError(err)
	s.True(output.Ended)

	s.Require().NotNil(recorded)
	s.False(recorded.Rated)
	s.InDelta(0.0, recorded.Participants[0].MuDelta, 1e-9)
	s.InDelta(0.0, recorded.Participants[1].MuDelta, 1e-9)
}

func (s *SessionServiceTestSuite) TestDrawSettlesSharedRank() {
	svc := s.newService(&tapFactory{drawAt: 1})
	sessionID := s.start(svc, true)

	s.mockEngine.EXPECT().
		Rate("tap", gomock.Any(), []int{0, 0}).
		Return([]ratings.PlayerRating{
			{Mu: 1000, Sigma: 150},
			{Mu: 1000, Sigma: 150},
		}, nil)
	s.mockRatingRepo.EXPECT().
		GetRatings(gomock.Any(), gomock.Any()).
		Return(&ratingRepo.GetRatingsOutput{Ratings: nil}, nil)
	s.mockRatingRepo.EXPECT().UpsertRating(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	var recorded *models.Match
	s.mockMatchRepo.EXPECT().
		RecordMatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.RecordMatchInput) error {
			recorded = input.Match
			return nil
		})
	s.mockMessenger.EXPECT().EditMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().CloseThread(gomock.Any(), "thread-1").Return(nil)

	_, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: sessionID, PlayerID: "p1", Move: "tap",
	})
	s.Require().NoError(err)

	s.Require().NotNil(recorded)
	s.True(recorded.Participants[0].Tied)
	s.True(recorded.Participants[1].Tied)
	s.Equal(recorded.Participants[0].Rank, recorded.Participants[1].Rank)
}

func (s *SessionServiceTestSuite) TestFailedMoveLeavesGameRunning() {
	svc := s.newService(&tapFactory{winAt: 10, moveErr: errors.New("that square is taken")})
	sessionID := s.start(svc, true)

	_, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: sessionID, PlayerID: "p1", Move: "tap",
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "taken")

	// no render, no settlement; the session is still live
	s.True(svc.InSession("p1"))
	got, err := svc.GetSession(s.ctx, &session.GetSessionInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal("p1", got.Session.CurrentTurnID)
}

func (s *SessionServiceTestSuite) TestPanickingMoveAbortsWithoutSettlement() {
	svc := s.newService(&tapFactory{winAt: 10, panics: true})
	sessionID := s.start(svc, true)

	s.mockMessenger.EXPECT().EditMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockMessenger.EXPECT().CloseThread(gomock.Any(), "thread-1").Return(nil)

	_, err := svc.SubmitMove(s.ctx, &session.SubmitMoveInput{
		SessionID: sessionID, PlayerID: "p1", Move: "tap",
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "panicked")

	// aborted without touching ratings or history
	s.False(svc.InSession("p1"))
	_, err = svc.GetSession(s.ctx, &session.GetSessionInput{SessionID: sessionID})
	s.ErrorIs(err, session.ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestThreadNameCarriesPlayers() {
	svc := s.newService(&tapFactory{winAt: 10})

	s.mockRatingRepo.EXPECT().
		GetRatings(gomock.Any(), gomock.Any()).
		Return(&ratingRepo.GetRatingsOutput{Ratings: nil}, nil)
	s.mockMessenger.EXPECT().
		CreateGameThread(gomock.Any(), "channel-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, name string) (string, error) {
			s.True(strings.HasPrefix(name, "Tap Race: "))
			s.Contains(name, "Alice")
			s.Contains(name, "Bob")
			return "thread-1", nil
		})
	s.mockMessenger.EXPECT().AddThreadMember(gomock.Any(), "thread-1", gomock.Any()).Return(nil).Times(2)
	s.mockMessenger.EXPECT().
		SendMessage(gomock.Any(), "thread-1", gomock.Any()).
		Return(&transport.MessageHandle{ChannelID: "thread-1", MessageID: "m1"}, nil)

	_, err := svc.StartGame(s.ctx, s.startInput(true))
	s.Require().NoError(err)
}
