package game

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/farplay/blackjack/internal/domain"
	"github.com/farplay/blackjack/internal/domain/mocks"
	"github.com/farplay/blackjack/internal/infrastructure/lock"
	"github.com/farplay/blackjack/internal/infrastructure/logger"
)

const testAddress = "0xdeadbeef"

type fixture struct {
	ctrl       *gomock.Controller
	gameRepo   *mocks.MockGameRepository
	playerRepo *mocks.MockPlayerRepository
	useCase    domain.GameUseCase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	gameRepo := mocks.NewMockGameRepository(ctrl)
	playerRepo := mocks.NewMockPlayerRepository(ctrl)
	log := logger.NewLogger("test", "error")

	return &fixture{
		ctrl:       ctrl,
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		useCase:    NewGameUseCase(gameRepo, playerRepo, lock.NewPlayerLockManager(log), log),
	}
}

// ongoingGame builds a persisted-looking ongoing game with a stacked deck.
// Draw pops from the tail, so the last deck entry is the next card dealt.
func ongoingGame(playerCards, dealerCards domain.Hand, deck domain.Deck) *domain.Game {
	return &domain.Game{
		ID:          42,
		Address:     testAddress,
		PlayerCards: playerCards,
		DealerCards: dealerCards,
		Deck:        deck,
		PlayerScore: playerCards.Score(),
		DealerScore: dealerCards.Score(),
		Status:      domain.GameStatusOngoing,
		Version:     3,
	}
}

func TestStartDealsNewGame(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()
	ctx := context.Background()

	f.playerRepo.EXPECT().EnsureExists(gomock.Any(), testAddress).Return(&domain.Player{ID: 1, Address: testAddress}, nil)
	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(nil, nil)

	var created *domain.Game
	f.gameRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, game *domain.Game) error {
			created = game
			return nil
		})

	game, err := f.useCase.Start(ctx, testAddress)

	assert.NoError(t, err)
	assert.Equal(t, created, game)
	assert.Equal(t, domain.GameStatusOngoing, game.Status)
	assert.Len(t, game.PlayerCards, 2)
	assert.Len(t, game.DealerCards, 2)
	assert.Equal(t, domain.DeckSize-4, game.Deck.Remaining())
	assert.Equal(t, game.PlayerCards.Score(), game.PlayerScore)
	assert.Equal(t, game.DealerCards.Score(), game.DealerScore)

	// No card may appear both in a hand and in the remaining deck.
	inPlay := map[domain.Card]bool{}
	for _, c := range append(append(domain.Hand{}, game.PlayerCards...), game.DealerCards...) {
		inPlay[c] = true
	}
	for _, c := range game.Deck {
		assert.False(t, inPlay[c], "card %v dealt but still in deck", c)
	}
}

func TestStartReturnsExistingActiveGame(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	existing := ongoingGame(domain.Hand{domain.Card(5), domain.Card(9)}, domain.Hand{domain.Card(10), domain.Card(2)}, domain.NewShuffledDeck())

	f.playerRepo.EXPECT().EnsureExists(gomock.Any(), testAddress).Return(&domain.Player{ID: 1, Address: testAddress}, nil)
	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(existing, nil)

	game, err := f.useCase.Start(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Equal(t, existing, game, "duplicate start must observe the existing game")
}

func TestStartLosesCreateRace(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	winner := ongoingGame(domain.Hand{domain.Card(5), domain.Card(9)}, domain.Hand{domain.Card(10), domain.Card(2)}, domain.NewShuffledDeck())

	f.playerRepo.EXPECT().EnsureExists(gomock.Any(), testAddress).Return(&domain.Player{ID: 1, Address: testAddress}, nil)
	gomock.InOrder(
		f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(nil, nil),
		f.gameRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(
			domain.NewAppError(domain.ErrCodeActiveGameExists, "Player already has an active game", 409, nil)),
		f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(winner, nil),
	)

	game, err := f.useCase.Start(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Equal(t, winner, game, "loser of the create race must observe the winner's game")
}

func TestStartRejectsInvalidAddress(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	_, err := f.useCase.Start(context.Background(), "")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeRequiredField))
}

func TestHitNoActiveGame(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(nil, nil)

	_, err := f.useCase.Hit(context.Background(), testAddress)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNoActiveGame))
}

func TestHitDrawsAndStaysOngoing(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	// Next draw is the tail: a two of clubs keeps the player under 21.
	game := ongoingGame(
		domain.Hand{domain.Card(5), domain.Card(9)},
		domain.Hand{domain.Card(10), domain.Card(3)},
		domain.Deck{domain.Card(30), domain.Card(2)},
	)

	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(game, nil)
	f.gameRepo.EXPECT().UpdateWithVersion(gomock.Any(), game, int64(3)).Return(nil)

	updated, err := f.useCase.Hit(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Equal(t, domain.GameStatusOngoing, updated.Status)
	assert.Len(t, updated.PlayerCards, 3)
	assert.Equal(t, domain.Card(2), updated.PlayerCards[2])
	assert.Equal(t, 16, updated.PlayerScore)
	assert.Equal(t, 1, updated.Deck.Remaining())
}

func TestHitBustsPlayer(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	// Player sits at 20; the stacked ten busts them.
	game := ongoingGame(
		domain.Hand{domain.Card(10), domain.Card(23)},
		domain.Hand{domain.Card(9), domain.Card(3)},
		domain.Deck{domain.Card(4), domain.Card(36)},
	)

	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(game, nil)
	f.gameRepo.EXPECT().UpdateWithVersion(gomock.Any(), game, int64(3)).Return(nil)

	updated, err := f.useCase.Hit(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Equal(t, domain.GameStatusPlayerBusted, updated.Status)
	assert.Equal(t, 30, updated.PlayerScore)
}

func TestHitDeckExhaustedIsFatal(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	game := ongoingGame(
		domain.Hand{domain.Card(5), domain.Card(9)},
		domain.Hand{domain.Card(10), domain.Card(3)},
		domain.Deck{},
	)

	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(game, nil)

	_, err := f.useCase.Hit(context.Background(), testAddress)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeDeckExhausted))
}

func TestHitRetriesOnceOnConcurrentModification(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	stale := ongoingGame(
		domain.Hand{domain.Card(5), domain.Card(9)},
		domain.Hand{domain.Card(10), domain.Card(3)},
		domain.Deck{domain.Card(30), domain.Card(2)},
	)
	fresh := ongoingGame(
		domain.Hand{domain.Card(5), domain.Card(9)},
		domain.Hand{domain.Card(10), domain.Card(3)},
		domain.Deck{domain.Card(30), domain.Card(2)},
	)
	fresh.Version = 4

	gomock.InOrder(
		f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(stale, nil),
		f.gameRepo.EXPECT().UpdateWithVersion(gomock.Any(), stale, int64(3)).Return(domain.NewConcurrentModificationError(stale.ID)),
		f.gameRepo.EXPECT().GetByID(gomock.Any(), stale.ID).Return(fresh, nil),
		f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(fresh, nil),
		f.gameRepo.EXPECT().UpdateWithVersion(gomock.Any(), fresh, int64(4)).Return(nil),
	)

	updated, err := f.useCase.Hit(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Len(t, updated.PlayerCards, 3)
}

func TestHitAgainstFinishedGameFails(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	stale := ongoingGame(
		domain.Hand{domain.Card(5), domain.Card(9)},
		domain.Hand{domain.Card(10), domain.Card(3)},
		domain.Deck{domain.Card(30), domain.Card(2)},
	)
	finished := ongoingGame(stale.PlayerCards, stale.DealerCards, domain.Deck{})
	finished.Status = domain.GameStatusDealerWins

	gomock.InOrder(
		f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(stale, nil),
		f.gameRepo.EXPECT().UpdateWithVersion(gomock.Any(), stale, int64(3)).Return(domain.NewConcurrentModificationError(stale.ID)),
		f.gameRepo.EXPECT().GetByID(gomock.Any(), stale.ID).Return(finished, nil),
	)

	_, err := f.useCase.Hit(context.Background(), testAddress)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeGameAlreadyFinished))
}

func TestStandDealerDrawsToSeventeen(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	// Dealer 13 draws the stacked five to reach hard 18 and stands.
	game := ongoingGame(
		domain.Hand{domain.Card(10), domain.Card(9)},
		domain.Hand{domain.Card(10), domain.Card(3)},
		domain.Deck{domain.Card(30), domain.Card(5)},
	)

	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(game, nil)
	f.gameRepo.EXPECT().UpdateWithVersion(gomock.Any(), game, int64(3)).Return(nil)

	updated, err := f.useCase.Stand(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Equal(t, 18, updated.DealerScore)
	assert.Equal(t, 19, updated.PlayerScore)
	assert.Equal(t, domain.GameStatusPlayerWins, updated.Status)
}

func TestStandDealerHitsSoftSeventeen(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	// Dealer A+6 is soft 17 and must draw again; the stacked ten hardens the
	// hand to 17 and the dealer stands.
	game := ongoingGame(
		domain.Hand{domain.Card(10), domain.Card(8)},
		domain.Hand{domain.Card(1), domain.Card(6)},
		domain.Deck{domain.Card(30), domain.Card(23)},
	)

	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(game, nil)
	f.gameRepo.EXPECT().UpdateWithVersion(gomock.Any(), game, int64(3)).Return(nil)

	updated, err := f.useCase.Stand(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Len(t, updated.DealerCards, 3)
	assert.Equal(t, 17, updated.DealerScore)
	assert.Equal(t, domain.GameStatusPlayerWins, updated.Status)
}

func TestStandDealerStandsOnHardSeventeen(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	game := ongoingGame(
		domain.Hand{domain.Card(10), domain.Card(6)},
		domain.Hand{domain.Card(10), domain.Card(7)},
		domain.Deck{domain.Card(30), domain.Card(23)},
	)

	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(game, nil)
	f.gameRepo.EXPECT().UpdateWithVersion(gomock.Any(), game, int64(3)).Return(nil)

	updated, err := f.useCase.Stand(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Len(t, updated.DealerCards, 2, "hard 17 must not draw")
	assert.Equal(t, domain.GameStatusDealerWins, updated.Status)
}

func TestStandDealerBusts(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	// Dealer 16 draws the stacked ten and busts.
	game := ongoingGame(
		domain.Hand{domain.Card(10), domain.Card(2)},
		domain.Hand{domain.Card(10), domain.Card(6)},
		domain.Deck{domain.Card(30), domain.Card(23)},
	)

	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(game, nil)
	f.gameRepo.EXPECT().UpdateWithVersion(gomock.Any(), game, int64(3)).Return(nil)

	updated, err := f.useCase.Stand(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Equal(t, 26, updated.DealerScore)
	assert.Equal(t, domain.GameStatusDealerBusted, updated.Status)
	assert.True(t, updated.Status.IsPlayerWin())
}

func TestStandTie(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	game := ongoingGame(
		domain.Hand{domain.Card(10), domain.Card(8)},
		domain.Hand{domain.Card(10), domain.Card(8)},
		domain.Deck{domain.Card(30)},
	)

	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(game, nil)
	f.gameRepo.EXPECT().UpdateWithVersion(gomock.Any(), game, int64(3)).Return(nil)

	updated, err := f.useCase.Stand(context.Background(), testAddress)

	assert.NoError(t, err)
	assert.Equal(t, domain.GameStatusTie, updated.Status)
}

func TestStandNoActiveGame(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()

	f.gameRepo.EXPECT().GetActiveByAddress(gomock.Any(), testAddress).Return(nil, nil)

	_, err := f.useCase.Stand(context.Background(), testAddress)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNoActiveGame))
}

func TestResolveTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		player domain.Hand
		dealer domain.Hand
		status domain.GameStatus
	}{
		{"Player_Higher", domain.Hand{domain.Card(10), domain.Card(9)}, domain.Hand{domain.Card(10), domain.Card(7)}, domain.GameStatusPlayerWins},
		{"Dealer_Higher", domain.Hand{domain.Card(10), domain.Card(7)}, domain.Hand{domain.Card(10), domain.Card(9)}, domain.GameStatusDealerWins},
		{"Equal", domain.Hand{domain.Card(10), domain.Card(7)}, domain.Hand{domain.Card(23), domain.Card(20)}, domain.GameStatusTie},
		{"Dealer_Bust", domain.Hand{domain.Card(2), domain.Card(3)}, domain.Hand{domain.Card(10), domain.Card(23), domain.Card(36)}, domain.GameStatusDealerBusted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, resolve(tt.player, tt.dealer))
		})
	}
}
