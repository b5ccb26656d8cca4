package engine

import (
	"sync"
	"testing"

	utils "github.com/minaorangina/klondike/internal"
	"github.com/minaorangina/klondike/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGameEngineConstructor(t *testing.T) {
	t.Run("keeps the given ID", func(t *testing.T) {
		ge := New(GameEngineOpts{GameID: "some-id"})
		utils.AssertEqual(t, ge.ID(), "some-id")
	})

	t.Run("generates an ID when none is given", func(t *testing.T) {
		ge1, ge2 := New(GameEngineOpts{}), New(GameEngineOpts{})
		utils.AssertNotEmptyString(t, ge1.ID())
		assert.NotEqual(t, ge1.ID(), ge2.ID())
		assert.False(t, ge1.CreatedAt().IsZero())
	})

	t.Run("is idle until started", func(t *testing.T) {
		ge := New(GameEngineOpts{})
		assert.Equal(t, Idle, ge.PlayState())

		_, err := ge.Play(protocol.Stock())
		assert.ErrorIs(t, err, ErrGameNotStarted)

		_, err = ge.Board()
		assert.ErrorIs(t, err, ErrGameNotStarted)
	})

	t.Run("resumes an existing game", func(t *testing.T) {
		g := oneMoveFromWinning()
		ge := New(GameEngineOpts{Game: g})

		assert.Equal(t, InProgress, ge.PlayState())
		assert.Equal(t, g.Rules(), ge.Rules())
	})
}

func TestGameEngineStart(t *testing.T) {
	t.Run("same seed deals the same game", func(t *testing.T) {
		ge1, ge2 := New(GameEngineOpts{}), New(GameEngineOpts{})

		utils.AssertEqual(t, ge1.Start(seed(12)), int64(12))
		ge2.Start(seed(12))

		b1, err := ge1.Board()
		utils.AssertNoError(t, err)
		b2, err := ge2.Board()
		utils.AssertNoError(t, err)

		assert.Equal(t, b1, b2)
		assert.Equal(t, InProgress, ge1.PlayState())
		utils.AssertEqual(t, ge1.Seed(), int64(12))
	})

	t.Run("restarting deals a fresh game", func(t *testing.T) {
		ge := New(GameEngineOpts{})
		ge.Start(seed(1))
		_, err := ge.Play(protocol.Stock())
		utils.AssertNoError(t, err)

		ge.Start(seed(2))
		b, err := ge.Board()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, b.Stock.Count, 24)
		utils.AssertEqual(t, b.Waste.Count, 0)
	})

	t.Run("picks a seed when none is given", func(t *testing.T) {
		ge := New(GameEngineOpts{})
		s := ge.Start(nil)
		utils.AssertEqual(t, ge.Seed(), s)
	})
}

func TestGameEnginePlay(t *testing.T) {
	t.Run("applies commands to the game", func(t *testing.T) {
		ge := New(GameEngineOpts{CheckInvariants: true})
		ge.Start(seed(4))

		res, err := ge.Play(protocol.Stock())
		utils.AssertNoError(t, err)
		assert.Equal(t, protocol.StockTurned, res.Outcome)

		res, err = ge.Play(protocol.Waste())
		utils.AssertNoError(t, err)
		assert.Equal(t, protocol.Selected, res.Outcome)

		b, _ := ge.Board()
		require.NotNil(t, b.Selected)
		assert.Equal(t, res.Card, *b.Selected)
	})

	t.Run("is won once the foundations are complete", func(t *testing.T) {
		ge := New(GameEngineOpts{Game: oneMoveFromWinning()})

		ge.Play(protocol.Waste())
		res, err := ge.Play(protocol.Foundation(3))
		utils.AssertNoError(t, err)
		assert.Equal(t, protocol.MoveApplied, res.Outcome)
		assert.Equal(t, Won, ge.PlayState())

		_, err = ge.Play(protocol.Stock())
		assert.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("serialises concurrent callers", func(t *testing.T) {
		ge := New(GameEngineOpts{CheckInvariants: true})
		ge.Start(seed(8))

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					ge.Play(protocol.Stock())
					ge.Play(protocol.Waste())
					ge.Board()
				}
			}()
		}
		wg.Wait()

		b, err := ge.Board()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, b.Stock.Count+b.Waste.Count, 24)
	})
}

func TestGameEngineLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ge := New(GameEngineOpts{GameID: "logged", Game: oneMoveFromWinning(), Logger: zap.New(core)})

	ge.Play(protocol.Waste())
	ge.Play(protocol.Foundation(3))

	handled := logs.FilterMessage("command handled").All()
	require.Len(t, handled, 2)
	assert.Equal(t, "logged", handled[0].ContextMap()["game_id"])
	assert.Equal(t, "Selected", handled[0].ContextMap()["outcome"])
	assert.Equal(t, "MoveApplied", handled[1].ContextMap()["outcome"])

	utils.AssertEqual(t, logs.FilterMessage("game won").Len(), 1)
}

func TestPlayState(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "inProgress", InProgress.String())
	assert.Equal(t, "won", Won.String())
}
