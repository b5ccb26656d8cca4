package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

var (
	ErrGameNotStarted = errors.New("game has not started")
	ErrGameOver       = errors.New("game is already over")
)

// PlayState represents the state of the current game
// Idle -> no cards dealt yet
// InProgress -> game in progress
// Won -> every foundation is complete
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Won
)

func (ps PlayState) String() string {
	switch ps {
	case InProgress:
		return "inProgress"
	case Won:
		return "won"
	}
	return "idle"
}

// GameEngine runs one game of Klondike on behalf of a presentation layer.
// All methods are safe to call from multiple goroutines.
type GameEngine interface {
	ID() string
	CreatedAt() time.Time
	Start(seed *int64) int64
	Play(cmd protocol.Command) (protocol.Result, error)
	Board() (protocol.Board, error)
	PlayState() PlayState
	Rules() game.Rules
	Seed() int64
}

type GameEngineOpts struct {
	GameID string
	Rules  game.Rules
	Logger *zap.Logger
	// Game resumes from an existing position instead of waiting for Start
	Game *game.Klondike
	// CheckInvariants verifies the board after every command
	CheckInvariants bool
}

type gameEngine struct {
	mu              sync.Mutex
	id              string
	createdAt       time.Time
	rules           game.Rules
	game            *game.Klondike
	seed            int64
	playState       PlayState
	checkInvariants bool
	logger          *zap.Logger
}

// NewID returns a new game ID
func NewID() string {
	return uuid.NewV4().String()
}

// New constructs a GameEngine
func New(opts GameEngineOpts) GameEngine {
	if opts.GameID == "" {
		opts.GameID = NewID()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ge := &gameEngine{
		id:              opts.GameID,
		createdAt:       time.Now(),
		rules:           opts.Rules,
		checkInvariants: opts.CheckInvariants,
		logger:          opts.Logger.With(zap.String("game_id", opts.GameID)),
	}

	if opts.Game != nil {
		ge.game = opts.Game
		ge.rules = opts.Game.Rules()
		ge.playState = InProgress
		if ge.game.IsWon() {
			ge.playState = Won
		}
	}

	return ge
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) CreatedAt() time.Time {
	return ge.createdAt
}

func (ge *gameEngine) Rules() game.Rules {
	return ge.rules
}

func (ge *gameEngine) Seed() int64 {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.seed
}

func (ge *gameEngine) PlayState() PlayState {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.playState
}

// Start deals a new game, discarding any game in progress.
// A nil seed is taken from the clock. The seed used is returned so the
// deal can be replayed.
func (ge *gameEngine) Start(seed *int64) int64 {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}

	if ge.game == nil {
		ge.game = game.New(game.Opts{Rules: ge.rules, RNG: deck.Seeded(s)})
	} else {
		ge.game.NewGame(deck.Seeded(s))
	}
	ge.seed = s
	ge.playState = InProgress

	ge.logger.Info("new game",
		zap.Int64("seed", s),
		zap.Bool("king_only_on_empty", ge.rules.KingOnlyOnEmpty),
		zap.Bool("foundation_moves", ge.rules.FoundationMoves),
	)

	return s
}

// Play applies one command to the game
func (ge *gameEngine) Play(cmd protocol.Command) (protocol.Result, error) {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	switch ge.playState {
	case Idle:
		return protocol.Result{}, ErrGameNotStarted
	case Won:
		return protocol.Result{}, ErrGameOver
	}

	res := ge.game.HandleCommand(cmd)

	fields := []zap.Field{
		zap.Stringer("command", cmd),
		zap.Stringer("outcome", res.Outcome),
	}
	if !res.Card.IsNull() {
		fields = append(fields, zap.Stringer("card", res.Card))
	}

	switch res.Outcome {
	case protocol.MoveApplied:
		fields = append(fields, zap.Stringer("from", res.From), zap.Stringer("to", res.To))
	case protocol.MoveRejected:
		fields = append(fields, zap.String("reason", res.Error))
	}
	ge.logger.Debug("command handled", fields...)

	if ge.checkInvariants {
		if err := ge.game.CheckInvariants(); err != nil {
			ge.logger.DPanic("board invariant broken", zap.Stringer("command", cmd), zap.Error(err))
		}
	}

	if ge.game.IsWon() {
		ge.playState = Won
		ge.logger.Info("game won", zap.Int64("seed", ge.seed))
	}

	return res, nil
}

// Board returns a snapshot of the game
func (ge *gameEngine) Board() (protocol.Board, error) {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	if ge.game == nil {
		return protocol.Board{}, ErrGameNotStarted
	}
	return ge.game.Board(), nil
}
