package game

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/grazios/pokemon-tcg-ai/internal/log"
)

const (
	// PrizeTarget is the number of prizes that wins the match.
	PrizeTarget = 6
	// DefaultMaxTurns is the turn ceiling before the tie-break.
	DefaultMaxTurns = 200

	// NoWinner marks a match still running, or a finished match that
	// ended in a draw.
	NoWinner = -1
)

// Config configures a match.
type Config struct {
	Decks    [2][]Card
	Seed     int64
	Logger   log.EventLogger
	MaxTurns int

	// NoShuffle keeps decks in list order, for deterministic tests.
	NoShuffle bool

	// RandomFirst picks the opening player from the seeded RNG. When
	// false, player 0 always goes first.
	RandomFirst bool
}

// Game is a single match between two players. It is the only entry point:
// callers drive it through Reset, LegalActions, and Step.
type Game struct {
	Players   [2]*Player
	Current   int
	TurnCount int
	Done      bool
	Winner    int

	HasAttacked       bool
	Stadium           *TrainerCard
	StadiumOwner      int
	BriarActive       bool
	PendingCopyAttack bool

	MatchID     uuid.UUID
	FirstPlayer int

	cfg      Config
	rng      *rand.Rand
	logger   log.EventLogger
	registry *Registry
	maxTurns int

	// Shaped penalty computed by the most recent end turn.
	endTurnPenalty float64
}

func NewGame(cfg Config) *Game {
	g := &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		logger:   cfg.Logger,
		registry: DefaultRegistry,
		maxTurns: cfg.MaxTurns,
	}
	if g.maxTurns <= 0 {
		g.maxTurns = DefaultMaxTurns
	}
	g.Reset()
	return g
}

// Reset starts a fresh match with the configured decks.
func (g *Game) Reset() {
	g.MatchID = uuid.New()
	for i := range g.Players {
		deck := make([]Card, len(g.cfg.Decks[i]))
		copy(deck, g.cfg.Decks[i])
		g.Players[i] = NewPlayer(i, deck, g.rng)
	}
	g.TurnCount = 0
	g.Done = false
	g.Winner = NoWinner
	g.HasAttacked = false
	g.Stadium = nil
	g.StadiumOwner = -1
	g.BriarActive = false
	g.PendingCopyAttack = false
	g.endTurnPenalty = 0

	g.FirstPlayer = 0
	if g.cfg.RandomFirst {
		g.FirstPlayer = g.rng.Intn(2)
	}
	g.Current = g.FirstPlayer

	for i, p := range g.Players {
		if !g.cfg.NoShuffle {
			g.log(log.NewShuffleEvent(0, i))
		}
		mulligans := p.Setup(!g.cfg.NoShuffle)
		for m := 0; m < mulligans; m++ {
			g.log(log.NewMulliganEvent(0, i))
		}
	}

	// Auto-place the first Basic in hand as the opening active.
	for i, p := range g.Players {
		for hi, c := range p.Hand {
			if pc, ok := c.(*PokemonCard); ok && pc.IsBasic() {
				inst := p.PlaceActive(hi)
				g.log(log.NewPlaceActiveEvent(0, i, inst.Def.Name))
				break
			}
		}
	}

	g.TurnCount = 1
	g.CurrentPlayer().StartTurn()
	// Setup actives predate turn 1 but still may not evolve during it.
	if a := g.CurrentPlayer().Active; a != nil {
		a.PlayedThisTurn = true
	}
	g.log(log.NewTurnEvent(g.TurnCount, g.Current))
	// The player going first skips the turn draw.
}

func (g *Game) CurrentPlayer() *Player { return g.Players[g.Current] }
func (g *Game) Opponent() *Player     { return g.Players[1-g.Current] }

func (g *Game) log(e log.GameEvent) {
	if g.logger != nil {
		g.logger.Log(e)
	}
}

// endTurn closes out the current player's turn and starts the opponent's.
func (g *Game) endTurn() {
	player := g.CurrentPlayer()

	// Shaping nudge against ending the turn with an unpowered active.
	if player.Active != nil && player.Active.TotalEnergy() == 0 {
		g.endTurnPenalty = -0.01
	} else {
		g.endTurnPenalty = 0
	}

	// End-of-turn tools leave play.
	for _, inst := range player.AllInPlay() {
		if inst.Tool != nil && inst.Tool.Effect == TrainerTMEvolution {
			g.log(log.NewDiscardEvent(g.TurnCount, player.Index, inst.Tool.Name, "end of turn"))
			player.Discard = append(player.Discard, inst.Tool)
			inst.Tool = nil
		}
	}

	g.log(log.NewEndTurnEvent(g.TurnCount, g.Current))
	g.HasAttacked = false
	g.BriarActive = false
	g.PendingCopyAttack = false

	g.Current = 1 - g.Current
	g.TurnCount++

	if g.TurnCount > g.maxTurns {
		g.Done = true
		p0, p1 := g.Players[0].PrizesTaken, g.Players[1].PrizesTaken
		switch {
		case p0 > p1:
			g.Winner = 0
			g.log(log.NewWinEvent(g.TurnCount, 0, "turn limit, ahead on prizes"))
		case p1 > p0:
			g.Winner = 1
			g.log(log.NewWinEvent(g.TurnCount, 1, "turn limit, ahead on prizes"))
		default:
			g.Winner = NoWinner
			g.log(log.NewDrawGameEvent(g.TurnCount, "turn limit"))
		}
		return
	}

	next := g.CurrentPlayer()
	next.StartTurn()
	g.log(log.NewTurnEvent(g.TurnCount, g.Current))

	if n, ok := next.Draw(1); !ok {
		g.Done = true
		g.Winner = 1 - g.Current
		g.log(log.NewWinEvent(g.TurnCount, g.Winner, "opponent decked out"))
		return
	} else if n > 0 {
		g.log(log.NewDrawEvent(g.TurnCount, g.Current, n))
	}
}

// checkWinConditions runs the standing terminal checks: prize target,
// prize exhaustion, then board wipe.
func (g *Game) checkWinConditions() {
	if g.Done {
		return
	}
	for i, p := range g.Players {
		if p.PrizesTaken >= PrizeTarget || (len(p.Prizes) == 0 && p.PrizesTaken > 0) {
			g.Done = true
			g.Winner = i
			g.log(log.NewWinEvent(g.TurnCount, i, "all prizes taken"))
			return
		}
	}
	for i, p := range g.Players {
		if p.Active == nil && len(p.Bench) == 0 {
			g.Done = true
			g.Winner = 1 - i
			g.log(log.NewWinEvent(g.TurnCount, g.Winner, "opponent has no Pokemon left"))
			return
		}
	}
}

// setStadium puts a new stadium into play, discarding any prior one.
func (g *Game) setStadium(owner int, card *TrainerCard) {
	g.discardStadium()
	g.Stadium = card
	g.StadiumOwner = owner
	g.log(log.NewStadiumEvent(g.TurnCount, owner, card.Name))
	g.updateBenchLimits()
}

func (g *Game) discardStadium() {
	if g.Stadium == nil {
		return
	}
	owner := g.StadiumOwner
	if owner < 0 || owner > 1 {
		owner = 0
	}
	g.Players[owner].Discard = append(g.Players[owner].Discard, g.Stadium)
	g.Stadium = nil
	g.StadiumOwner = -1
	g.updateBenchLimits()
}

// updateBenchLimits recomputes bench capacity from the stadium in play and
// discards any Pokémon past a shrunk limit.
func (g *Game) updateBenchLimits() {
	for _, p := range g.Players {
		limit := DefaultMaxBench
		if g.Stadium != nil && g.Stadium.Effect == TrainerAreaZeroUnderdepths && p.HasTeraInPlay() {
			limit = MaxBenchSlots
		}
		p.MaxBench = limit
		for len(p.Bench) > p.MaxBench {
			inst := p.Bench[len(p.Bench)-1]
			g.log(log.NewDiscardEvent(g.TurnCount, p.Index, inst.Def.Name, "bench limit"))
			p.DiscardPokemon(inst)
		}
	}
}
