// Command maumau-sim plays headless Mau Mau matches between computer
// players and reports aggregate results. It doubles as a stress harness
// for the rules engine: every transition is checked for card
// conservation and any rules error aborts the run.
package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/luizforgas/mau-mau-forgas/engine"
	"github.com/luizforgas/mau-mau-forgas/internal/bot"
	"github.com/luizforgas/mau-mau-forgas/internal/config"
)

// maxRoundSteps bounds a single round so a stuck table cannot spin forever.
const maxRoundSteps = 10000

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	games := flag.Int("games", 10, "number of matches to play")
	players := flag.Int("players", 4, "seats per match")
	seed := flag.Int64("seed", 0, "base rng seed, 0 derives one from the clock")
	strategy := flag.String("strategy", string(bot.LevelGreedy), "bot strategy: random or greedy")
	wildcards := flag.Bool("wildcards", cfg.IncludeWildcards, "shuffle four wildcards into the deck")
	bluffing := flag.Bool("bluffing", cfg.EnableBluffing, "allow any card to be thrown as a bluff")
	verbose := flag.Bool("v", false, "log every action")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	if *verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	brain, err := bot.New(bot.Level(*strategy), *seed)
	if err != nil {
		log.WithError(err).Fatal("unknown strategy")
	}

	settings := cfg.Settings()
	settings.IncludeWildcards = *wildcards
	settings.EnableBluffing = *bluffing

	log.WithFields(logrus.Fields{
		"games":    *games,
		"players":  *players,
		"strategy": *strategy,
		"seed":     *seed,
	}).Info("starting simulation")

	wins := make(map[string]int)
	totalRounds, stuck := 0, 0
	for i := 0; i < *games; i++ {
		res, err := playMatch(log, brain, *players, settings, uint64(*seed)+uint64(i))
		if err != nil {
			log.WithError(err).WithField("game", i+1).Fatal("match aborted")
		}
		totalRounds += res.rounds
		if res.stuck {
			stuck++
		}
		if res.winner != "" {
			wins[res.winner]++
		}
		log.WithFields(logrus.Fields{
			"game":   i + 1,
			"rounds": res.rounds,
			"winner": res.winner,
			"scores": res.scores,
		}).Info("match finished")
	}

	log.WithFields(logrus.Fields{
		"games":  *games,
		"rounds": totalRounds,
		"stuck":  stuck,
		"wins":   wins,
	}).Info("simulation complete")
}

type matchResult struct {
	rounds int
	winner string
	stuck  bool
	scores map[string]int
}

// playMatch runs rounds until elimination leaves fewer than two players,
// then names the surviving player with the highest score the winner.
func playMatch(log *logrus.Logger, brain bot.Brain, numPlayers int, settings engine.Settings, seed uint64) (matchResult, error) {
	seats := make([]engine.Seat, numPlayers)
	for i := range seats {
		seats[i] = engine.Seat{ID: fmt.Sprintf("p%d", i+1), Name: fmt.Sprintf("Player %d", i+1)}
	}
	g, err := engine.NewMatch(seats, settings, seed)
	if err != nil {
		return matchResult{}, err
	}

	var res matchResult
	for {
		res.rounds++
		end, stuck, err := playRound(log, brain, g)
		if err != nil {
			return res, fmt.Errorf("round %d: %w", res.rounds, err)
		}
		g = end
		if stuck {
			res.stuck = true
			break
		}
		log.WithFields(logrus.Fields{
			"round":  res.rounds,
			"winner": playerName(g, g.WinnerID),
		}).Debug("round finished")

		next, err := engine.NextRound(g)
		if errors.Is(err, engine.ErrMatchEnded) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("round %d: %w", res.rounds, err)
		}
		g = next
	}

	res.scores = make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		res.scores[p.Name] = p.Score
	}
	if !res.stuck {
		res.winner = matchWinner(g)
	}
	return res, nil
}

// playRound drives one round to completion with the brain choosing for
// every seat. The second return reports a stuck table: bots draw only
// when nothing is playable, so a draw that produces no card means no
// seat can ever make progress.
func playRound(log *logrus.Logger, brain bot.Brain, g engine.GameState) (engine.GameState, bool, error) {
	total := g.CardCount()
	for step := 0; step < maxRoundSteps; step++ {
		if g.Ended {
			return g, false, nil
		}
		act, err := brain.ChooseAction(g, g.CurrentPlayerIndex)
		if err != nil {
			return g, false, fmt.Errorf("choose action: %w", err)
		}
		next, err := engine.Apply(g, act)
		if err != nil {
			return g, false, fmt.Errorf("apply %T: %w", act, err)
		}
		if next.CardCount() != total {
			return next, false, fmt.Errorf("card count drifted from %d to %d", total, next.CardCount())
		}
		log.WithField("seat", next.CurrentPlayerIndex).Debug(next.LastAction.Description)

		if _, ok := act.(engine.DrawCard); ok && next.LastAction.CardsDrawn == 0 {
			log.Warn("table is stuck: nothing to draw and nothing playable")
			return next, true, nil
		}
		g = next
	}
	return g, false, fmt.Errorf("no winner after %d actions", maxRoundSteps)
}

// matchWinner names the surviving player with the highest score.
func matchWinner(g engine.GameState) string {
	best, bestScore := "", 0
	for _, p := range g.Players {
		if p.Eliminated {
			continue
		}
		if best == "" || p.Score > bestScore {
			best, bestScore = p.Name, p.Score
		}
	}
	return best
}

func playerName(g engine.GameState, id string) string {
	if i := g.PlayerIndexByID(id); i >= 0 {
		return g.Players[i].Name
	}
	return id
}
