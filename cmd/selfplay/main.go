// Command selfplay pits two bots against each other and reports the results.
//
//	selfplay -game chess -first hard -second easy -games 10 -seed 1
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/arcade/backend/internal/domain"
	"github.com/iamasit07/arcade/backend/internal/service/game"
)

func main() {
	kindFlag := flag.String("game", "connect4", "checkers, reversi, connect4 or chess")
	firstFlag := flag.String("first", "hard", "difficulty of the side moving first")
	secondFlag := flag.String("second", "easy", "difficulty of the side moving second")
	games := flag.Int("games", 10, "number of games to play")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	maxPlies := flag.Int("max-plies", 300, "declare a draw after this many moves")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	kind, err := domain.ParseGameKind(*kindFlag)
	if err != nil {
		log.Fatal().Err(err).Str("game", *kindFlag).Msg("unknown game")
	}
	levels := map[domain.Side]domain.Difficulty{
		domain.First:  domain.ParseDifficulty(*firstFlag),
		domain.Second: domain.ParseDifficulty(*secondFlag),
	}

	tally := map[string]int{}
	start := time.Now()
	for i := 0; i < *games; i++ {
		rng := rand.New(rand.NewSource(*seed + int64(i)))
		result, plies, reason := playOne(kind, levels, rng, *maxPlies)
		tally[result]++
		log.Info().Int("game", i+1).Str("result", result).Str("reason", reason).Int("plies", plies).Msg("game finished")
	}

	log.Info().Str("game", string(kind)).
		Str("first", string(levels[domain.First])).Str("second", string(levels[domain.Second])).
		Int("firstWins", tally["first"]).Int("secondWins", tally["second"]).Int("draws", tally["draw"]).
		Dur("took", time.Since(start)).Msg("summary")
}

func playOne(kind domain.GameKind, levels map[domain.Side]domain.Difficulty, rng *rand.Rand, maxPlies int) (string, int, string) {
	m, err := game.NewMatch(kind)
	if err != nil {
		log.Fatal().Err(err).Msg("could not start match")
	}

	for !m.Terminal() {
		if m.MoveCount() >= maxPlies {
			return domain.Draw.String(), m.MoveCount(), "move_limit"
		}
		side := m.Turn()
		view, err := m.BotMove(levels[side], rng)
		if err != nil {
			log.Fatal().Err(err).Int("ply", m.MoveCount()).Msg("bot failed to move")
		}
		log.Debug().Int("side", int(side)).Str("move", view.Notation).Msg("move")
	}
	return m.Outcome().String(), m.MoveCount(), m.EndReason()
}
