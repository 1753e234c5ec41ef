package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/nathanieltooley/klefki/core"
	"github.com/nathanieltooley/klefki/data"
	"github.com/nathanieltooley/klefki/internal/errorutils"
	"github.com/nathanieltooley/klefki/internal/global"
	"github.com/nathanieltooley/klefki/loader"
	"github.com/nathanieltooley/klefki/owned"
	"github.com/nathanieltooley/klefki/script"
	"github.com/nathanieltooley/klefki/store"
	"github.com/rs/zerolog/log"
)

const STARTING_MONEY owned.Money = 3000

func main() {
	configPath := flag.String("config", global.DefaultConfigLocation(), "path to the config file")
	trainerID := flag.String("trainer", "", "id of a saved trainer to continue with, a new one is made if empty")
	teamName := flag.String("team", "", "team from the teams file to start a new trainer with")
	battles := flag.Int("battles", 3, "number of wild battles to run")
	flag.Parse()

	config := errorutils.Must(global.LoadConfig(*configPath))
	if _, err := global.InitLogging(config, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("could not set up logging")
	}

	dataFiles, scriptFiles := gameFiles(config)
	registry, err := loader.Load(dataFiles, ".")
	if err != nil {
		log.Fatal().Err(err).Str("dir", config.DataDir).Msg("failed to load game data")
	}

	engine := script.NewLuaEngine()
	if count, err := engine.RegisterFS(scriptFiles, "."); err != nil {
		log.Warn().Err(err).Str("dir", config.ScriptDir).Msg("move scripts not loaded")
	} else {
		log.Info().Int("count", count).Msg("Loaded move scripts")
	}

	rng := global.NewRNG(config)

	if err := os.MkdirAll(filepath.Dir(config.DatabasePath), 0o750); err != nil {
		log.Fatal().Err(err).Msg("could not create save dir")
	}
	db, err := store.OpenSQLite(config.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open save database")
	}
	defer db.Close()

	ctx := context.Background()
	id, saved, err := loadTrainer(ctx, db, config, *trainerID, *teamName)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load trainer")
	}

	trainer := saved.Init(rng, registry)
	if len(trainer.Party) == 0 {
		trainer.Party = append(trainer.Party, starter(rng, registry))
	}

	log.Info().Str("trainer", trainer.Name).Stringer("id", id).Int("party", len(trainer.Party)).Msg("Starting adventure")

	for i := range *battles {
		if trainer.Party.AllFainted() {
			log.Info().Msg("every pokemon has fainted, heading back to heal")
			trainer.Party.HealAll()
		}

		wild := wildPokemon(rng, registry, trainer.Party)
		log.Info().Int("battle", i+1).Stringer("wild", wild).Msg("A wild pokemon appeared")
		runWildBattle(rng, engine, registry, trainer, wild)
	}

	if err := db.SaveTrainer(ctx, id, trainer.Uninit()); err != nil {
		log.Fatal().Err(err).Msg("could not save trainer")
	}
	if *teamName != "" {
		if err := store.SaveTeam(config.TeamSaveLocation, *teamName, trainer.Party.Uninit()); err != nil {
			log.Error().Err(err).Str("team", *teamName).Msg("could not save team")
		}
	}

	log.Info().Stringer("id", id).Uint32("money", trainer.Money).Msg("Saved trainer")
}

// gameFiles uses the configured data dir when it exists, otherwise the bundled data
func gameFiles(config global.Config) (fs.FS, fs.FS) {
	if _, err := os.Stat(config.DataDir); err == nil {
		return os.DirFS(config.DataDir), os.DirFS(config.ScriptDir)
	}

	log.Info().Str("dir", config.DataDir).Msg("no data dir, using bundled data")
	return data.Files, errorutils.Must(fs.Sub(data.Files, "scripts"))
}

// loadTrainer resumes a stored trainer or creates a new one, starting with the named team if there is one
func loadTrainer(ctx context.Context, db *store.SQLiteStore, config global.Config, trainerID string, teamName string) (uuid.UUID, owned.SavedTrainer, error) {
	if trainerID != "" {
		id, err := uuid.Parse(trainerID)
		if err != nil {
			return uuid.Nil, owned.SavedTrainer{}, err
		}

		saved, err := db.LoadTrainer(ctx, id)
		return id, saved, err
	}

	saved := owned.SavedTrainer{Name: config.PlayerName, Money: STARTING_MONEY}
	if teamName != "" {
		team, err := store.LoadTeam(config.TeamSaveLocation, teamName)
		if err != nil && !errors.Is(err, store.ErrNoSuchTeam) {
			return uuid.Nil, owned.SavedTrainer{}, err
		}
		saved.Party = team
	}

	id, err := db.CreateTrainer(ctx, saved)
	return id, saved, err
}

func starter(rng *rand.Rand, registry *core.Registry) *owned.OwnedPokemon {
	saved := owned.NewPokeBuilder(randomSpecies(rng, registry), rng).
		SetLevel(5).
		SetRandomIvs().
		SetRandomNature().
		Build()

	return errorutils.Must(initPokemon(rng, registry, saved))
}
