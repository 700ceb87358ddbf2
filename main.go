package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bukvigrad/wordgrid/internal/httpserver"
	"github.com/bukvigrad/wordgrid/internal/store"
	"github.com/bukvigrad/wordgrid/internal/wordbank"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	bank, err := loadBank(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word bank")
	}
	themes, words := bank.Stats()
	log.Info().Int("themes", themes).Int("words", words).Msg("word bank loaded")

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db, bank)
	log.Info().Str("port", cfg.Port).Msg("starting wordgrid server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// loadBank reads the word bank from WORDBANK_DIR when set, otherwise from
// the embedded data files.
func loadBank(cfg Config) (*wordbank.Bank, error) {
	if cfg.WordbankDir != "" {
		return wordbank.LoadDir(cfg.WordbankDir)
	}
	return wordbank.Load()
}
