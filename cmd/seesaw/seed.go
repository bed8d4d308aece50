// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/config"
	"github.com/seesaw/seesaw/internal/store"
)

// Default timeout for seed command.
const defaultSeedTimeout = 30 * time.Second

// classificationSeed is the full catalog of 4-letter personality codes.
// Registration rejects any code not present in this table.
var classificationSeed = []struct {
	code   string
	detail string
}{
	{"ISTJ", "Responsible logistician who values facts and follow-through."},
	{"ISFJ", "Warm defender who protects the people and routines they trust."},
	{"INFJ", "Quiet advocate guided by principle and long-range insight."},
	{"INTJ", "Strategic architect who plans several moves ahead."},
	{"ISTP", "Hands-on virtuoso who takes things apart to see how they work."},
	{"ISFP", "Gentle adventurer who keeps an open schedule and an open mind."},
	{"INFP", "Idealistic mediator loyal to their values above all."},
	{"INTP", "Analytical logician happiest untangling an abstract problem."},
	{"ESTP", "Energetic entrepreneur who learns by leaping first."},
	{"ESFP", "Spontaneous entertainer who turns any room into a stage."},
	{"ENFP", "Enthusiastic campaigner who sees possibility in everyone."},
	{"ENTP", "Quick-witted debater who argues both sides for sport."},
	{"ESTJ", "Decisive executive who keeps projects and people on schedule."},
	{"ESFJ", "Attentive consul who notices what every person needs."},
	{"ENFJ", "Charismatic protagonist who rallies others toward a goal."},
	{"ENTJ", "Bold commander who finds or makes a way forward."},
}

// profileSeed is the catalog of selectable character-profile images.
var profileSeed = []struct {
	id       int64
	category auth.ProfileCategory
	imageURL string
}{
	{1, auth.CategoryFace, "https://cdn.seesaw.app/profiles/face-01.png"},
	{2, auth.CategoryFace, "https://cdn.seesaw.app/profiles/face-02.png"},
	{3, auth.CategoryFace, "https://cdn.seesaw.app/profiles/face-03.png"},
	{4, auth.CategoryFace, "https://cdn.seesaw.app/profiles/face-04.png"},
	{5, auth.CategoryAccessory, "https://cdn.seesaw.app/profiles/accessory-01.png"},
	{6, auth.CategoryAccessory, "https://cdn.seesaw.app/profiles/accessory-02.png"},
	{7, auth.CategoryAccessory, "https://cdn.seesaw.app/profiles/accessory-03.png"},
	{8, auth.CategoryAccessory, "https://cdn.seesaw.app/profiles/accessory-04.png"},
	{9, auth.CategoryBackground, "https://cdn.seesaw.app/profiles/background-01.png"},
	{10, auth.CategoryBackground, "https://cdn.seesaw.app/profiles/background-02.png"},
	{11, auth.CategoryBackground, "https://cdn.seesaw.app/profiles/background-03.png"},
	{12, auth.CategoryBackground, "https://cdn.seesaw.app/profiles/background-04.png"},
}

// seedConfig holds configuration for the seed command.
type seedConfig struct {
	timeout time.Duration
}

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	cfg := &seedConfig{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the classification and profile catalogs",
		Long: `Inserts the personality classification table and the character-profile
image catalog. This command is idempotent - it will not create duplicates
if run multiple times.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args, cfg)
		},
	}

	cmd.Flags().DurationVar(&cfg.timeout, "timeout", defaultSeedTimeout, "timeout for database operations (e.g., 30s, 1m)")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string, cfg *seedConfig) error {
	loaded, err := config.Load(configFile, nil)
	if err != nil {
		return err
	}
	if loaded.DatabaseURL == "" {
		return oops.Code("CONFIG_INVALID").
			Errorf("database_url is required (set DATABASE_URL or SEESAW_DATABASE_URL)")
	}

	// Use cmd.Context() to respect SIGINT/SIGTERM signals.
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
	defer cancel()

	cmd.Println("Connecting to database...")
	pool, err := store.Open(ctx, loaded.DatabaseURL)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
	}
	defer pool.Close()

	inserted, err := seedClassifications(ctx, pool)
	if err != nil {
		return oops.Code("SEED_FAILED").With("operation", "seed classifications").Wrap(err)
	}
	cmd.Printf("Classifications: %d inserted, %d already present\n", inserted, len(classificationSeed)-inserted)

	inserted, err = seedProfiles(ctx, pool)
	if err != nil {
		return oops.Code("SEED_FAILED").With("operation", "seed profile definitions").Wrap(err)
	}
	cmd.Printf("Profile definitions: %d inserted, %d already present\n", inserted, len(profileSeed)-inserted)

	slog.Info("seed complete",
		"classifications", len(classificationSeed),
		"profile_definitions", len(profileSeed),
	)
	cmd.Println("Seeding complete!")
	return nil
}

// seedClassifications inserts the classification catalog, skipping rows that
// already exist. Returns the number of newly inserted rows.
func seedClassifications(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	inserted := 0
	for _, c := range classificationSeed {
		tag, err := pool.Exec(ctx,
			`INSERT INTO classifications (code, detail) VALUES ($1, $2)
			 ON CONFLICT (code) DO NOTHING`,
			c.code, c.detail)
		if err != nil {
			return inserted, oops.With("code", c.code).Wrap(err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// seedProfiles inserts the profile-definition catalog, skipping rows that
// already exist. Returns the number of newly inserted rows.
func seedProfiles(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	inserted := 0
	for _, p := range profileSeed {
		tag, err := pool.Exec(ctx,
			`INSERT INTO profile_definitions (id, category, image_url) VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO NOTHING`,
			p.id, string(p.category), p.imageURL)
		if err != nil {
			return inserted, oops.With("profile_id", p.id).Wrap(err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
