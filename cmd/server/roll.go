package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dreamshade/recruit-api/internal/config"
	"github.com/dreamshade/recruit-api/internal/engine"
	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/orchestrators/recruit"
	"github.com/dreamshade/recruit-api/internal/pkg/clock"
	"github.com/dreamshade/recruit-api/internal/pkg/idgen"
	"github.com/dreamshade/recruit-api/internal/pkg/rng"
	recruitrepo "github.com/dreamshade/recruit-api/internal/repositories/recruit"
)

var (
	rollCount    int
	rollProfile  string
	rollProfiles string
	rollSeed     uint64
	rollJob      string
	rollName     string
	rollSaveTo   string
	rollPlayerID string
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll recruits offline and print their stats",
	Long: `Roll a batch of recruits from a profile without a server and print the
level, total rank, rank and value of every stat. Use --seed for repeatable
batches and --save-to to keep the batch in a SQLite roster.`,
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().IntVar(&rollCount, "count", 10, fmt.Sprintf("number of recruits (1-%d)", recruit.MaxBatchSize))
	rollCmd.Flags().StringVar(&rollProfile, "profile", config.DefaultProfile, "profile to roll from")
	rollCmd.Flags().StringVar(&rollProfiles, "profiles", "", "profile catalog file (.yaml or .toml)")
	rollCmd.Flags().Uint64Var(&rollSeed, "seed", 0, "seed for a repeatable batch")
	rollCmd.Flags().StringVar(&rollJob, "job", "", "job classes, e.g. Warrior|Mage")
	rollCmd.Flags().StringVar(&rollName, "name", "", "base name for the recruits")
	rollCmd.Flags().StringVar(&rollSaveTo, "save-to", "", "SQLite file to store the batch in")
	rollCmd.Flags().StringVar(&rollPlayerID, "player-id", "offline", "owner of saved recruits")
}

func runRoll(cmd *cobra.Command, _ []string) error {
	job, err := entities.ParseJobClass(rollJob)
	if err != nil {
		return err
	}

	catalog, err := config.LoadCatalog(rollProfiles)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	path := recruitrepo.MemoryPath
	if rollSaveTo != "" {
		path = rollSaveTo
	}
	repo, err := recruitrepo.NewSQLite(&recruitrepo.SQLiteConfig{Path: path})
	if err != nil {
		return err
	}
	defer func() {
		_ = repo.Close()
	}()

	eng, err := engine.New(&engine.Config{Source: rng.Default()})
	if err != nil {
		return err
	}

	svc, err := recruit.NewOrchestrator(&recruit.Config{
		Engine:      eng,
		Repository:  repo,
		Catalog:     catalog,
		IDGenerator: idgen.NewUUID("recruit"),
		Clock:       clock.New(),
	})
	if err != nil {
		return err
	}

	input := &recruit.GenerateBatchInput{
		PlayerID: rollPlayerID,
		Name:     rollName,
		Job:      job,
		Profile:  rollProfile,
		Count:    rollCount,
		Persist:  rollSaveTo != "",
	}
	if cmd.Flags().Changed("seed") {
		seed := rollSeed
		input.Seed = &seed
	}

	out, err := svc.GenerateBatch(context.Background(), input)
	if err != nil {
		return err
	}

	return writeRecruitTable(os.Stdout, out.Results)
}

// writeRecruitTable prints one row per recruit with a rank(value) column per stat
func writeRecruitTable(w io.Writer, results []*recruit.GenerateRecruitOutput) error {
	if len(results) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"NAME", "JOB", "LVL", "POINTS", "TOTAL_RANK"}
	for _, sv := range results[0].Stats {
		header = append(header, string(sv.Stat))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, res := range results {
		row := []string{
			res.Recruit.Name,
			res.Recruit.Job.String(),
			fmt.Sprintf("%d", res.Recruit.Level),
			fmt.Sprintf("%d", res.TotalPoints),
			fmt.Sprintf("%d", res.Recruit.TotalRank()),
		}
		for _, sv := range res.Stats {
			row = append(row, fmt.Sprintf("%d (%.2f)", sv.Rank, sv.Value))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}
