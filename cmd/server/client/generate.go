package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreamshade/recruit-api/internal/handlers/recruit/v1alpha1"
)

var (
	genPlayerID string
	genName     string
	genJob      string
	genProfile  string
	genSeed     uint64
	genCount    int32
	genPersist  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Roll one or more recruits",
	Long:  `Roll recruits from a profile. With --persist they are stored on the player's roster.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genPlayerID, "player-id", "", "Player ID (required with --persist)")
	generateCmd.Flags().StringVar(&genName, "name", "", "Recruit name")
	generateCmd.Flags().StringVar(&genJob, "job", "", "Job classes, e.g. Warrior|Mage")
	generateCmd.Flags().StringVar(&genProfile, "profile", "", "Profile name")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "Seed for a repeatable roll")
	generateCmd.Flags().Int32Var(&genCount, "count", 1, "Number of recruits")
	generateCmd.Flags().BoolVar(&genPersist, "persist", false, "Store the recruits")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createRecruitClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var seed *uint64
	if cmd.Flags().Changed("seed") {
		s := genSeed
		seed = &s
	}

	if genCount == 1 {
		resp, err := client.GenerateRecruit(ctx, &v1alpha1.GenerateRecruitRequest{
			PlayerID: genPlayerID,
			Name:     genName,
			Job:      genJob,
			Profile:  genProfile,
			Seed:     seed,
			Persist:  genPersist,
		})
		if err != nil {
			return callError("generate recruit", err)
		}
		printRecruit(os.Stdout, resp.Recruit)
		fmt.Printf("Total points: %d\n\n", resp.TotalPoints)
		return printStats(os.Stdout, resp.Recruit, resp.Stats)
	}

	resp, err := client.GenerateBatch(ctx, &v1alpha1.GenerateBatchRequest{
		PlayerID: genPlayerID,
		Name:     genName,
		Job:      genJob,
		Profile:  genProfile,
		Seed:     seed,
		Count:    genCount,
		Persist:  genPersist,
	})
	if err != nil {
		return callError("generate recruits", err)
	}

	for i, res := range resp.Results {
		if i > 0 {
			fmt.Println()
		}
		printRecruit(os.Stdout, res.Recruit)
		fmt.Printf("Total points: %d\n\n", res.TotalPoints)
		if err := printStats(os.Stdout, res.Recruit, res.Stats); err != nil {
			return err
		}
	}
	return nil
}
