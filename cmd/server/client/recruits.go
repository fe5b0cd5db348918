package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreamshade/recruit-api/internal/handlers/recruit/v1alpha1"
)

var (
	recruitID string
	playerID  string
	statName  string
	rankValue int32
	levelVal  int32
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a recruit by ID",
	RunE:  runGet,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a player's recruits",
	RunE:  runList,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a recruit's stat values at its level",
	RunE:  runStats,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a recruit",
	RunE:  runDelete,
}

var setRankCmd = &cobra.Command{
	Use:   "set-rank",
	Short: "Set one stat rank of a recruit",
	Long:  `Set one stat rank. Ranks outside the profile's range are clamped.`,
	RunE:  runSetRank,
}

var setLevelCmd = &cobra.Command{
	Use:   "set-level",
	Short: "Set a recruit's level",
	Long:  `Set a recruit's level. Levels outside the profile's range are clamped.`,
	RunE:  runSetLevel,
}

func init() {
	for _, cmd := range []*cobra.Command{getCmd, statsCmd, deleteCmd, setRankCmd, setLevelCmd} {
		cmd.Flags().StringVar(&recruitID, "recruit-id", "", "Recruit ID (required)")
		_ = cmd.MarkFlagRequired("recruit-id") // nolint:errcheck // safe to ignore in init
	}

	listCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID (required)")
	_ = listCmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init

	setRankCmd.Flags().StringVar(&statName, "stat", "", "Stat, e.g. STR (required)")
	setRankCmd.Flags().Int32Var(&rankValue, "rank", 1, "New rank")
	_ = setRankCmd.MarkFlagRequired("stat") // nolint:errcheck // safe to ignore in init

	setLevelCmd.Flags().Int32Var(&levelVal, "level", 1, "New level")
}

func withClient(fn func(ctx context.Context, client v1alpha1.RecruitServiceClient) error) error {
	client, cleanup, err := createRecruitClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}

func runGet(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client v1alpha1.RecruitServiceClient) error {
		resp, err := client.GetRecruit(ctx, &v1alpha1.GetRecruitRequest{RecruitID: recruitID})
		if err != nil {
			return callError("get recruit", err)
		}
		printRecruit(os.Stdout, resp.Recruit)
		fmt.Println()
		return printStats(os.Stdout, resp.Recruit, nil)
	})
}

func runList(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client v1alpha1.RecruitServiceClient) error {
		resp, err := client.ListRecruits(ctx, &v1alpha1.ListRecruitsRequest{PlayerID: playerID})
		if err != nil {
			return callError("list recruits", err)
		}
		if len(resp.Recruits) == 0 {
			fmt.Printf("No recruits for player %s\n", playerID)
			return nil
		}
		return printRoster(os.Stdout, resp.Recruits)
	})
}

func runStats(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client v1alpha1.RecruitServiceClient) error {
		resp, err := client.GetRecruitStats(ctx, &v1alpha1.GetRecruitStatsRequest{RecruitID: recruitID})
		if err != nil {
			return callError("get recruit stats", err)
		}
		printRecruit(os.Stdout, resp.Recruit)
		fmt.Println()
		return printStats(os.Stdout, resp.Recruit, resp.Stats)
	})
}

func runDelete(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client v1alpha1.RecruitServiceClient) error {
		resp, err := client.DeleteRecruit(ctx, &v1alpha1.DeleteRecruitRequest{RecruitID: recruitID})
		if err != nil {
			return callError("delete recruit", err)
		}
		fmt.Println(resp.Message)
		return nil
	})
}

func runSetRank(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client v1alpha1.RecruitServiceClient) error {
		resp, err := client.SetRank(ctx, &v1alpha1.SetRankRequest{
			RecruitID: recruitID,
			Stat:      statName,
			Rank:      rankValue,
		})
		if err != nil {
			return callError("set rank", err)
		}
		return printStats(os.Stdout, resp.Recruit, resp.Stats)
	})
}

func runSetLevel(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client v1alpha1.RecruitServiceClient) error {
		resp, err := client.SetLevel(ctx, &v1alpha1.SetLevelRequest{
			RecruitID: recruitID,
			Level:     levelVal,
		})
		if err != nil {
			return callError("set level", err)
		}
		fmt.Printf("Level: %d\n\n", resp.Recruit.Level)
		return printStats(os.Stdout, resp.Recruit, resp.Stats)
	})
}
