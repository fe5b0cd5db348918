package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dreamshade/recruit-api/internal/config"
	"github.com/dreamshade/recruit-api/internal/engine"
	"github.com/dreamshade/recruit-api/internal/handlers/recruit/v1alpha1"
	"github.com/dreamshade/recruit-api/internal/orchestrators/recruit"
	"github.com/dreamshade/recruit-api/internal/pkg/clock"
	"github.com/dreamshade/recruit-api/internal/pkg/idgen"
	"github.com/dreamshade/recruit-api/internal/pkg/rng"
	recruitrepo "github.com/dreamshade/recruit-api/internal/repositories/recruit"
	"github.com/dreamshade/recruit-api/internal/testutils"
)

// startServer serves the real handler stack over an in-memory listener
func startServer(t *testing.T) v1alpha1.RecruitServiceClient {
	t.Helper()

	repo, err := recruitrepo.NewSQLite(&recruitrepo.SQLiteConfig{
		Path:  recruitrepo.MemoryPath,
		Clock: clock.Fixed{At: testutils.TestTime},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	eng, err := engine.New(&engine.Config{Source: rng.NewLocked(rng.NewSeeded(1))})
	require.NoError(t, err)

	svc, err := recruit.NewOrchestrator(&recruit.Config{
		Engine:      eng,
		Repository:  repo,
		Catalog:     config.NewCatalog(),
		IDGenerator: idgen.NewSequential("recruit"),
		Clock:       clock.Fixed{At: testutils.TestTime},
	})
	require.NoError(t, err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RecruitService: svc})
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterRecruitServiceServer(server, handler)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return v1alpha1.NewRecruitServiceClient(conn)
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := startServer(t)

	seed := uint64(7)
	generated, err := client.GenerateRecruit(ctx, &v1alpha1.GenerateRecruitRequest{
		PlayerID: testutils.TestPlayerID,
		Name:     "Aerin",
		Job:      "Ranger",
		Seed:     &seed,
		Persist:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, generated.Recruit)
	assert.Equal(t, "recruit_1", generated.Recruit.ID)
	assert.Equal(t, "Ranger", generated.Recruit.Job)
	assert.Len(t, generated.Stats, 6)
	assert.Equal(t, seed, *generated.Recruit.Seed)
	assert.True(t, generated.Recruit.CreatedAt.Equal(testutils.TestTime))

	listed, err := client.ListRecruits(ctx, &v1alpha1.ListRecruitsRequest{PlayerID: testutils.TestPlayerID})
	require.NoError(t, err)
	require.Len(t, listed.Recruits, 1)
	assert.Equal(t, generated.Recruit.Ranks, listed.Recruits[0].Ranks)

	leveled, err := client.SetLevel(ctx, &v1alpha1.SetLevelRequest{RecruitID: "recruit_1", Level: 500})
	require.NoError(t, err)
	assert.Equal(t, int32(50), leveled.Recruit.Level)

	ranked, err := client.SetRank(ctx, &v1alpha1.SetRankRequest{RecruitID: "recruit_1", Stat: "int", Rank: 100})
	require.NoError(t, err)
	statsResp, err := client.GetRecruitStats(ctx, &v1alpha1.GetRecruitStatsRequest{RecruitID: "recruit_1"})
	require.NoError(t, err)
	assert.Equal(t, ranked.Stats, statsResp.Stats)
	for _, sv := range statsResp.Stats {
		if sv.Stat == "INT" {
			assert.Equal(t, int32(100), sv.Rank)
			assert.InDelta(t, 150.0, sv.Value, 1e-9)
		}
	}

	_, err = client.DeleteRecruit(ctx, &v1alpha1.DeleteRecruitRequest{RecruitID: "recruit_1"})
	require.NoError(t, err)

	_, err = client.GetRecruit(ctx, &v1alpha1.GetRecruitRequest{RecruitID: "recruit_1"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRoundTripBatchIsReproducible(t *testing.T) {
	ctx := context.Background()
	client := startServer(t)

	seed := uint64(1234)
	first, err := client.GenerateBatch(ctx, &v1alpha1.GenerateBatchRequest{Seed: &seed, Count: 5})
	require.NoError(t, err)
	second, err := client.GenerateBatch(ctx, &v1alpha1.GenerateBatchRequest{Seed: &seed, Count: 5})
	require.NoError(t, err)

	require.Len(t, first.Results, 5)
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Recruit.Ranks, second.Results[i].Recruit.Ranks)
		assert.Equal(t, first.Results[i].TotalPoints, second.Results[i].TotalPoints)
	}
}

func TestRoundTripErrors(t *testing.T) {
	ctx := context.Background()
	client := startServer(t)

	_, err := client.GenerateRecruit(ctx, &v1alpha1.GenerateRecruitRequest{Profile: "elite"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.GenerateBatch(ctx, &v1alpha1.GenerateBatchRequest{Count: 0})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
