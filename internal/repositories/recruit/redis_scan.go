package recruit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/errors"
	redisclient "github.com/dreamshade/recruit-api/internal/redis"
)

// CorruptRecord is a stored recruit that cannot be served
type CorruptRecord struct {
	Key    string
	Reason string
}

// ScanReport summarizes a pass over the stored recruits
type ScanReport struct {
	Checked int
	Corrupt []CorruptRecord
}

// ScanRedis checks every stored recruit against set. Records that do not
// decode, whose ID does not match their key, or that hold ranks below 1 or
// for stats outside the set are reported.
func ScanRedis(ctx context.Context, client redisclient.Client, set stats.Set) (*ScanReport, error) {
	report := &ScanReport{}

	iter := client.Scan(ctx, 0, recruitKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, playerIndexPrefix) {
			continue
		}
		report.Checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		if reason := checkRecord(key, data, set); reason != "" {
			report.Corrupt = append(report.Corrupt, CorruptRecord{Key: key, Reason: reason})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan recruits")
	}

	return report, nil
}

func checkRecord(key, data string, set stats.Set) string {
	var rec entities.Recruit
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return "invalid JSON"
	}
	if recruitKeyPrefix+rec.ID != key {
		return fmt.Sprintf("id %q does not match key", rec.ID)
	}
	for _, sr := range rec.Ranks {
		if !set.Contains(sr.Stat) {
			return fmt.Sprintf("unknown stat %s", sr.Stat)
		}
		if sr.Rank < 1 {
			return fmt.Sprintf("rank %d for %s is below 1", sr.Rank, sr.Stat)
		}
	}
	return ""
}

// PurgeRedis deletes the given recruit keys and drops them from every player index
func PurgeRedis(ctx context.Context, client redisclient.Client, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	ids := make([]any, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, strings.TrimPrefix(key, recruitKeyPrefix))
	}

	var indexes []string
	iter := client.Scan(ctx, 0, playerIndexPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		indexes = append(indexes, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrapf(err, "failed to scan player indexes")
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, keys...)
	for _, index := range indexes {
		pipe.SRem(ctx, index, ids...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to purge recruits")
	}
	return nil
}
