package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dreamshade/recruit-api/internal/handlers/recruit/v1alpha1"
)

func printRecruit(w io.Writer, r *v1alpha1.Recruit) {
	if r == nil {
		return
	}
	fmt.Fprintf(w, "Recruit ID: %s\n", r.ID)
	if r.PlayerID != "" {
		fmt.Fprintf(w, "Player ID: %s\n", r.PlayerID)
	}
	fmt.Fprintf(w, "Name: %s\n", r.Name)
	fmt.Fprintf(w, "Job: %s\n", r.Job)
	fmt.Fprintf(w, "Level: %d\n", r.Level)
	if r.Profile != "" {
		fmt.Fprintf(w, "Profile: %s\n", r.Profile)
	}
	if r.Seed != nil {
		fmt.Fprintf(w, "Seed: %d\n", *r.Seed)
	}
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Created: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}

// printStats prints a stat table. Without values only ranks are shown.
func printStats(w io.Writer, r *v1alpha1.Recruit, values []*v1alpha1.StatValue) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(values) == 0 {
		if r == nil {
			return nil
		}
		fmt.Fprintln(tw, "STAT\tRANK")
		for _, sr := range r.Ranks {
			fmt.Fprintf(tw, "%s\t%d\n", sr.Stat, sr.Rank)
		}
		return tw.Flush()
	}

	fmt.Fprintln(tw, "STAT\tRANK\tVALUE")
	for _, sv := range values {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\n", sv.Stat, sv.Rank, sv.Value)
	}
	return tw.Flush()
}

func printRoster(w io.Writer, recruits []*v1alpha1.Recruit) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tJOB\tLVL\tTOTAL_RANK")
	for _, r := range recruits {
		total := int32(0)
		for _, sr := range r.Ranks {
			total += sr.Rank
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", r.ID, r.Name, r.Job, r.Level, total)
	}
	return tw.Flush()
}
