package dataprocessing

import (
	"log/slog"
	"sort"
	"time"

	"timecli/pkg/contracts/domain"
)

// Aggregate filters entries whose start date falls within [from, to]
// (inclusive both ends) and sums the logged hours per member.
//
// Entries with an invalid start date never match the range. The result is
// sorted by total hours descending; members with equal totals keep their
// first-appearance order, so identical input always produces identical
// output.
func Aggregate(entries []domain.Entry, from, to time.Time) []domain.MemberTotal {
	totals := make([]domain.MemberTotal, 0)
	index := make(map[string]int)

	matched := 0
	for _, e := range entries {
		if !e.InRange(from, to) {
			continue
		}
		matched++
		if i, ok := index[e.Member]; ok {
			totals[i].Hours += e.Duration
			continue
		}
		index[e.Member] = len(totals)
		totals = append(totals, domain.MemberTotal{Member: e.Member, Hours: e.Duration})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Hours > totals[j].Hours
	})

	slog.Info("aggregated member hours",
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("entries_in_range", matched),
		slog.Int("members", len(totals)))

	return totals
}
