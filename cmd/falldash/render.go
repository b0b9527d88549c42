package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/client"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	"github.com/aimericdrk/ai-fall-guard/internal/util"
)

func renderSnapshot(w io.Writer, s client.Snapshot, limit int, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "STATS (last %d days)\n", s.StatsDays)
	if s.Stats != nil {
		fmt.Fprintf(tw, "Total falls\t%d\n", s.Stats.TotalFalls)
		fmt.Fprintf(tw, "Acknowledged\t%d\n", s.Stats.AcknowledgedFalls)
		fmt.Fprintf(tw, "False alarms\t%d\n", s.Stats.FalseAlarms)
		fmt.Fprintf(tw, "Avg confidence\t%s\n", percent(s.Stats.AvgConfidence))
	}
	fmt.Fprintf(tw, "Unread notifications\t%d\n", s.UnreadCount)

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "RECENT FALL EVENTS")
	if len(s.Events) == 0 {
		fmt.Fprintln(tw, "No fall events")
	} else {
		fmt.Fprintln(tw, "ID\tAGE\tCONFIDENCE\tANGLE\tVELOCITY\tSTATUS")
		for _, e := range head(s.Events, limit) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f°\t%.2f m/s\t%s\n",
				e.ID, age(now, e.CreatedAt), percent(e.Confidence), e.Angle, e.Velocity, verdict(e))
		}
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "NOTIFICATIONS")
	if len(s.Notifications) == 0 {
		fmt.Fprintln(tw, "No notifications")
	} else {
		fmt.Fprintln(tw, "ID\tAGE\tSTATUS\tTITLE")
		for _, n := range head(s.Notifications, limit) {
			marker := ""
			if n.IsUnread() {
				marker = " *"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s%s\t%s\n", n.ID, age(now, n.CreatedAt), n.Status, marker, n.Title)
		}
	}

	return tw.Flush()
}

func head[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}

	return items
}

func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

func age(now, t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return util.FormatDuration(now.Sub(t)) + " ago"
}

func verdict(e *entity.FallEvent) string {
	switch {
	case !e.IsAcknowledged:
		return "new"
	case e.IsFalseAlarm:
		return "false alarm"
	default:
		return "confirmed"
	}
}
