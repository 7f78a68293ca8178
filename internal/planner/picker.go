package planner

import (
	"fmt"
	"strings"

	"github.com/keralatrips/itinerary-api/internal/types"
)

// ScoredActivity pairs a catalog activity with its preference score.
type ScoredActivity struct {
	Activity types.Activity
	Score    float64
}

// firstDayQuota keeps arrival days lighter.
const (
	firstDayQuota   = 2
	regularDayQuota = 3
)

// pickActivities selects the activities for one day at a destination.
// ranked must be sorted by descending preference score. An activity is
// accepted when its time slot is still free for the day; full-day
// activities neither block nor get blocked. Selection stops at the
// daily quota: 2 on the first day at the destination, 3 afterwards.
func pickActivities(destination string, dayNumber int, ranked []ScoredActivity) []types.SelectedActivity {
	quota := regularDayQuota
	if dayNumber == 1 {
		quota = firstDayQuota
	}

	var selected []types.SelectedActivity
	usedSlots := make(map[string]bool)

	for _, candidate := range ranked {
		if len(selected) >= quota {
			break
		}

		slot := candidate.Activity.TimeSlot
		if usedSlots[slot] && slot != types.SlotFullDay {
			continue
		}

		selected = append(selected, types.SelectedActivity{
			ID:              activityID(destination, candidate.Activity.Name, dayNumber),
			Name:            candidate.Activity.Name,
			Description:     candidate.Activity.Description,
			Category:        candidate.Activity.Category,
			Duration:        candidate.Activity.Duration,
			Cost:            candidate.Activity.Cost,
			Rating:          candidate.Activity.Rating,
			TimeSlot:        slot,
			PreferenceScore: candidate.Score,
		})

		if slot != types.SlotFullDay {
			usedSlots[slot] = true
		}
	}

	return selected
}

func activityID(destination, activityName string, dayNumber int) string {
	slug := strings.ReplaceAll(strings.ToLower(activityName), " ", "_")
	return fmt.Sprintf("%s_%s_%d", strings.ToLower(destination), slug, dayNumber)
}
