package schedule

import (
	"sort"

	"seminarhall/models"
)

// DayIndex is the per-hall-per-date availability structure: merged occupancy
// blocks inside a working window. It is derived from a BookingSet snapshot
// and valid only for that snapshot's lifetime.
type DayIndex struct {
	Hall             string
	Date             string
	Window           models.WorkingWindow
	MergedBlocks     []models.MergedBlock
	IsFullDayBlocked bool
	// Intervals are the hall's raw intervals for the date, kept for the
	// strict per-interval overlap test in the conflict checker.
	Intervals []models.Interval
}

// BuildDayIndex coalesces a hall's intervals for one date into merged blocks
// within the window.
//
// Merging treats touching intervals (startMin == previous endMin) as
// contiguous occupancy, unlike the strict Overlaps test used for conflict
// detection. Visual and free-range math wants adjacency collapsed; conflict
// checks want back-to-back bookings to be legal.
func BuildDayIndex(hall, date string, set BookingSet, window models.WorkingWindow) DayIndex {
	idx := DayIndex{
		Hall:      hall,
		Date:      date,
		Window:    window,
		Intervals: set.ForHallDate(hall, date),
	}

	for _, iv := range idx.Intervals {
		if iv.FullDay {
			// A full-day booking dominates the date: one block spanning the
			// whole window, nothing to merge.
			idx.IsFullDayBlocked = true
			idx.MergedBlocks = []models.MergedBlock{{
				StartMin:  window.Start,
				EndMin:    window.End,
				Intervals: idx.Intervals,
			}}
			return idx
		}
	}

	clipped := make([]models.Interval, 0, len(idx.Intervals))
	for _, iv := range idx.Intervals {
		start, end := ClampToWindow(iv.StartMin, iv.EndMin, window)
		if end <= start {
			continue // degenerate after clipping
		}
		iv.StartMin, iv.EndMin = start, end
		clipped = append(clipped, iv)
	}
	sort.SliceStable(clipped, func(i, j int) bool {
		return clipped[i].StartMin < clipped[j].StartMin
	})

	for _, iv := range clipped {
		n := len(idx.MergedBlocks)
		if n > 0 && iv.StartMin <= idx.MergedBlocks[n-1].EndMin {
			last := &idx.MergedBlocks[n-1]
			if iv.EndMin > last.EndMin {
				last.EndMin = iv.EndMin
			}
			last.Intervals = append(last.Intervals, iv)
			continue
		}
		idx.MergedBlocks = append(idx.MergedBlocks, models.MergedBlock{
			StartMin:  iv.StartMin,
			EndMin:    iv.EndMin,
			Intervals: []models.Interval{iv},
		})
	}
	return idx
}

// FreeRanges walks the window emitting the gaps around the merged blocks.
// With no blocks, the whole window is one free range; a fully blocked day
// yields none.
func FreeRanges(blocks []models.MergedBlock, window models.WorkingWindow) []models.FreeRange {
	var out []models.FreeRange
	cursor := window.Start
	for _, b := range blocks {
		start, end := ClampToWindow(b.StartMin, b.EndMin, window)
		if end <= start {
			continue
		}
		if start > cursor {
			out = append(out, models.FreeRange{StartMin: cursor, EndMin: start})
		}
		if end > cursor {
			cursor = end
		}
	}
	if cursor < window.End {
		out = append(out, models.FreeRange{StartMin: cursor, EndMin: window.End})
	}
	return out
}

// PercentFree returns the rounded percentage of the window not covered by
// merged blocks. A full-day block yields 0.
func PercentFree(blocks []models.MergedBlock, window models.WorkingWindow) int {
	total := window.Duration()
	if total <= 0 {
		return 0
	}
	booked := 0
	for _, b := range blocks {
		start, end := ClampToWindow(b.StartMin, b.EndMin, window)
		if end > start {
			booked += end - start
		}
	}
	free := total - booked
	if free < 0 {
		free = 0
	}
	return (free*100 + total/2) / total
}
