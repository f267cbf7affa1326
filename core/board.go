package core

import "sort"

// BuildBoard selects the rows for the daily view: tasks not yet started
// that are due today, plus everything currently in progress regardless of
// date. In-progress rows come first, then by date ascending; the sort is
// stable so rows keep their relative listing order otherwise.
func BuildBoard(rows []TaskRow, today string) []TaskRow {
	board := make([]TaskRow, 0, len(rows))
	for _, r := range rows {
		switch r.State {
		case StatusNotStarted:
			if dateOnly(r.Date) == today {
				board = append(board, r)
			}
		case StatusInProgress:
			board = append(board, r)
		}
	}

	sort.SliceStable(board, func(i, j int) bool {
		if board[i].State != board[j].State {
			return board[i].State == StatusInProgress
		}
		return dateOnly(board[i].Date) < dateOnly(board[j].Date)
	})
	return board
}

// dateOnly truncates datetime strings to their date part. Collections may
// store dates with a time component even when the app only writes dates.
func dateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
