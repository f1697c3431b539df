package study

import "github.com/smartanki/smartanki/internal/review"

// dueLoadedMsg carries the due queue loaded when the screen opens.
type dueLoadedMsg struct {
	Cards []review.DueCard
	Err   error
}

// gradedMsg reports the outcome of a submitted review.
type gradedMsg struct {
	Result *review.Result
	Err    error
}
