package repository

import "daybalance/internal/model"

// ListOptions holds the parameters for listing tasks.
type ListOptions struct {
	Date     string // filter by scheduled date (YYYY-MM-DD)
	DateFrom string // inclusive lower bound on scheduled date
	DateTo   string // inclusive upper bound on scheduled date
	Status   model.TaskStatus
	Limit    int // max number of results
	Offset   int // pagination offset
}
