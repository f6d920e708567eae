package events

import "time"

var JobsFetchedTopic = "JobsFetchedEvent"

type JobsFetched struct {
	Category     string
	ScrapedCount int
	StaticCount  int
	FetchedAt    time.Time
}
