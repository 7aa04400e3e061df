package holiday

import "time"

type Source string

const (
	// SourceComputed marks holidays derived from the Colombian almanac.
	SourceComputed Source = "computed"
	// SourceManual marks holidays registered by an administrator.
	SourceManual Source = "manual"
)

type Holiday struct {
	Date   time.Time
	Name   string
	Source Source
}
