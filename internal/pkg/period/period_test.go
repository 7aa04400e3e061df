package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentAfterTheFifteenth(t *testing.T) {
	p := Current(date(2026, time.March, 20))

	assert.Equal(t, date(2026, time.March, 15), p.Start)
	assert.Equal(t, date(2026, time.April, 14), p.End)
}

func TestCurrentBeforeTheFifteenth(t *testing.T) {
	p := Current(date(2026, time.March, 10))

	assert.Equal(t, date(2026, time.February, 15), p.Start)
	assert.Equal(t, date(2026, time.March, 14), p.End)
}

func TestCurrentOnTheFifteenth(t *testing.T) {
	p := Current(date(2026, time.March, 15))

	assert.Equal(t, date(2026, time.March, 15), p.Start)
	assert.Equal(t, date(2026, time.April, 14), p.End)
}

func TestCurrentAcrossYearBoundary(t *testing.T) {
	p := Current(date(2026, time.January, 5))

	assert.Equal(t, date(2025, time.December, 15), p.Start)
	assert.Equal(t, date(2026, time.January, 14), p.End)
}

func TestPrevious(t *testing.T) {
	p := Previous(date(2026, time.March, 20))

	assert.Equal(t, date(2026, time.February, 15), p.Start)
	assert.Equal(t, date(2026, time.March, 14), p.End)
}

func TestContains(t *testing.T) {
	p := Current(date(2026, time.March, 20))

	assert.True(t, p.Contains(date(2026, time.March, 15)))
	assert.True(t, p.Contains(date(2026, time.April, 14)))
	assert.True(t, p.Contains(date(2026, time.March, 31)))
	assert.False(t, p.Contains(date(2026, time.March, 14)))
	assert.False(t, p.Contains(date(2026, time.April, 15)))
}

func TestISOFormatting(t *testing.T) {
	p := Current(date(2026, time.March, 20))

	assert.Equal(t, "2026-03-15", p.StartISO())
	assert.Equal(t, "2026-04-14", p.EndISO())
}
