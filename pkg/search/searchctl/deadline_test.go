package searchctl_test

import (
	"testing"
	"time"

	"github.com/corvidchess/vane/pkg/search/searchctl"
	"github.com/stretchr/testify/assert"
)

func TestDeadlineNotYetUp(t *testing.T) {
	dl := searchctl.NewDeadline(time.Hour)
	assert.False(t, dl.TimeUp())
}

func TestDeadlineSticky(t *testing.T) {
	dl := searchctl.NewDeadline(time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	assert.True(t, dl.TimeUp())
	assert.True(t, dl.TimeUp()) // stays true once tripped
}

func TestDeadlineElapsed(t *testing.T) {
	dl := searchctl.NewDeadline(time.Hour)
	time.Sleep(time.Millisecond)

	assert.Greater(t, dl.Elapsed(), time.Duration(0))
}
