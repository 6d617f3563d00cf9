package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	cases := map[time.Duration]string{
		0:                                      "00:00",
		12 * time.Second:                       "00:12",
		2*time.Minute + 24*time.Second:         "02:24",
		61*time.Minute + 1500*time.Millisecond: "61:02",
	}

	for d, want := range cases {
		assert.Equal(t, want, Clock(d), d.String())
	}
}
