package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:3")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").MinutesOfDay())
	assert.Equal(t, 6*60, TimeString("06:00").MinutesOfDay())
	assert.Equal(t, 23*60+59, TimeString("23:59").MinutesOfDay())
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("18:00")

	end, err := ts.AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:00"), end)

	_, err = ts.AddMinutes(7 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("10:00")
	b := TimeString("11:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("18:00:00"))
	assert.Equal(t, TimeString("18:00"), ts)

	require.NoError(t, ts.Scan([]byte("07:15")))
	assert.Equal(t, TimeString("07:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 21, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("21:45"), ts)

	assert.Error(t, ts.Scan(42))
}
