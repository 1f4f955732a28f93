package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatetime(t *testing.T) {
	t.Parallel()

	c := Datetime{}

	v, err := c.Decode("2026-08-29T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC), v)

	raw, err := c.Encode(time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29T10:30:00Z", raw)

	_, err = c.Decode("not a date")
	require.Error(t, err)

	_, err = c.Decode(42)
	require.Error(t, err)

	_, err = c.Encode("not a time")
	require.Error(t, err)
}

func TestDatetime_CustomLayout(t *testing.T) {
	t.Parallel()

	c := Datetime{Layout: time.DateOnly}

	v, err := c.Decode("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), v)
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	c := Timestamp{}

	// JSON numbers arrive as float64.
	v, err := c.Decode(float64(1700000000))
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), v)

	raw, err := c.Encode(time.Unix(1700000000, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), raw)

	_, err = c.Decode(1.5)
	require.Error(t, err, "fractional seconds are not a valid timestamp")

	_, err = c.Decode("1700000000")
	require.Error(t, err)
}

func TestDuration(t *testing.T) {
	t.Parallel()

	c := Duration{}

	v, err := c.Decode("2h45m")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour+45*time.Minute, v)

	raw, err := c.Encode(2*time.Hour + 45*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "2h45m0s", raw)

	_, err = c.Decode("eventually")
	require.Error(t, err)
}

func TestSeconds(t *testing.T) {
	t.Parallel()

	c := Seconds{}

	v, err := c.Decode(1.5)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, v)

	raw, err := c.Encode(1500 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1.5, raw)
}

func TestTextualBool(t *testing.T) {
	t.Parallel()

	c := TextualBool{}

	for _, s := range []string{"yes", "on", "true", "YES", "True"} {
		v, err := c.Decode(s)
		require.NoError(t, err, s)
		assert.Equal(t, true, v, s)
	}

	for _, s := range []string{"no", "off", "false"} {
		v, err := c.Decode(s)
		require.NoError(t, err, s)
		assert.Equal(t, false, v, s)
	}

	_, err := c.Decode("maybe")
	require.Error(t, err)

	raw, err := c.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, "true", raw)

	custom := TextualBool{True: "on", False: "off"}

	raw, err = custom.Encode(false)
	require.NoError(t, err)
	assert.Equal(t, "off", raw)
}

func TestNumericBool(t *testing.T) {
	t.Parallel()

	c := NumericBool{}

	v, err := c.Decode(float64(1))
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = c.Decode(0)
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = c.Decode(2)
	require.Error(t, err)

	raw, err := c.Encode(true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), raw)
}

func TestTextNumber(t *testing.T) {
	t.Parallel()

	c := TextNumber{}

	v, err := c.Decode("42.5")
	require.NoError(t, err)
	assert.Equal(t, 42.5, v)

	raw, err := c.Encode(42.5)
	require.NoError(t, err)
	assert.Equal(t, "42.5", raw)

	raw, err = c.Encode(7)
	require.NoError(t, err)
	assert.Equal(t, "7", raw)

	_, err = c.Decode("forty-two")
	require.Error(t, err)
}
