package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		in      TimeString
		wantErr bool
	}{
		{in: "08:00"},
		{in: "23:59"},
		{in: "00:00"},
		{in: "8:00", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "10-00", wantErr: true},
		{in: "+1:00", wantErr: true},
		{in: "1+:00", wantErr: true},
		{in: "10:+5", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_Parts(t *testing.T) {
	ts := TimeString("19:45")
	assert.Equal(t, 19, ts.Hour())
	assert.Equal(t, 45, ts.Minute())
	assert.Equal(t, -1, TimeString("bad").Hour())

	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestTimeString_Constructors(t *testing.T) {
	ts, err := NewTimeStringFromHour(8)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), ts)

	_, err = NewTimeStringFromHour(24)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("7:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	assert.Equal(t, TimeString("11:15"), NewTimeString(time.Date(2024, 6, 10, 11, 15, 42, 0, time.UTC)))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("11:00")))
	assert.Equal(t, TimeString("11:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:00"), ts)

	assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)

	v, err := TimeString("13:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "13:00", v)
}
