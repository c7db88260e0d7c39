package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"3s"`), &d))
	require.Equal(t, 3*time.Second, d.Duration)
}

func TestDuration_UnmarshalNanoseconds(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1500000000`), &d))
	require.Equal(t, 1500*time.Millisecond, d.Duration)
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
	require.Error(t, json.Unmarshal([]byte(`"abc"`), &d))
}

func TestFormatShort(t *testing.T) {
	ts := time.Date(2026, time.February, 5, 14, 30, 0, 0, time.UTC)
	require.Equal(t, "05/02/2026 14:30", FormatShort(ts))
}

func TestFormatLong(t *testing.T) {
	ts := time.Date(2026, time.February, 5, 14, 30, 0, 0, time.UTC)
	require.Equal(t, "05 février 2026 à 14:30", FormatLong(ts))

	ts = time.Date(2025, time.August, 1, 9, 5, 0, 0, time.UTC)
	require.Equal(t, "01 août 2025 à 09:05", FormatLong(ts))
}
