package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dayplanner/internal/modules/schedule/domain"
)

func TestEncodeRecordShape(t *testing.T) {
	t.Parallel()
	s := domain.NewSchedule(time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC))
	s.Set("hour-9", "standup")

	raw, err := domain.EncodeRecord(s)
	require.NoError(t, err)

	generic := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(raw), &generic))
	require.Equal(t, map[string]any{"hour-9": "standup"}, generic["timeline"])
	require.Equal(t, "2026-10-17T08:30:00Z", generic["lastUpdated"])
}

func TestEncodeRecordNilTimelineIsEmptyObject(t *testing.T) {
	t.Parallel()
	raw, err := domain.EncodeRecord(domain.Schedule{LastUpdated: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	require.Contains(t, raw, `"timeline":{}`)
}

func TestDecodeRecordAcceptsBrowserTimestamp(t *testing.T) {
	t.Parallel()
	s, err := domain.DecodeRecord(`{"timeline":{"hour-10":"review"},"lastUpdated":"2026-10-17T14:05:09.123Z"}`)
	require.NoError(t, err)
	require.Equal(t, "review", s.Timeline["hour-10"])
	require.True(t, time.Date(2026, 10, 17, 14, 5, 9, 123000000, time.UTC).Equal(s.LastUpdated))
}

func TestDecodeRecordRejectsMalformed(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{
		``,
		`not json`,
		`null`,
		`[]`,
		`{}`,
		`{"timeline":{}}`,
		`{"lastUpdated":"2026-10-17T00:00:00Z"}`,
		`{"timeline":null,"lastUpdated":"2026-10-17T00:00:00Z"}`,
		`{"timeline":[],"lastUpdated":"2026-10-17T00:00:00Z"}`,
		`{"timeline":{"hour-9":5},"lastUpdated":"2026-10-17T00:00:00Z"}`,
		`{"timeline":{},"lastUpdated":"yesterday"}`,
		`{"timeline":{},"lastUpdated":17}`,
	} {
		_, err := domain.DecodeRecord(raw)
		require.ErrorIs(t, err, domain.ErrMalformedRecord, raw)
	}
}
