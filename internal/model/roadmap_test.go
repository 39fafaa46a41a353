package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRoadmapContentValueScan(t *testing.T) {
	content := RoadmapContent{
		Roadmap:    "step by step",
		Milestones: []string{"a", "b", "c"},
	}

	v, err := content.Value()
	require.NoError(t, err)

	var got RoadmapContent
	require.NoError(t, got.Scan(v))
	require.Equal(t, content, got)

	// Drivers may hand back []byte
	var fromBytes RoadmapContent
	require.NoError(t, fromBytes.Scan([]byte(v.(string))))
	require.Equal(t, content, fromBytes)

	require.Error(t, got.Scan(42))
}

func TestRoadmapContentPatchApply(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	rm := &Roadmap{
		ID:     "r1",
		UserID: "u1",
		GoalID: "g1",
		Content: RoadmapContent{
			Roadmap:    "old narrative",
			Milestones: []string{"keep"},
		},
	}

	patch := &RoadmapContentPatch{Milestones: Set([]string{"new", "list"})}
	patch.Apply(rm, now)

	require.Equal(t, "old narrative", rm.Content.Roadmap)
	require.Equal(t, []string{"new", "list"}, rm.Content.Milestones)
	require.Equal(t, now, rm.UpdatedAt)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-01-01", false},
		{"2024-09-10T00:00:00.000Z", false},
		{"2024-09-10T00:00:00Z", false},
		{"", true},
		{"01/02/2024", true},
		{"tomorrow", true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidDate, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.False(t, got.Equal(time.Time{}), tt.in)
	}
}
