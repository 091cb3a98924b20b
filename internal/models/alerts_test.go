package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceAlert_Trigger(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	alert := PriceAlert{
		ID:          "alert-1",
		ProductID:   "prod-1",
		TargetPrice: 1000,
		IsActive:    true,
		UpdatedAt:   now.Add(-time.Hour),
	}

	require.True(t, alert.Eligible())
	require.NoError(t, alert.Trigger(now))

	assert.False(t, alert.IsActive)
	require.NotNil(t, alert.TriggeredAt)
	assert.True(t, alert.TriggeredAt.Equal(now))
	assert.True(t, alert.UpdatedAt.Equal(now))
	assert.False(t, alert.Eligible())
	assert.NoError(t, alert.Validate())
}

func TestPriceAlert_TriggerIsTerminal(t *testing.T) {
	now := time.Now()
	alert := PriceAlert{ID: "alert-1", IsActive: true}

	require.NoError(t, alert.Trigger(now))
	first := *alert.TriggeredAt

	// Повторный Trigger не должен менять состояние
	err := alert.Trigger(now.Add(time.Hour))
	require.Error(t, err)
	assert.True(t, alert.TriggeredAt.Equal(first))
}

func TestPriceAlert_Eligible(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		alert PriceAlert
		want  bool
	}{
		{"active untriggered", PriceAlert{IsActive: true}, true},
		{"inactive untriggered", PriceAlert{IsActive: false}, false},
		{"triggered", PriceAlert{IsActive: false, TriggeredAt: &now}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.alert.Eligible())
		})
	}
}

func TestPriceAlert_ValidateInvariant(t *testing.T) {
	now := time.Now()
	bad := PriceAlert{ID: "alert-1", IsActive: true, TriggeredAt: &now}
	assert.Error(t, bad.Validate())
}

func TestSyncState_Stale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	maxAge := 5 * time.Minute

	// Нет watermark - синхронизация нужна
	assert.True(t, SyncState{}.Stale(now, maxAge))

	fourMinAgo := now.Add(-4 * time.Minute)
	assert.False(t, SyncState{LastSync: &fourMinAgo}.Stale(now, maxAge))

	sixMinAgo := now.Add(-6 * time.Minute)
	assert.True(t, SyncState{LastSync: &sixMinAgo}.Stale(now, maxAge))

	// Ровно maxAge - еще не stale (строгое сравнение)
	exact := now.Add(-maxAge)
	assert.False(t, SyncState{LastSync: &exact}.Stale(now, maxAge))
}
