package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMaskPhone(t *testing.T) {
	require.Equal(t, "+62812****7890", MaskPhone("+6281234567890"))
	require.Equal(t, "08123****6789", MaskPhone("0812345556789"))
	require.Equal(t, "12345", MaskPhone("12345"))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	moment := time.Date(2025, 11, 20, 20, 30, 0, 0, time.UTC) // 03:30 WIB 21 Nov
	start := StartOfDay(moment, loc)
	require.Equal(t, "2025-11-21T00:00:00+07:00", start.Format(time.RFC3339))
}

func TestPageOffset(t *testing.T) {
	offset, ok := PageOffset(0, 6, 10)
	require.True(t, ok)
	require.Zero(t, offset)
	offset, ok = PageOffset(2, 6, 10)
	require.True(t, ok)
	require.Equal(t, 6, offset)
	_, ok = PageOffset(3, 6, 12)
	require.False(t, ok)
	_, ok = PageOffset(2305843009213693953, 6, 10)
	require.False(t, ok)
	// halaman pertama dari data kosong tetap valid
	offset, ok = PageOffset(1, 6, 0)
	require.True(t, ok)
	require.Zero(t, offset)
}
