package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    StatusLaporan
		to      StatusLaporan
		allowed bool
	}{
		{StatusDraft, StatusDiajukan, true},
		{StatusDraft, StatusDiverifikasi, false},
		{StatusDraft, StatusDitolak, false},
		{StatusDiajukan, StatusDiverifikasi, true},
		{StatusDiajukan, StatusDitolak, true},
		{StatusDiajukan, StatusRevisi, true},
		{StatusDiajukan, StatusDraft, false},
		{StatusRevisi, StatusDiajukan, true},
		{StatusRevisi, StatusDiverifikasi, false},
		{StatusDiverifikasi, StatusDiajukan, false},
		{StatusDiverifikasi, StatusRevisi, false},
		{StatusDitolak, StatusDiajukan, false},
		{StatusDitolak, StatusRevisi, false},
	}

	for _, tc := range cases {
		require.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusTerminalAndEditable(t *testing.T) {
	require.True(t, StatusDiverifikasi.IsTerminal())
	require.True(t, StatusDitolak.IsTerminal())
	require.False(t, StatusDiajukan.IsTerminal())
	require.False(t, StatusRevisi.IsTerminal())

	require.True(t, StatusDraft.IsEditable())
	require.True(t, StatusRevisi.IsEditable())
	require.False(t, StatusDiajukan.IsEditable())
	require.False(t, StatusDiverifikasi.IsEditable())
}

func TestParseStatusLaporan(t *testing.T) {
	status, ok := ParseStatusLaporan("Diajukan")
	require.True(t, ok)
	require.Equal(t, StatusDiajukan, status)

	// Query filters arrive in whatever casing the client used.
	status, ok = ParseStatusLaporan("diajukan")
	require.True(t, ok)
	require.Equal(t, StatusDiajukan, status)

	status, ok = ParseStatusLaporan("DITOLAK")
	require.True(t, ok)
	require.Equal(t, StatusDitolak, status)

	_, ok = ParseStatusLaporan("mengambang")
	require.False(t, ok)
}

func TestDurasiMenit(t *testing.T) {
	laporan := LaporanKegiatan{JamMulai: "08:00", JamSelesai: "09:30"}
	require.Equal(t, 90, laporan.DurasiMenit())

	laporan = LaporanKegiatan{JamMulai: "10:00", JamSelesai: "09:00"}
	require.Equal(t, 0, laporan.DurasiMenit())

	laporan = LaporanKegiatan{JamMulai: "", JamSelesai: "09:00"}
	require.Equal(t, 0, laporan.DurasiMenit())
}
