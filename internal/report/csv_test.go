package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "timecli/internal/errors"
)

func TestCSVWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "hours.csv")

	require.NoError(t, NewCSVWriter().Write(path, sampleTable()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// UTF-8 BOM prefix for Excel.
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"Member", "Total Hours", "Expected Hours"}, records[0])
	assert.Equal(t, []string{"Alice", "7h30min", "30"}, records[1])
	assert.Equal(t, []string{"Bob", "2h30min", "30"}, records[2])
}

func TestCSVWriteUnwritablePath(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply when running as root")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	err := NewCSVWriter().Write(filepath.Join(dir, "sub", "hours.csv"), sampleTable())

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeRender))
}
