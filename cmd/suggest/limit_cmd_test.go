package main

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otterbloom/suggestengine/internal/config"
)

func TestLimitCmdPrintsDefaultWhenUnset(t *testing.T) {
	old := dataFile
	dataFile = filepath.Join(t.TempDir(), "data.tsv")
	defer func() { dataFile = old }()

	out := captureStdout(t, func() {
		cmd := limitCmd()
		cmd.SetArgs(nil)
		require.NoError(t, cmd.Execute())
	})
	assert.Equal(t, strconv.Itoa(config.DefaultLimit), strings.TrimSpace(out))
}

func TestLimitCmdSetsAndPersists(t *testing.T) {
	old := dataFile
	dataFile = filepath.Join(t.TempDir(), "data.tsv")
	defer func() { dataFile = old }()

	cmd := limitCmd()
	cmd.SetArgs([]string{"7"})
	require.NoError(t, cmd.Execute())

	s := loadSettings(dataFile)
	assert.Equal(t, 7, s.limit)
}

func TestLimitCmdRejectsNonPositive(t *testing.T) {
	old := dataFile
	dataFile = filepath.Join(t.TempDir(), "data.tsv")
	defer func() { dataFile = old }()

	cmd := limitCmd()
	cmd.SetArgs([]string{"0"})
	assert.Error(t, cmd.Execute())
}
