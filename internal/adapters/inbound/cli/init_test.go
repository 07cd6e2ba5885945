package cli_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := runCmd(t, "init")
	require.NoError(t, err)
	assert.Contains(t, output, "Created .scoopctl.yaml")

	data, err := os.ReadFile(".scoopctl.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "shop_name: Ice Cream Shop")
	assert.Contains(t, string(data), "id_scheme: random")
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCmd(t, "init")
	require.NoError(t, err)

	_, err = runCmd(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_ForceOverwrites(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := runCmd(t, "init")
	require.NoError(t, err)

	_, err = runCmd(t, "init", "--force")
	assert.NoError(t, err)
}

func TestInit_SeedLoadsSampleMenu(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()

	output, err := runCmd(t, "init", "--seed", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, output, "Seeded sample menu (8 items)")

	listOutput, err := runCmd(t, "menu", "list", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, listOutput, "Vanilla")
	assert.Contains(t, listOutput, "Waffle Cone")
}
