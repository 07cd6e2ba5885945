package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuAdd_AndList(t *testing.T) {
	dir := t.TempDir()

	output, err := runCmd(t, "menu", "add", "--data", dir,
		"--id", "F01", "--name", "Vanilla", "--price", "200", "--category", "flavor")
	require.NoError(t, err)
	assert.Contains(t, output, "Added Vanilla (F01)")

	listOutput, err := runCmd(t, "menu", "list", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, listOutput, "FLAVORS")
	assert.Contains(t, listOutput, "Vanilla")
	assert.Contains(t, listOutput, "$200.00")
}

func TestMenuAdd_UnknownCategory(t *testing.T) {
	dir := t.TempDir()

	_, err := runCmd(t, "menu", "add", "--data", dir,
		"--id", "X01", "--name", "Mystery", "--price", "10", "--category", "sauce")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestMenuAdd_RequiresFlags(t *testing.T) {
	dir := t.TempDir()

	_, err := runCmd(t, "menu", "add", "--data", dir)
	assert.Error(t, err)
}
