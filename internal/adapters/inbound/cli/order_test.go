package cli_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoopctl/scoopctl/internal/adapters/inbound/cli"
)

var orderIDPattern = regexp.MustCompile(`ORD\d{4}`)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// seedShop prepares a data directory with the sample menu.
func seedShop(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, item := range [][]string{
		{"F01", "Vanilla", "200", "flavor"},
		{"T01", "Sprinkles", "60", "topping"},
		{"C01", "Regular Cone", "100", "container"},
	} {
		_, err := runCmd(t, "menu", "add", "--data", dir,
			"--id", item[0], "--name", item[1], "--price", item[2], "--category", item[3])
		require.NoError(t, err)
	}
	return dir
}

func placeOrder(t *testing.T, dir string, args ...string) string {
	t.Helper()
	output, err := runCmd(t, append([]string{"order", "place", "--data", dir}, args...)...)
	require.NoError(t, err)
	orderID := orderIDPattern.FindString(output)
	require.NotEmpty(t, orderID, "receipt should contain the order id")
	return orderID
}

func TestOrderPlace_PrintsReceipt(t *testing.T) {
	dir := seedShop(t)

	output, err := runCmd(t, "order", "place", "CUST1", "--name", "Alice",
		"--item", "F01:2", "--data", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "New customer created: Alice")
	assert.Contains(t, output, "Order placed")
	assert.Contains(t, output, "$400.00")
}

func TestOrderPlace_EmptyCartIsCancelled(t *testing.T) {
	dir := seedShop(t)

	output, err := runCmd(t, "order", "place", "CUST1", "--name", "Alice", "--data", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "No items in order. Order cancelled.")

	listOutput, err := runCmd(t, "order", "list", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, listOutput, "No orders found.")
}

func TestOrderPlace_UnknownItemPricesAtZero(t *testing.T) {
	dir := seedShop(t)

	output, err := runCmd(t, "order", "place", "CUST1", "--name", "Alice",
		"--item", "F01:2", "--item", "ZZZ", "--data", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "$400.00", "unknown item contributes zero")
}

func TestOrderPlace_InvalidItemSpec(t *testing.T) {
	dir := seedShop(t)

	_, err := runCmd(t, "order", "place", "CUST1", "--item", "F01:zero", "--data", dir)
	assert.Error(t, err)
}

func TestOrderList_ShowsPlacedOrders(t *testing.T) {
	dir := seedShop(t)
	orderID := placeOrder(t, dir, "CUST1", "--name", "Alice", "--item", "F01")

	output, err := runCmd(t, "order", "list", "--data", dir)
	require.NoError(t, err)

	assert.Contains(t, output, orderID)
	assert.Contains(t, output, "pending")
}

func TestOrderShow_ResolvesDetails(t *testing.T) {
	dir := seedShop(t)
	orderID := placeOrder(t, dir, "CUST1", "--name", "Alice",
		"--item", "F01:2", "--item", "T01")

	output, err := runCmd(t, "order", "show", orderID, "--data", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "Order #"+orderID)
	assert.Contains(t, output, "Alice")
	assert.Contains(t, output, "Vanilla x2")
	assert.Contains(t, output, "Sprinkles x1")
	assert.Contains(t, output, "$460.00")
}

func TestOrderShow_NotFound(t *testing.T) {
	dir := seedShop(t)

	output, err := runCmd(t, "order", "show", "ORD0000", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, output, "Order not found!")
}

func TestOrderStatus_UpdatesAndPersists(t *testing.T) {
	dir := seedShop(t)
	orderID := placeOrder(t, dir, "CUST1", "--name", "Alice", "--item", "F01")

	output, err := runCmd(t, "order", "status", orderID, "preparing", "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, output, "is now preparing")

	showOutput, err := runCmd(t, "order", "show", orderID, "--data", dir)
	require.NoError(t, err)
	assert.Contains(t, showOutput, "preparing")
}

func TestOrderStatus_UnknownOrderFails(t *testing.T) {
	dir := seedShop(t)

	_, err := runCmd(t, "order", "status", "ORD0000", "ready", "--data", dir)
	assert.Error(t, err)
}
