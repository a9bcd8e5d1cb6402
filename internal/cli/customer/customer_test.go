package customer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/billform/internal/cli"
	"github.com/thenoetrevino/billform/internal/testutil"
)

func TestCreateCustomer(t *testing.T) {
	a := testutil.SetupTestApp(t)

	out, _, err := testutil.ExecuteCLICommand(t, a, CustomerCmd(),
		"create", "--name", "Ann", "--phone", "5551234567", "--email", "ann@x.io")
	require.NoError(t, err)
	assert.Contains(t, out, "Customer 'Ann' created successfully (ID: 1)")
}

func TestCreateCustomer_JSONAndQuiet(t *testing.T) {
	a := testutil.SetupTestApp(t)

	out, _, err := testutil.ExecuteCLICommand(t, a, CustomerCmd(),
		"create", "--name", "Ann", "--phone", "5551234567", "--email", "ann@x.io", "--json")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	data := result["data"].(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Ann", data["name"])

	out, _, err = testutil.ExecuteCLICommand(t, a, CustomerCmd(),
		"create", "--name", "Bob", "--phone", "0123456789", "--email", "bob@x.io", "--address", "2 Elm", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestCreateCustomer_InvalidEmail(t *testing.T) {
	a := testutil.SetupTestApp(t)

	_, stderr, err := testutil.ExecuteCLICommand(t, a, CustomerCmd(),
		"create", "--name", "Ann", "--phone", "5551234567", "--email", "ann@")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
	assert.Contains(t, stderr, "invalid email address")
}
