package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (m mockDataWithID) GetID() int64 { return m.ID }

func (m mockDataWithID) WriteHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ %s (ID: %d)\n", m.Name, m.ID)
	return err
}

type mockList []int64

func (m mockList) GetIDs() []int64 { return m }

type mockPlain struct {
	Value int
}

func newFormatter(jsonOut, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOut, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newFormatter(true, false)
	require.NoError(t, f.Success(mockDataWithID{ID: 7, Name: "Pen"}))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, true, result["success"])

	data := result["data"].(map[string]any)
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "Pen", data["name"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	f, out, _ := newFormatter(false, true)
	require.NoError(t, f.Success(mockDataWithID{ID: 7}))
	assert.Equal(t, "7\n", out.String())

	f, out, _ = newFormatter(false, true)
	require.NoError(t, f.Success(mockList{3, 1, 2}))
	assert.Equal(t, "3\n1\n2\n", out.String())

	f, out, _ = newFormatter(false, true)
	require.NoError(t, f.Success(mockPlain{Value: 1}))
	assert.Empty(t, out.String(), "quiet mode prints nothing for results without IDs")
}

func TestOutputFormatter_Success_Quiet_WinsOverJSON(t *testing.T) {
	f, out, _ := newFormatter(true, true)
	require.NoError(t, f.Success(mockDataWithID{ID: 9}))
	assert.Equal(t, "9\n", out.String())
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newFormatter(false, false)
	require.NoError(t, f.Success(mockDataWithID{ID: 7, Name: "Pen"}))
	assert.Equal(t, "✓ Pen (ID: 7)\n", out.String())

	f, out, _ = newFormatter(false, false)
	require.NoError(t, f.Success(mockPlain{Value: 3}))
	assert.Equal(t, "{Value:3}\n", out.String())
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newFormatter(true, false)
	require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "bill not found", "run bill list"))
	assert.Empty(t, errOut.String())

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])

	errData := result["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errData["code"])
	assert.Equal(t, "bill not found", errData["message"])
	assert.Equal(t, "run bill list", errData["suggestion"])
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newFormatter(false, false)
	require.NoError(t, f.Error("VALIDATION_ERROR", "phone must be exactly 10 digits"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: phone must be exactly 10 digits")
	assert.NotContains(t, errOut.String(), "Suggestion")
}
