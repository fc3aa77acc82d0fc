package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const history = `[
  {"category":"Cogged","subcategory":"Bx","size":"40","stockin":10,"date":"2024-01-01"},
  {"category":"Cogged","subcategory":"Bx","size":40,"stockout":"3","date":"2024-01-02"},
  {"category":"Cogged","subcategory":"Bx","size":"42","stockin":5,"date":"2024-01-01"}
]`

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestSizesCount(t *testing.T) {
	got := execute(t, "", "sizes", "count", "--mode", "multiple", "--start", "40", "--end", "46", "--interval", "2")
	assert.Equal(t, "4\n", got)
}

func TestLedgerInitial(t *testing.T) {
	got := execute(t, history, "ledger", "initial", "-")
	assert.Equal(t, "15\n", got)
}

func TestLedgerReconstructTable(t *testing.T) {
	got := execute(t, history, "ledger", "reconstruct", "-", "-o", "table")
	assert.Contains(t, got, "REMAINING")
	assert.Regexp(t, `2024-01-02\s+Cogged\s+Bx\s+40\s+0\s+3\s+7\s+0`, got)
}

func TestRegisterExport(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "history.json")
	out := filepath.Join(dir, "bx.xlsx")
	require.NoError(t, os.WriteFile(in, []byte(history), 0o600))

	execute(t, "", "register", "export", in, "--out", out, "--category", "Cogged")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}
