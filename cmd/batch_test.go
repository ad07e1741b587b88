package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "firms.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadBatchCSV(t *testing.T) {
	path := writeCSV(t, `name,firm_type,address,phone,services,funds
Acme Capital,private equity,"100 Park Ave, New York, NY, USA",+1 212 555 0100,buyout;venture capital,CLO;real estate
Helm Advisors,law firm,"1 Poultry, London, United Kingdom",,advisory,
`)

	reqs, err := readBatchCSV(path)
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.Equal(t, "Acme Capital", reqs[0].FirmName)
	assert.Equal(t, "private equity", reqs[0].FirmType)
	assert.Equal(t, "100 Park Ave, New York, NY, USA", reqs[0].HQ.Address)
	assert.Equal(t, []string{"buyout", "venture capital"}, reqs[0].Services)
	assert.Equal(t, []string{"CLO", "real estate"}, reqs[0].Funds)

	assert.Equal(t, "Helm Advisors", reqs[1].FirmName)
	assert.Empty(t, reqs[1].Funds)
}

func TestReadBatchCSV_ShortRows(t *testing.T) {
	path := writeCSV(t, "name,firm_type\nBare Firm\n")

	reqs, err := readBatchCSV(path)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bare Firm", reqs[0].FirmName)
	assert.Empty(t, reqs[0].HQ.Address)
}

func TestReadBatchCSV_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "name,firm_type,address,phone,services,funds\n")

	reqs, err := readBatchCSV(path)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestReadBatchCSV_MissingFile(t *testing.T) {
	_, err := readBatchCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ; b ;"))
}
