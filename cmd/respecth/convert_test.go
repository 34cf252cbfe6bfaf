package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConvertOne(t *testing.T) {
	sims, err := convertOne(filepath.Join("..", "..", "experiment", "testdata", "testfile_st.xml"))
	require.NoError(t, err)
	require.Len(t, sims, 2)
	assert.Equal(t, "testfile_st_0", sims[0].ID)
	assert.Equal(t, "testfile_st_1", sims[1].ID)

	_, err = convertOne(filepath.Join("..", "..", "experiment", "testdata", "no_such_file.xml"))
	assert.Error(t, err)
}

func TestWriteRecords(t *testing.T) {
	sims, err := convertOne(filepath.Join("..", "..", "experiment", "testdata", "testfile_rcm.xml"))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, writeRecords(sims, out))

	b, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(b, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "testfile_rcm_0", decoded[0]["id"])
	assert.Equal(t, "RCM", decoded[0]["kind"])
	assert.Equal(t, "testfile_rcm.xml", decoded[0]["data file"])
}
