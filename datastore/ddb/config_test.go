/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadStoreConfig(t *testing.T) {
	cfg, err := LoadStoreConfig(writeConfig(t, `
table: game-data
region: us-west-2
kindIndex:
  indexName: ByKind
  partitionKeyName: EntityKind
  sortKeyName: PK
`))
	require.NoError(t, err)
	assert.Equal(t, "game-data", cfg.Table)
	assert.Equal(t, "us-west-2", cfg.Region)
	assert.Equal(t, "ByKind", cfg.KindIndex.IndexName)
	assert.Equal(t, "PK", cfg.KindIndex.SortKeyName)
}

func TestLoadStoreConfigDefaultsKindIndex(t *testing.T) {
	cfg, err := LoadStoreConfig(writeConfig(t, "table: game-data\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultStoreConfig("game-data").KindIndex, cfg.KindIndex)
}

func TestLoadStoreConfigRequiresTable(t *testing.T) {
	_, err := LoadStoreConfig(writeConfig(t, "region: us-west-2\n"))
	assert.Error(t, err)
}

func TestLoadStoreConfigMissingFile(t *testing.T) {
	_, err := LoadStoreConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
