/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/modelstore/errors"
)

// GSIConfig describes a global secondary index on the store's table.
type GSIConfig struct {
	IndexName        string `yaml:"indexName"`
	PartitionKeyName string `yaml:"partitionKeyName"`
	SortKeyName      string `yaml:"sortKeyName,omitempty"`
}

// StoreConfig describes the DynamoDB table backing a store. KindIndex
// is the index partitioned by record kind, which every kind-scoped
// query runs against.
type StoreConfig struct {
	Table     string    `yaml:"table"`
	Region    string    `yaml:"region,omitempty"`
	KindIndex GSIConfig `yaml:"kindIndex"`
}

// DefaultStoreConfig returns a config for a single-table layout with
// the conventional kind index.
func DefaultStoreConfig(table string) StoreConfig {
	return StoreConfig{
		Table: table,
		KindIndex: GSIConfig{
			IndexName:        "KindIndex",
			PartitionKeyName: attrKind,
			SortKeyName:      attrPK,
		},
	}
}

// LoadStoreConfig reads a store config from a YAML file. Missing
// kind-index settings fall back to the defaults.
func LoadStoreConfig(path string) (StoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StoreConfig{}, fmt.Errorf("read store config: %w", err)
	}
	var cfg StoreConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StoreConfig{}, fmt.Errorf("parse store config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return StoreConfig{}, err
	}
	return cfg, nil
}

func (c *StoreConfig) validate() error {
	if c.Table == "" {
		return errors.NewInvalidArgumentError("table", "table name is required")
	}
	def := DefaultStoreConfig(c.Table)
	if c.KindIndex.IndexName == "" {
		c.KindIndex.IndexName = def.KindIndex.IndexName
	}
	if c.KindIndex.PartitionKeyName == "" {
		c.KindIndex.PartitionKeyName = def.KindIndex.PartitionKeyName
	}
	if c.KindIndex.SortKeyName == "" {
		c.KindIndex.SortKeyName = def.KindIndex.SortKeyName
	}
	return nil
}
