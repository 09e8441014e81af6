/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package ddb provides a DynamoDB-backed implementation of
// datastore.DataStore. Models are converted through their ModelMeta
// into storage records, records are encoded as DynamoDB items, and
// query filter terms are rendered into DynamoDB filter expressions.
package ddb
