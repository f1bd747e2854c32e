// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It wires configuration, the local cache, the Grocy adapter and the sync
// service into one process, runs one command against them and prints the
// resulting shopping list view.
package client
