// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the keyforge application runtime.
//
// It wires the generation adapter, client services and the output surface
// either into the terminal UI or into a single headless generation whose
// surface prints to the terminal.
package client
