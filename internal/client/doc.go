// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the config inspector: a one-shot command that
// asks a running research gateway for its LLM configuration and prints the
// model picker the web frontend would offer.
package client
