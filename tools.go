//go:build tools
// +build tools

// Package tools pins mockgen, run by the go:generate lines of the
// contract, storage and services packages to refresh mocks/.
package chat_archive

import (
	_ "go.uber.org/mock/mockgen"
)
