//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep mockgen, invoked through
// go generate on contract/contract.go, pinned in go.mod and go.sum.
package nymchat

import (
	_ "go.uber.org/mock/mockgen"
)
