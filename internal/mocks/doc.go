// Package mocks holds GoMock doubles for the variant interfaces.
package mocks

//go:generate mockgen -destination=runtime.go -package=mocks github.com/wippyai/variant Runtime
