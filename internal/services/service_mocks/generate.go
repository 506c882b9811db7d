package service_mocks

//go:generate go tool mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks

// This file contains the go:generate directive to generate mocks for service interfaces.
// mockgen comes from go.uber.org/mock (declared as a module tool in go.mod).
// To regenerate the mocks, run:
//   go generate ./internal/services/service_mocks
