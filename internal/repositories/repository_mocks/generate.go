package repository_mocks

//go:generate go tool mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks

// This file contains the go:generate directive to generate mocks for repository interfaces.
// mockgen comes from go.uber.org/mock (declared as a module tool in go.mod).
// To regenerate the mocks, run:
//   go generate ./internal/repositories/repository_mocks
