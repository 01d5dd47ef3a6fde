//go:build tools

package tools

// CLI tools used during development. They are not compiled into any binary.
//
// - github.com/matryer/moq: service and transport mocks (go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose: migrations outside the server
//   (declared with the go.mod tool directive)
