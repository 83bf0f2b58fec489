// Package llmv1 carries the gRPC contract for the model-gateway sidecar.
// The Go bindings are generated from llm.proto and are not committed; run
// `go generate ./proto` after changing the contract.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
