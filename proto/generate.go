// Package proto holds the role adapter wire contract. The Go bindings
// are generated into this package by protoc.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative roleadapter.proto
