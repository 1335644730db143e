// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters. Storage, translation and health ports are implemented by outbound
// adapters and platform packages and consumed by the application layer.
package ports
