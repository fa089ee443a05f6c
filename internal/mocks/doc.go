// Package mocks provides hand-written test doubles for the service and store
// interfaces. Each mock exposes optional function fields for per-test
// behavior plus simple default fields for the common cases.
package mocks
