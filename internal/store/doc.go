// Package store defines the persistence interfaces the application depends
// on, together with the shared error taxonomy. Implementations live in
// internal/platform; services and handlers depend only on these interfaces.
package store
