// Package service contains the application services that orchestrate domain
// logic, persistence, and external providers. Each service depends only on
// interfaces so tests can substitute fakes for stores and providers.
package service
