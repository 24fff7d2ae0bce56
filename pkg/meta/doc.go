// Package meta implements the multi-source metadata resolver: canonical
// note identifiers and namespace redirects, the process-lifetime side cache,
// the source aggregator with its fixed merge precedence, and the facade
// Service composing them over the vault collaborators.
package meta
