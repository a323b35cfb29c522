// Package services contains the core business logic implementing the
// driving ports. Services depend only on domain types and driven ports,
// never on adapters.
package services
