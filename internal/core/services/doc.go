// Package services implements the driving ports on top of the driven ones.
//
// Graph analytics (FindClusters, MostConnected, Recommend) and the export
// encoders are plain functions over a domain.Snapshot so they can be reused
// by any adapter without touching storage.
//
// # Import Rules
//
//   - Can Import: domain, ports/driven, ports/driving, logger
//   - Cannot Import: Any adapter package
package services
