// Package w2n provides a CLI client for a locally running W2N content
// import service. It posts HTML fixtures to the service's /api/W2N
// endpoint, reports the service's validation response, and keeps a local
// history of import runs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, goquery/).
package w2n
