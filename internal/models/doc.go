// Package models defines the persisted domain models for a labor claim case.
//
// # Models
//
//   - Case: one petition being assembled, from qualification to filing
//   - Qualification: identification of claimant and defendant
//   - Facts: employment facts and narrative
//   - ClaimSelection: a selected claim with its stable key and parameters
//   - EvidenceRef: metadata of an attached proof; content is stored by digest
//
// # Design Principles
//
//  1. Calculation types are owned by the calculator package; a Case only
//     stores the last computed summary.
//  2. Relationships use ID strings, never pointers.
//  3. Overrides are keyed by ClaimSelection.Key so they follow the claim when
//     the list is reordered or shrunk.
package models
