// Package models defines the core domain models for masterbook.
//
// # Models
//
//   - Master: a service-provider profile (hairdresser, cobbler, photographer...)
//   - Group: a named collection of masters, referenced by ID
//   - Post: a user-authored announcement, optionally linked to a static article
//   - Event: a calendar entry for a single day
//   - Profile: the single local user profile
//
// # Design Principles
//
//  1. **Snapshot persistence**: every collection is stored as one JSON array,
//     so the JSON tags here are the storage format and must stay stable.
//  2. **Weak references**: Group.MasterIDs point at masters by ID only. Nothing
//     enforces that the referenced master exists.
//  3. **Denormalized names**: Post.MasterName is a copy of the master's name taken
//     when the post was written. It is never re-synchronized.
//  4. **Explicit patches**: partial updates use Optional and Nullable so that
//     "field omitted" and "field cleared" are never confused.
package models
