// Package recordio holds the schema and row model shared by the plugin and
// its host-side collaborators.
//
// A Schema is an ordered list of uniquely named, typed fields. A Row is a
// positionally aligned value tuple where nil means null. Builder and Copier
// exist so the per-row hot path works purely on cached positions.
package recordio
