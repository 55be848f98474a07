// Package sentiment wraps the VADER sentiment analyzer behind a small
// capability interface so the row-processing plugin never depends on the
// concrete implementation.
package sentiment
