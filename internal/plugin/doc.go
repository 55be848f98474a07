// Package plugin implements the row augmentation adapter.
//
// The host engine drives it through a fixed callback order: Init with the XML
// configuration, AddIncomingConnection, then per connection Init (schema
// negotiation), any number of PushRecord calls interleaved with
// UpdateProgress, and Close. Each incoming row is copied through verbatim and
// extended with Sentiment_Output plus the four VADER score fields.
package plugin
