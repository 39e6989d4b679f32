// Package mailbox aggregates mail items, computes the total postage owed for
// them, and renders a plain-text report. Items without a destination address
// are refused on insertion.
package mailbox
