// Package application provides application initialization and dependency wiring.
// It turns the configured item manifest into mail items, places them in a
// mailbox, and renders the postage report, keeping the main package focused on
// CLI parsing and orchestration.
package application
