// Package ui contains the Fyne-based desktop user interface for the catalog
// viewer. It wires list selections to the cascade controller, renders resolved
// pictures and the status bar, and edits settings. All UI strings are
// localized via Localization.
package ui
