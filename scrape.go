// Package scrape provides webpage fetching and CSS-selector querying.
// It loads HTML from URLs or literal markup, answers selector and
// tag/attribute queries, extracts text and attribute values, and can
// archive pages as markdown for offline use.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package scrape
