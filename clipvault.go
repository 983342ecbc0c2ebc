// Package clipvault captures web pages and hand-written notes into a
// Markdown vault. It extracts readable text from arbitrary articles,
// pulls title, channel and full description out of video watch pages,
// and assembles the result into a note with frontmatter.
//
// This package contains domain types, interfaces and pure helpers following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., readability/,
// goquery/, rod/).
package clipvault
