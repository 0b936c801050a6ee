// Package resdesk provides the back office of a static research blog.
// It keeps a bounded history of literature queries, routes free-text
// requests to the right section of the blog, opens external literature
// search engines, formats citations and maintains an offline asset cache.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package resdesk
