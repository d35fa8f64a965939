// Package pincraft turns an article URL into Pinterest pin copy.
// It scrapes the article through a chain of fetch strategies, extracts
// title, description, body text and headings, and generates pin titles,
// descriptions and hashtags with either a language model or an offline
// template generator.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, http/).
package pincraft
