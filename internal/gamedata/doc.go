// Package gamedata loads the raw game data tables and answers the join
// queries the enrichment pipeline needs.
//
// Four tables participate: the avatar config (one record per character,
// playable or not), the fetter info config (element/vision data keyed by
// avatar ID), the manual text map (symbolic text IDs to text map hashes), and
// the localized text map (hash to display string).
//
// The Index memoizes each query per distinct input. Tables are immutable for
// the duration of a run, so the caches never invalidate.
package gamedata
