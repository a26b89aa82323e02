// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/khemetlabs/khemet/services/assistant/datatypes"
)

// =============================================================================
// Resolution
// =============================================================================

// Resolution is a locally produced answer together with the source tag the
// API reports for it.
type Resolution struct {
	Answer string
	Source datatypes.Source
}

// GreetingReply is the fixed answer for greeting-only messages.
const GreetingReply = "Hello! I'm your Egyptian Artifacts AI assistant. " +
	"Ask me about artifacts, pharaohs, or history."

var greetingPattern = regexp.MustCompile(`(?i)\b(hi|hello|hey|greetings)\b`)

// =============================================================================
// Rule Chain
// =============================================================================

// rule pairs a predicate with a handler. Rules are evaluated in order and
// the first matching rule produces the resolution, so more specific rules
// must come before broader ones.
type rule struct {
	matches func(q string, entries []datatypes.Artifact) bool
	resolve func(q string, entries []datatypes.Artifact) Resolution
}

var rules = []rule{
	{matchesName, resolveName},
	{matchesCount, resolveCount},
	{matchesCountries, resolveCountries},
	{matchesContested, resolveContested},
	{matchesGreeting, resolveGreeting},
}

// Resolve answers a query from the catalogue when one of the dataset rules
// applies, or recognizes a greeting.
//
// # Description
//
// The chain runs over the lowercased query in fixed priority order: named
// artifact card, artifact count, country listing, contested count, then
// greeting. Dataset rules win over the greeting so a message like "hello,
// how many artifacts are there?" gets the count rather than the canned
// greeting. A false second return means no rule applied and the query must
// be delegated to the inference backend.
func Resolve(query string, entries []datatypes.Artifact) (Resolution, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Resolution{}, false
	}
	for _, r := range rules {
		if r.matches(q, entries) {
			return r.resolve(q, entries), true
		}
	}
	return Resolution{}, false
}

// =============================================================================
// Dataset Rules
// =============================================================================

func matchesName(q string, entries []datatypes.Artifact) bool {
	return namedArtifact(q, entries) != nil
}

func resolveName(q string, entries []datatypes.Artifact) Resolution {
	a := namedArtifact(q, entries)
	card := fmt.Sprintf(
		"🏺 **%s**\n"+
			"📋 Type: %s\n"+
			"📍 Current Location: %s\n"+
			"📊 Status: %s\n"+
			"📅 Year Taken: %s\n"+
			"📖 Description: %s",
		a.Name, a.ArtifactType, a.CurrentLocation, a.Status, a.YearTaken, a.Description)
	return Resolution{Answer: card, Source: datatypes.SourceDataset}
}

// namedArtifact returns the first catalogue entry whose full name appears
// in the lowercased query.
func namedArtifact(q string, entries []datatypes.Artifact) *datatypes.Artifact {
	for i := range entries {
		name := strings.ToLower(entries[i].Name)
		if name != "" && strings.Contains(q, name) {
			return &entries[i]
		}
	}
	return nil
}

func matchesCount(q string, _ []datatypes.Artifact) bool {
	return strings.Contains(q, "how many") && strings.Contains(q, "artifact")
}

func resolveCount(_ string, entries []datatypes.Artifact) Resolution {
	return Resolution{
		Answer: fmt.Sprintf("📊 There are **%d** artifacts in the dataset.", len(entries)),
		Source: datatypes.SourceDataset,
	}
}

func matchesCountries(q string, _ []datatypes.Artifact) bool {
	return strings.Contains(q, "countries") ||
		(strings.Contains(q, "where") && strings.Contains(q, "artifacts"))
}

func resolveCountries(_ string, entries []datatypes.Artifact) Resolution {
	seen := make(map[string]struct{}, len(entries))
	countries := make([]string, 0, len(entries))
	for i := range entries {
		c := entries[i].Country
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return Resolution{
		Answer: "🌍 Artifacts are in: " + strings.Join(countries, ", "),
		Source: datatypes.SourceDataset,
	}
}

func matchesContested(q string, _ []datatypes.Artifact) bool {
	return strings.Contains(q, "contested")
}

func resolveContested(_ string, entries []datatypes.Artifact) Resolution {
	count := 0
	for i := range entries {
		if entries[i].Status == datatypes.StatusContested {
			count++
		}
	}
	return Resolution{
		Answer: fmt.Sprintf("⚖️ There are **%d** contested artifacts.", count),
		Source: datatypes.SourceDataset,
	}
}

// =============================================================================
// Greeting
// =============================================================================

func matchesGreeting(q string, _ []datatypes.Artifact) bool {
	return greetingPattern.MatchString(q)
}

func resolveGreeting(_ string, _ []datatypes.Artifact) Resolution {
	return Resolution{Answer: GreetingReply, Source: datatypes.SourceFallback}
}
