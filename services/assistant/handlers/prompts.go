// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import "fmt"

// Prompt scaffolds for the inference backend. The leading and trailing
// newlines are part of the prompts the models were tuned against; keep
// them when editing.

// textPrompt wraps a user question for the non-streaming assistant.
func textPrompt(question string) string {
	return fmt.Sprintf(`
You are an expert Egyptologist and general historian AI.
Answer clearly and accurately. If the question is about a specific artifact, provide context and significance.
If the question is about a historical figure (e.g., Ramesses II), provide a concise biography and key facts.
If the question is general world knowledge, answer using authoritative tone.

User question:
%s

Answer:
`, question)
}

// streamPrompt wraps a user question for the streaming endpoint. Shorter
// than textPrompt: streamed answers favor concision.
func streamPrompt(question string) string {
	return fmt.Sprintf(`
You are an expert Egyptologist and general historian. Answer clearly and concisely.
If the user asks about a known artifact or person, provide historical context, key facts, and significance.

User question:
%s

Answer:
`, question)
}

// defaultVisionQuestion is used when the upload carries no question field.
const defaultVisionQuestion = "What is this artifact? Provide identification and context."

// visionPrompt wraps a user question for image analysis.
func visionPrompt(question string) string {
	return fmt.Sprintf(`
You are an Egyptologist specializing in artifact identification.

CONTEXT: dataset includes many Egyptian artifacts (Rosetta Stone, Nefertiti bust, statues, canopic jars, sarcophagi).

USER QUESTION: %s

ANALYSIS REQUEST:
1. Identify artifact if possible (name/type/material).
2. Describe visible features.
3. Estimate historical period.
4. Comment on likely provenance.
`, question)
}
