package graph

import (
	"fmt"
	"strings"
)

// StageKind selects the shape of a pipeline stage.
type StageKind int

const (
	StageEntry StageKind = iota
	StageMiddleware
	StageThunk
	StageReducer
)

// Stage is one link of a dispatch pipeline.
type Stage struct {
	Name string
	Kind StageKind
}

// GenerateMermaid produces a Mermaid flowchart of a dispatch pipeline.
// Shapes:
// - Entry: ((Circle))
// - Thunk: [[Subroutine]]
// - Reducer: [(Database)] (holds the state)
// - Default: [Rectangle]
// Thunk stages get a dotted edge back to the entry: thunks dispatch through the full chain.
func GenerateMermaid(stages []Stage) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	var entryID string
	for i, stage := range stages {
		safeID := sanitizeMermaidID(stage.Name)

		opener, closer := "[", "]"
		switch stage.Kind {
		case StageEntry:
			opener, closer = "((", "))"
			if entryID == "" {
				entryID = safeID
			}
		case StageThunk:
			opener, closer = "[[", "]]"
		case StageReducer:
			opener, closer = "[(", ")]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, stage.Name, closer))

		if i+1 < len(stages) {
			next := sanitizeMermaidID(stages[i+1].Name)
			label := "command"
			if i == 0 {
				label = "action"
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, label, next))
		}
	}

	for _, stage := range stages {
		if stage.Kind == StageThunk && entryID != "" {
			sb.WriteString(fmt.Sprintf("    %s -. \"dispatch\" .-> %s\n", sanitizeMermaidID(stage.Name), entryID))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
