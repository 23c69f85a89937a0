package logger

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

const maxChainDepth = 64

// collectErrorEntries flattens err into one entry per message. zerr metadata
// attached through an empty wrapper is carried to the next message. Joined
// errors contribute their branches in order.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var carried map[string]any

	var walk func(err error, depth int)
	walk = func(err error, depth int) {
		for err != nil && depth < maxChainDepth {
			depth++
			if joined, ok := err.(interface{ Unwrap() []error }); ok {
				for _, branch := range joined.Unwrap() {
					walk(branch, depth)
				}
				return
			}

			z, ok := err.(*zerr.Error)
			if !ok {
				entries = append(entries, ErrorEntry{Message: err.Error(), Metadata: carried})
				carried = nil
				return
			}

			meta := z.Metadata()
			if z.Message() == "" {
				if carried == nil {
					carried = make(map[string]any, len(meta))
				}
				maps.Copy(carried, meta)
			} else {
				if carried != nil {
					maps.Copy(meta, carried)
					carried = nil
				}
				entries = append(entries, ErrorEntry{Message: z.Message(), Metadata: meta})
			}
			err = z.Unwrap()
		}
	}
	walk(err, 0)

	if carried != nil && len(entries) > 0 {
		last := &entries[len(entries)-1]
		if last.Metadata == nil {
			last.Metadata = carried
		} else {
			maps.Copy(last.Metadata, carried)
		}
	}
	return entries
}

// formatErrorEntries renders entries as a main error followed by its causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string
	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")
		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}
		lines = append(lines, head+msgLines[0])
		for _, l := range msgLines[1:] {
			lines = append(lines, indent+l)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}
	return strings.Join(lines, "\n")
}
