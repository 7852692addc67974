package layout

import (
	"fmt"
	"log"

	"github.com/milk9111/toolgrid/tool"
)

// Apply reconciles a record against the live panel set: every record entry
// either updates an existing panel in place, creates a new one through the
// registry, or is skipped. Live panels that existed before the call and
// matched no entry are disposed. The returned slice replaces the live set;
// skipped holds the ids of entries that could not be matched or created.
//
// A persisted type tag must resolve through the registry by id. There is
// deliberately no instantiate-every-factory fallback for renamed tags; an
// unresolvable tag is logged and reported as data loss.
func Apply(reg *tool.Registry, rec Record, live []*tool.Panel) (result []*tool.Panel, skipped []string) {
	matched := make(map[*tool.Panel]bool, len(live))
	result = make([]*tool.Panel, len(live))
	copy(result, live)

	for _, entry := range rec.Panels {
		reused, created, err := applyEntry(reg, entry, result, matched)
		if err != nil {
			log.Printf("layout: skipping entry %q: %v", entry.Id, err)
			skipped = append(skipped, entry.Id)
			continue
		}
		if reused != nil {
			matched[reused] = true
		}
		if created != nil {
			result = append(result, created)
			matched[created] = true
		}
	}

	kept := result[:0]
	for _, p := range result {
		if matched[p] {
			kept = append(kept, p)
			continue
		}
		p.Dispose()
	}
	return kept, skipped
}

// applyEntry matches one snapshot against the unmatched live panels, falling
// back to creation. Panics from a tool's ImportSettings or a factory are
// turned into errors so one bad entry can't abort the rest of the record.
// Matches are reported back rather than marked here so a panic mid-restore
// leaves the entry fully skipped.
func applyEntry(reg *tool.Registry, entry Snapshot, live []*tool.Panel, matched map[*tool.Panel]bool) (reused, created *tool.Panel, err error) {
	defer func() {
		if r := recover(); r != nil {
			reused, created = nil, nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if p := findMatch(entry, live, matched); p != nil {
		restore(entry, p)
		return p, nil, nil
	}

	regn, ok := reg.Find(entry.TypeTag)
	if !ok {
		return nil, nil, fmt.Errorf("type tag %q not registered", entry.TypeTag)
	}
	p, err := regn.New(entry.Position.X, entry.Position.Y)
	if err != nil {
		return nil, nil, fmt.Errorf("factory %q: %w", entry.TypeTag, err)
	}
	if p == nil {
		return nil, nil, fmt.Errorf("factory %q produced no panel", entry.TypeTag)
	}
	restore(entry, p)
	return nil, p, nil
}

// findMatch searches the unmatched live panels by id, then title, then type
// tag. First hit wins.
func findMatch(entry Snapshot, live []*tool.Panel, matched map[*tool.Panel]bool) *tool.Panel {
	for _, p := range live {
		if !matched[p] && p.Id == entry.Id {
			return p
		}
	}
	for _, p := range live {
		if !matched[p] && entry.Title != "" && p.Title == entry.Title {
			return p
		}
	}
	for _, p := range live {
		if !matched[p] && p.TypeTag == entry.TypeTag {
			return p
		}
	}
	return nil
}
