package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/akashic-archives/cartographer/internal/adapters/driving/tui/styles"
	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
)

// printer writes command output, styled only when the writer is a terminal.
type printer struct {
	w      io.Writer
	styles *styles.Styles
}

func newPrinter(w io.Writer) *printer {
	s := styles.PlainStyles()
	if isTerminal(w) {
		s = styles.DefaultStyles()
	}
	return &printer{w: w, styles: s}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *printer) header(title string) {
	p.println("")
	p.println(p.styles.Title.Render("=== " + title + " ==="))
}

func (p *printer) section(title string) {
	p.println("")
	p.println(p.styles.Section.Render(title + ":"))
}

func (p *printer) renderDomains(domains []domain.DomainEntry) {
	if len(domains) == 0 {
		p.println("No knowledge domains found.")
		return
	}
	p.println("Available Knowledge Domains:")
	for i, d := range domains {
		p.printf("  [%d] %s\n", i+1, p.styles.Entity.Render(d.Name))
	}
}

func (p *printer) renderTopicIDs(ids []string) {
	if len(ids) == 0 {
		p.println("No topics found in storage.")
		return
	}
	for _, id := range ids {
		p.printf("  %s\n", id)
	}
	p.printf("\nTotal: %d topics\n", len(ids))
}

func (p *printer) renderEntity(e domain.Entity) {
	p.printf("  • %s (%s)\n", p.styles.Entity.Render(e.Name), e.Type)
	if e.Description != "" {
		p.printf("    - %s\n", p.styles.Muted.Render(e.Description))
	}
}

// renderRelationship prints an edge by entity name. Edges whose endpoints
// are not known entities are skipped.
func (p *printer) renderRelationship(r domain.Relationship, snap *domain.Snapshot) {
	src, ok := snap.EntityByID(r.Source)
	if !ok {
		return
	}
	tgt, ok := snap.EntityByID(r.Target)
	if !ok {
		return
	}
	p.printf("    ↳ %s --[%s]→ %s\n",
		p.styles.Entity.Render(src.Name), p.styles.Link.Render(r.Type), p.styles.Entity.Render(tgt.Name))
}

func (p *printer) renderClusters(clusters []domain.Cluster) {
	for _, c := range clusters {
		p.printf("  ✦ Cluster: %s is connected to %d entities.\n", p.styles.Entity.Render(c.Entity.Name), c.Count)
	}
}

func (p *printer) renderSource(s domain.Source) {
	p.printf("  - %s [%s]\n", s.Title, s.Credibility)
	p.printf("    %s\n", p.styles.Muted.Render(s.URL))
}

// renderSnapshot prints the full explore view of a topic.
func (p *printer) renderSnapshot(topicID string, snap *domain.Snapshot, clusters []domain.Cluster) {
	p.header("Knowledge Domain: " + topicID)

	p.section("Entities")
	for _, e := range snap.Entities {
		p.renderEntity(e)
	}

	p.section("Relationships")
	for _, r := range snap.Relationships {
		p.renderRelationship(r, snap)
	}

	p.section("Concept Clusters")
	p.renderClusters(clusters)

	p.section("Sources")
	for _, s := range snap.Sources {
		p.renderSource(s)
	}

	if len(snap.Media) > 0 {
		p.section("Multimedia")
		for _, m := range snap.Media {
			p.printf("  - %s: %s\n", m.Type, p.styles.Muted.Render(m.URL))
		}
	}
}

func (p *printer) renderConnection(conn *domain.Connection, ok bool) {
	if !ok || conn == nil || conn.Entity == nil {
		p.println("No analytics available.")
		return
	}
	p.printf("Most connected entity: %s (%d connections)\n", p.styles.Entity.Render(conn.Entity.Name), conn.Count)
}

func (p *printer) renderRecommendations(recs []domain.Entity) {
	if len(recs) == 0 {
		p.println("No recommendations found.")
		return
	}
	for _, e := range recs {
		p.printf("Recommended: %s (%s)\n", p.styles.Entity.Render(e.Name), e.Type)
	}
}

func (p *printer) renderMerge(topicIDs []string, result *domain.MergeResult) {
	p.println(p.styles.Success.Render(fmt.Sprintf("Merged domains [%s] into '%s'", strings.Join(topicIDs, ", "), result.TopicID)))
	p.printf("  %d entities, %d relationships, %d sources, %d media\n",
		len(result.Snapshot.Entities), len(result.Snapshot.Relationships),
		len(result.Snapshot.Sources), len(result.Snapshot.Media))
	if result.Indexed {
		p.printf("  Added '%s' to the domain index.\n", result.TopicID)
	}
}

func (p *printer) renderExport(topicID string, format domain.ExportFormat, key domain.DocumentKey) {
	p.println(p.styles.Success.Render(fmt.Sprintf("Exported %s as %s.", topicID, strings.ToUpper(format.String()))))
	p.printf("  Written to %s\n", key)
}

func (p *printer) renderError(err error) {
	p.println(p.styles.Error.Render("Error: " + err.Error()))
}

func renderChange(p *printer, ev driven.ChangeEvent) {
	name := ev.TopicID
	if name == "" {
		name = ev.Key.String()
	}
	if ev.Removed {
		fmt.Fprintf(p.w, "Removed: %s\n", name)
		return
	}
	fmt.Fprintf(p.w, "Changed: %s\n", name)
}
