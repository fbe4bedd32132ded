package printutils

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pet2cattle/kubeai-doctor/pkg/data"
	"gopkg.in/yaml.v3"
)

var (
	infoPrefix    = color.New(color.FgCyan).SprintFunc()
	summaryPrefix = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	green         = color.New(color.FgGreen).SprintFunc()
	red           = color.New(color.FgRed).SprintFunc()
	blue          = color.New(color.FgBlue).SprintFunc()
	magenta       = color.New(color.FgMagenta).SprintFunc()
)

// Printer renders check results to Out in the selected format
type Printer struct {
	Out       io.Writer
	Format    Format
	NoHeaders bool
}

func NewPrinter(out io.Writer, format Format, noHeaders bool) *Printer {
	return &Printer{Out: out, Format: format, NoHeaders: noHeaders}
}

// report is the document emitted for yaml and json output
type report struct {
	Kind    string        `json:"kind" yaml:"kind"`
	Items   interface{}   `json:"items" yaml:"items"`
	Summary *data.Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Info prints a status banner. Structured formats stay machine readable, so
// banners are dropped there.
func (p *Printer) Info(message string) {
	if p.Format.Structured() {
		return
	}
	fmt.Fprintf(p.Out, "%s %s\n", infoPrefix("[INFO]"), message)
}

func (p *Printer) summary(s data.Summary) {
	fmt.Fprintf(p.Out, "\n%s %d healthy, %d unhealthy\n", summaryPrefix("[SUMMARY]"), s.Healthy, s.Unhealthy)
}

func (p *Printer) PrintNodes(nodes []data.NodeView, s data.Summary) error {
	switch p.Format {
	case FormatTable:
		if err := p.nodesTable(nodes); err != nil {
			return err
		}
	case FormatYAML, FormatJSON:
		return p.structured(report{Kind: "NodeList", Items: nodes, Summary: &s})
	default:
		for _, node := range nodes {
			if node.Health.IsHealthy() {
				fmt.Fprintf(p.Out, "✅ Node: %s\n", green(node.Name))
			} else {
				fmt.Fprintf(p.Out, "❌ Node: %s (NotReady)\n", red(node.Name))
			}
		}
	}
	p.summary(s)
	return nil
}

func (p *Printer) PrintPods(pods []data.PodView, s data.Summary) error {
	switch p.Format {
	case FormatTable:
		if err := p.podsTable(pods); err != nil {
			return err
		}
	case FormatYAML, FormatJSON:
		return p.structured(report{Kind: "PodList", Items: pods, Summary: &s})
	default:
		for _, pod := range pods {
			if pod.Health.IsHealthy() {
				fmt.Fprintf(p.Out, "✅ Pod: %s\n", green(pod.Name))
			} else {
				fmt.Fprintf(p.Out, "❌ Pod: %s (Status: %s)\n", red(pod.Name), red(pod.Phase))
			}
		}
	}
	p.summary(s)
	return nil
}

func (p *Printer) PrintServices(services []data.ServiceView) error {
	switch p.Format {
	case FormatTable:
		return p.servicesTable(services)
	case FormatYAML, FormatJSON:
		return p.structured(report{Kind: "ServiceList", Items: services})
	}
	for _, svc := range services {
		fmt.Fprintf(p.Out, "🔹 Service: %s\n", blue(svc.Name))
	}
	return nil
}

func (p *Printer) PrintEvents(events []data.EventView) error {
	switch p.Format {
	case FormatTable:
		return p.eventsTable(events)
	case FormatYAML, FormatJSON:
		return p.structured(report{Kind: "EventList", Items: events})
	}
	for _, event := range events {
		fmt.Fprintf(p.Out, "📢 Event: %s - %s\n", magenta(event.Name), event.Message)
	}
	return nil
}

func (p *Printer) structured(r report) error {
	if p.Format == FormatJSON {
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(p.Out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// PrintError writes an error line to w, normally stderr
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorPrefix("[ERROR]"), err)
}

// DisableColor turns off ANSI colors for every printer
func DisableColor() {
	color.NoColor = true
}
