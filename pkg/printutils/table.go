package printutils

import (
	"fmt"
	"time"

	"github.com/pet2cattle/kubeai-doctor/pkg/data"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/duration"
	"k8s.io/cli-runtime/pkg/printers"
)

// Rows keep the order the API server returned them in.

func (p *Printer) nodesTable(nodes []data.NodeView) error {
	table := &v1.Table{
		ColumnDefinitions: []v1.TableColumnDefinition{
			{Name: "NODE NAME", Type: "string"},
			{Name: "STATUS", Type: "string"},
			{Name: "HEALTH", Type: "string"},
		},
	}

	for _, node := range nodes {
		status := "Ready"
		if !node.Ready {
			status = "NotReady"
		}
		table.Rows = append(table.Rows, v1.TableRow{
			Cells: []interface{}{node.Name, status, string(node.Health)},
		})
	}

	return p.printTable(table)
}

func (p *Printer) podsTable(pods []data.PodView) error {
	table := &v1.Table{
		ColumnDefinitions: []v1.TableColumnDefinition{
			{Name: "NAMESPACE", Type: "string"},
			{Name: "POD NAME", Type: "string"},
			{Name: "STATUS", Type: "string"},
			{Name: "HEALTH", Type: "string"},
		},
	}

	for _, pod := range pods {
		table.Rows = append(table.Rows, v1.TableRow{
			Cells: []interface{}{pod.Namespace, pod.Name, pod.Phase, string(pod.Health)},
		})
	}

	return p.printTable(table)
}

func (p *Printer) servicesTable(services []data.ServiceView) error {
	table := &v1.Table{
		ColumnDefinitions: []v1.TableColumnDefinition{
			{Name: "NAMESPACE", Type: "string"},
			{Name: "SERVICE NAME", Type: "string"},
			{Name: "TYPE", Type: "string"},
		},
	}

	for _, svc := range services {
		table.Rows = append(table.Rows, v1.TableRow{
			Cells: []interface{}{svc.Namespace, svc.Name, svc.Type},
		})
	}

	return p.printTable(table)
}

func (p *Printer) eventsTable(events []data.EventView) error {
	table := &v1.Table{
		ColumnDefinitions: []v1.TableColumnDefinition{
			{Name: "LAST SEEN", Type: "string"},
			{Name: "NAMESPACE", Type: "string"},
			{Name: "TYPE", Type: "string"},
			{Name: "REASON", Type: "string"},
			{Name: "OBJECT", Type: "string"},
			{Name: "MESSAGE", Type: "string"},
		},
	}

	for _, event := range events {
		lastSeen := "<unknown>"
		if !event.LastSeen.IsZero() {
			lastSeen = duration.ShortHumanDuration(time.Since(event.LastSeen))
		}

		// Truncate message if too long
		message := event.Message
		if len(message) > 80 {
			message = message[:77] + "..."
		}

		table.Rows = append(table.Rows, v1.TableRow{
			Cells: []interface{}{
				lastSeen,
				event.Namespace,
				event.Type,
				event.Reason,
				event.Object,
				message,
			},
		})
	}

	return p.printTable(table)
}

func (p *Printer) printTable(table *v1.Table) error {
	printer := printers.NewTablePrinter(printers.PrintOptions{NoHeaders: p.NoHeaders})
	if err := printer.PrintObj(table, p.Out); err != nil {
		return fmt.Errorf("failed to print table: %w", err)
	}
	return nil
}
