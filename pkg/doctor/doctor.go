package doctor

import (
	"context"

	"github.com/pet2cattle/kubeai-doctor/pkg/data"
	"github.com/pet2cattle/kubeai-doctor/pkg/k8s"
	"github.com/pet2cattle/kubeai-doctor/pkg/printutils"
	"k8s.io/client-go/kubernetes"
)

// ClientFactory opens a connection to the cluster. It is called at most once per Run.
type ClientFactory func() (kubernetes.Interface, error)

// ProgressFunc wraps a blocking cluster call, typically with a spinner
type ProgressFunc func(message string, fn func() error) error

// Options are the inputs of a single invocation
type Options struct {
	// Check is the raw resource kind, e.g. "pods"
	Check string
	// Namespace restricts pods, services and events. Empty means all namespaces.
	Namespace string
}

type Doctor struct {
	NewClient ClientFactory
	Printer   *printutils.Printer
	Progress  ProgressFunc
}

func New(newClient ClientFactory, printer *printutils.Printer) *Doctor {
	return &Doctor{NewClient: newClient, Printer: printer}
}

// Run validates the resource kind, connects to the cluster and runs exactly
// one check. An invalid resource kind fails before any connection is made.
func (d *Doctor) Run(ctx context.Context, opts Options) error {
	resource, err := ParseResource(opts.Check)
	if err != nil {
		return err
	}

	namespace := opts.Namespace
	if !resource.Namespaced() {
		namespace = ""
	}

	d.Printer.Info(banner(resource))

	clientset, err := d.NewClient()
	if err != nil {
		return err
	}

	switch resource {
	case Nodes:
		return d.checkNodes(ctx, clientset)
	case Pods:
		return d.checkPods(ctx, clientset, namespace)
	case Services:
		return d.checkServices(ctx, clientset, namespace)
	default:
		return d.checkEvents(ctx, clientset, namespace)
	}
}

func banner(r Resource) string {
	if r == Events {
		return "Fetching recent Kubernetes events..."
	}
	return "Running health check on Kubernetes " + r.String() + "..."
}

func (d *Doctor) list(message string, fn func() error) error {
	if d.Progress == nil {
		return fn()
	}
	return d.Progress(message, fn)
}

func (d *Doctor) checkNodes(ctx context.Context, clientset kubernetes.Interface) error {
	var nodes []data.NodeView
	err := d.list("listing nodes", func() (err error) {
		nodes, err = k8s.GetNodes(ctx, clientset)
		return err
	})
	if err != nil {
		return err
	}

	return d.Printer.PrintNodes(nodes, data.SummarizeNodes(nodes...))
}

func (d *Doctor) checkPods(ctx context.Context, clientset kubernetes.Interface, namespace string) error {
	var pods []data.PodView
	err := d.list("listing pods", func() (err error) {
		pods, err = k8s.GetPods(ctx, clientset, namespace)
		return err
	})
	if err != nil {
		return err
	}

	return d.Printer.PrintPods(pods, data.SummarizePods(pods...))
}

func (d *Doctor) checkServices(ctx context.Context, clientset kubernetes.Interface, namespace string) error {
	var services []data.ServiceView
	err := d.list("listing services", func() (err error) {
		services, err = k8s.GetServices(ctx, clientset, namespace)
		return err
	})
	if err != nil {
		return err
	}

	return d.Printer.PrintServices(services)
}

func (d *Doctor) checkEvents(ctx context.Context, clientset kubernetes.Interface, namespace string) error {
	var events []data.EventView
	err := d.list("listing events", func() (err error) {
		events, err = k8s.GetEvents(ctx, clientset, namespace)
		return err
	})
	if err != nil {
		return err
	}

	return d.Printer.PrintEvents(events)
}
