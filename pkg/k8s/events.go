package k8s

import (
	"context"
	"fmt"

	"github.com/pet2cattle/kubeai-doctor/pkg/data"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// GetEvents lists events in namespace, or in all namespaces when namespace is empty.
// Events are returned in the order the API server sent them.
func GetEvents(ctx context.Context, clientset kubernetes.Interface, namespace string) ([]data.EventView, error) {
	events, err := clientset.CoreV1().Events(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	eventList := make([]data.EventView, 0, len(events.Items))
	for _, event := range events.Items {
		message := event.Message
		if message == "" {
			message = data.NoMessage
		}

		// Use EventTime if LastTimestamp is not set
		lastSeen := event.LastTimestamp.Time
		if lastSeen.IsZero() && !event.EventTime.Time.IsZero() {
			lastSeen = event.EventTime.Time
		}

		object := ""
		if event.InvolvedObject.Kind != "" || event.InvolvedObject.Name != "" {
			object = event.InvolvedObject.Kind + "/" + event.InvolvedObject.Name
		}

		eventList = append(eventList, data.EventView{
			Name:      event.Name,
			Namespace: event.Namespace,
			Type:      event.Type,
			Reason:    event.Reason,
			Object:    object,
			Message:   message,
			LastSeen:  lastSeen,
		})
	}

	return eventList, nil
}
