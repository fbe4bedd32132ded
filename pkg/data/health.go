package data

// Health is the classification given to a node or pod
type Health string

const (
	Healthy   Health = "Healthy"
	Unhealthy Health = "Unhealthy"
)

// IsHealthy reports whether h is Healthy
func (h Health) IsHealthy() bool {
	return h == Healthy
}

// Summary contains aggregated health counts for one check
type Summary struct {
	Healthy   int `json:"healthy" yaml:"healthy"`
	Unhealthy int `json:"unhealthy" yaml:"unhealthy"`
}

func (s *Summary) Add(h Health) {
	if h.IsHealthy() {
		s.Healthy++
	} else {
		s.Unhealthy++
	}
}

func (s Summary) Total() int {
	return s.Healthy + s.Unhealthy
}

// SummarizeNodes counts healthy and unhealthy nodes
func SummarizeNodes(nodes ...NodeView) Summary {
	summary := Summary{}
	for _, node := range nodes {
		summary.Add(node.Health)
	}
	return summary
}

// SummarizePods counts healthy and unhealthy pods
func SummarizePods(pods ...PodView) Summary {
	summary := Summary{}
	for _, pod := range pods {
		summary.Add(pod.Health)
	}
	return summary
}
