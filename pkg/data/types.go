package data

import (
	"time"
)

const (
	// UnknownPhase is displayed for pods that report no phase
	UnknownPhase = "Unknown"
	// NoMessage is displayed for events that carry no message
	NoMessage = "No message"
)

type NodeView struct {
	Name   string `json:"name" yaml:"name"`
	Ready  bool   `json:"ready" yaml:"ready"`
	Health Health `json:"health" yaml:"health"`
}

type PodView struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Phase     string `json:"phase" yaml:"phase"`
	Health    Health `json:"health" yaml:"health"`
}

type ServiceView struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Type      string `json:"type" yaml:"type"`
}

type EventView struct {
	Name      string    `json:"name" yaml:"name"`
	Namespace string    `json:"namespace" yaml:"namespace"`
	Type      string    `json:"type" yaml:"type"`
	Reason    string    `json:"reason" yaml:"reason"`
	Object    string    `json:"object" yaml:"object"`
	Message   string    `json:"message" yaml:"message"`
	LastSeen  time.Time `json:"lastSeen" yaml:"lastSeen"`
}

// NewNodeView classifies a node: healthy only when its Ready condition is "True"
func NewNodeView(name string, ready bool) NodeView {
	health := Unhealthy
	if ready {
		health = Healthy
	}
	return NodeView{Name: name, Ready: ready, Health: health}
}

// NewPodView classifies a pod: healthy only when it is Running. An empty
// phase is reported as UnknownPhase.
func NewPodView(name, namespace, phase string) PodView {
	if phase == "" {
		phase = UnknownPhase
	}
	health := Unhealthy
	if phase == "Running" {
		health = Healthy
	}
	return PodView{Name: name, Namespace: namespace, Phase: phase, Health: health}
}
