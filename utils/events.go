//
// Copyright 2017 Rackspace
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package utils

import (
	"sync"
)

type Event interface {
	Type() string
	Target() interface{}
}

//go:generate mockgen -source=events.go -destination=mock_events.go -package=utils

type EventConsumer interface {
	HandleEvent(evt Event) error
}

type EventSource interface {
	RegisterEventConsumer(consumer EventConsumer)
	DeregisterEventConsumer(consumer EventConsumer)
}

// EventConsumerRegistry is safe for concurrent use. The zero value is ready to use.
type EventConsumerRegistry struct {
	mu        sync.RWMutex
	consumers []EventConsumer
}

func (r *EventConsumerRegistry) RegisterEventConsumer(consumer EventConsumer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.contains(consumer) {
		return
	}

	r.consumers = append(r.consumers, consumer)
}

func (r *EventConsumerRegistry) DeregisterEventConsumer(consumer EventConsumer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.contains(consumer) {
		return
	}

	// copy rather than filter in place since EmitEvent may be iterating the old slice
	trimmed := make([]EventConsumer, 0, len(r.consumers)-1)
	for _, c := range r.consumers {
		if c != consumer {
			trimmed = append(trimmed, c)
		}
	}

	r.consumers = trimmed
}

func (r *EventConsumerRegistry) contains(consumer EventConsumer) bool {
	for _, c := range r.consumers {
		if c == consumer {
			return true
		}
	}
	return false
}

// EmitEvent delivers evt to each consumer in registration order, stopping at the first consumer error.
func (r *EventConsumerRegistry) EmitEvent(evt Event) error {
	r.mu.RLock()
	consumers := r.consumers
	r.mu.RUnlock()

	for _, c := range consumers {
		if err := c.HandleEvent(evt); err != nil {
			return err
		}
	}

	return nil
}

type BasicEvent struct {
	eventType string
	target    interface{}
}

func (evt *BasicEvent) Type() string {
	return evt.eventType
}

func (evt *BasicEvent) Target() interface{} {
	return evt.target
}

func NewEvent(eventType string, target interface{}) Event {
	return &BasicEvent{
		eventType: eventType,
		target:    target,
	}
}
