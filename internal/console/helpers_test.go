package console

import (
	"context"
	"sync"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/lifecycle"
)

type notifications struct {
	mu       sync.Mutex
	success  []string
	warnings []string
	errors   []string
}

func (n *notifications) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.success = append(n.success, message)
}

func (n *notifications) Warning(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warnings = append(n.warnings, message)
}

func (n *notifications) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *notifications) errorList() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}

type scriptedConfirmer struct {
	mu      sync.Mutex
	answer  bool
	prompts []string
}

func (c *scriptedConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = append(c.prompts, prompt)
	return c.answer, nil
}

func (c *scriptedConfirmer) asked() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}

func sampleOrder(id, status string) adminclient.Order {
	p := lifecycle.OrderPresentation(status)
	return adminclient.Order{
		ID:          id,
		OrderNumber: "ORD-" + id,
		Status:      status,
		StatusLabel: p.Label,
		StatusColor: p.Color,
	}
}

func sampleShipment(id uint, status string) adminclient.Shipment {
	p := lifecycle.ShipmentPresentation(status)
	return adminclient.Shipment{
		ID:          id,
		OrderNumber: "ORD-S",
		Status:      status,
		StatusLabel: p.Label,
		StatusColor: p.Color,
	}
}
