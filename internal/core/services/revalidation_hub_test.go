package services_test

import (
	"testing"

	"github.com/SscSPs/sales_crm_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func drain(ch <-chan string) []string {
	var out []string
	for {
		select {
		case p, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, p)
		default:
			return out
		}
	}
}

func TestRevalidationHub_FansOut(t *testing.T) {
	hub := services.NewRevalidationHub()
	a, cancelA := hub.Subscribe()
	b, cancelB := hub.Subscribe()
	defer cancelA()
	defer cancelB()

	hub.Publish("/sales-funnel", "/dashboard")

	assert.Equal(t, []string{"/sales-funnel", "/dashboard"}, drain(a))
	assert.Equal(t, []string{"/sales-funnel", "/dashboard"}, drain(b))
}

func TestRevalidationHub_DropsWhenFull(t *testing.T) {
	hub := services.NewRevalidationHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		hub.Publish("/stock")
	}

	assert.Len(t, drain(ch), 32)
}

func TestRevalidationHub_CancelClosesChannel(t *testing.T) {
	hub := services.NewRevalidationHub()
	ch, cancel := hub.Subscribe()

	cancel()
	cancel()
	hub.Publish("/expenses")

	_, ok := <-ch
	assert.False(t, ok)
}
