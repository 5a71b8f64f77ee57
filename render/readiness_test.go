package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Milaston7/ARRENDAKI-sub001/config"
)

func TestReadiness(t *testing.T) {
	t.Run("flips false to true exactly once after the delay", func(t *testing.T) {
		gate := newReadiness(20 * time.Millisecond)
		defer gate.Stop()

		assert.False(t, gate.Ready())
		assert.Eventually(t, gate.Ready, time.Second, 5*time.Millisecond)
		// stays ready; a second flip has nothing to observe
		assert.True(t, gate.Ready())
	})

	t.Run("zero delay is ready immediately", func(t *testing.T) {
		gate := newReadiness(0)
		assert.True(t, gate.Ready())
	})

	t.Run("stop cancels a pending flip", func(t *testing.T) {
		gate := newReadiness(30 * time.Millisecond)
		gate.Stop()
		time.Sleep(60 * time.Millisecond)
		assert.False(t, gate.Ready())
	})

	t.Run("stop after firing keeps the gate ready", func(t *testing.T) {
		gate := newReadiness(5 * time.Millisecond)
		assert.Eventually(t, gate.Ready, time.Second, time.Millisecond)
		gate.Stop()
		assert.True(t, gate.Ready())
	})

	t.Run("renderer exposes the gate through Ready and Close", func(t *testing.T) {
		cfg := config.DefaultRender()
		cfg.WarmupDelay = 25 * time.Millisecond
		r := New(cfg)
		assert.False(t, r.Ready())
		r.Close()
		time.Sleep(50 * time.Millisecond)
		assert.False(t, r.Ready(), "closed renderer must never become ready")
	})
}
