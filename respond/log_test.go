package respond

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/faqit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationLog(t *testing.T) {
	t.Run("assigns id and time", func(t *testing.T) {
		log := NewConversationLog()
		stored := log.Append(core.Interaction{Query: "q", Response: "r"})

		_, err := uuid.Parse(stored.ID)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), stored.At, time.Minute)
		assert.Equal(t, 1, log.Len())
	})

	t.Run("keeps provided id", func(t *testing.T) {
		log := NewConversationLog()
		at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		stored := log.Append(core.Interaction{ID: "fixed", At: at})
		assert.Equal(t, "fixed", stored.ID)
		assert.Equal(t, at, stored.At)
	})

	t.Run("snapshot is a copy in order", func(t *testing.T) {
		log := NewConversationLog()
		topics := []string{"Team"}
		log.Append(core.Interaction{Query: "first", Topics: topics})
		log.Append(core.Interaction{Query: "second"})
		topics[0] = "changed"

		snap := log.Snapshot()
		require.Len(t, snap, 2)
		assert.Equal(t, "first", snap[0].Query)
		assert.Equal(t, "second", snap[1].Query)
		assert.Equal(t, []string{"Team"}, snap[0].Topics)

		snap[0].Query = "mutated"
		assert.Equal(t, "first", log.Snapshot()[0].Query)
	})

	t.Run("concurrent appends", func(t *testing.T) {
		log := NewConversationLog()
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					log.Append(core.Interaction{Query: "q"})
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 800, log.Len())
	})
}
