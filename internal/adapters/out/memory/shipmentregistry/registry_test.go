package shipmentregistry_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"shipping/internal/adapters/out/memory/shipmentregistry"
	"shipping/internal/core/domain/model/event"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/observer"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	creationTime = int64(1652712855468)
	millisPerDay = int64(24 * 60 * 60 * 1000)
)

func newRegistry() *shipmentregistry.Registry {
	return shipmentregistry.NewRegistry(observer.NewHub())
}

func createShipment(t *testing.T, registry *shipmentregistry.Registry, id string, category shipment.Category, windowMillis int64) *shipment.Shipment {
	t.Helper()
	s, err := registry.Create(context.Background(), id, category, creationTime, creationTime+windowMillis)
	require.NoError(t, err)
	return s
}

func TestRegistry_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("should store a new shipment in the created status", func(t *testing.T) {
		registry := newRegistry()

		s, err := registry.Create(ctx, "s10000", shipment.CategoryBulk, creationTime, creationTime+7*millisPerDay)

		require.NoError(t, err)
		assert.Equal(t, "s10000", s.ID())
		assert.Equal(t, shipment.StatusCreated, s.Status())
		assert.False(t, s.IsAbnormal())
		require.Len(t, s.History(), 1)
	})

	t.Run("should mark a violated delivery window abnormal but still store", func(t *testing.T) {
		registry := newRegistry()

		s, err := registry.Create(ctx, "s10001", shipment.CategoryExpress, creationTime, creationTime+7*millisPerDay)

		require.NoError(t, err)
		assert.True(t, s.IsAbnormal())
		assert.Equal(t, services.ExpressWindowViolation, s.AbnormalityReason())

		found, err := registry.Find(ctx, "s10001")
		require.NoError(t, err)
		assert.True(t, found.IsAbnormal())
	})

	t.Run("should reject a duplicate id and leave the original untouched", func(t *testing.T) {
		registry := newRegistry()
		createShipment(t, registry, "s10000", shipment.CategoryStandard, 7*millisPerDay)

		_, err := registry.Create(ctx, "s10000", shipment.CategoryExpress, creationTime, creationTime+millisPerDay)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

		found, err := registry.Find(ctx, "s10000")
		require.NoError(t, err)
		assert.Equal(t, shipment.CategoryStandard, found.Category())
	})

	t.Run("should reject an invalid shipment", func(t *testing.T) {
		registry := newRegistry()

		_, err := registry.Create(ctx, "", shipment.CategoryStandard, creationTime, creationTime+millisPerDay)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRegistry_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("should fail for an unknown id without creating it", func(t *testing.T) {
		registry := newRegistry()

		_, _, err := registry.Apply(ctx, event.ShipmentEvent{
			Type:       event.TypeShipped,
			ShipmentID: "s99999",
			Timestamp:  creationTime,
		})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = registry.Find(ctx, "s99999")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject unknown event types without touching the shipment", func(t *testing.T) {
		registry := newRegistry()
		createShipment(t, registry, "s10000", shipment.CategoryStandard, 7*millisPerDay)

		_, _, err := registry.Apply(ctx, event.ShipmentEvent{
			Type:       event.Type("Teleported"),
			ShipmentID: "s10000",
			Timestamp:  creationTime + 1,
		})

		require.ErrorIs(t, err, services.ErrUnknownEventType)

		found, err := registry.Find(ctx, "s10000")
		require.NoError(t, err)
		assert.Len(t, found.History(), 1)
		assert.Equal(t, shipment.StatusCreated, found.Status())
	})

	t.Run("should apply a location event with its side effects", func(t *testing.T) {
		registry := newRegistry()
		createShipment(t, registry, "s10002", shipment.CategoryStandard, 7*millisPerDay)

		update, snapshot, err := registry.Apply(ctx, event.ShipmentEvent{
			Type:       event.TypeLocation,
			ShipmentID: "s10002",
			Timestamp:  creationTime + 1000,
			Payload:    "Los Angeles CA",
		})

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusCreated, update.PreviousStatus())
		assert.Equal(t, services.StatusInTransit, update.NewStatus())
		assert.Equal(t, services.StatusInTransit, snapshot.Status())
		assert.Equal(t, "Los Angeles CA", snapshot.CurrentLocation())
		require.Len(t, snapshot.Notes(), 1)
		assert.Equal(t, "Shipment location updated to Los Angeles CA", snapshot.Notes()[0])
		assert.Len(t, snapshot.History(), 2)
	})

	t.Run("should apply a noteadded event preserving the status", func(t *testing.T) {
		registry := newRegistry()
		createShipment(t, registry, "s10000", shipment.CategoryStandard, 7*millisPerDay)

		update, snapshot, err := registry.Apply(ctx, event.ShipmentEvent{
			Type:       event.TypeNoteAdded,
			ShipmentID: "s10000",
			Timestamp:  creationTime + 1000,
			Payload:    "customer called",
		})

		require.NoError(t, err)
		assert.Equal(t, shipment.StatusCreated, update.NewStatus())
		assert.Equal(t, shipment.StatusCreated, snapshot.Status())
		assert.Equal(t, []string{"customer called"}, snapshot.Notes())
		assert.Len(t, snapshot.History(), 2)
	})

	t.Run("should keep the status equal to the last history entry across a sequence", func(t *testing.T) {
		registry := newRegistry()
		createShipment(t, registry, "s10000", shipment.CategoryStandard, 7*millisPerDay)

		for i, eventType := range []event.Type{event.TypeShipped, event.TypeLocation, event.TypeDelayed, event.TypeDelivered} {
			_, snapshot, err := registry.Apply(ctx, event.ShipmentEvent{
				Type:       eventType,
				ShipmentID: "s10000",
				Timestamp:  creationTime + int64(i+1),
			})

			require.NoError(t, err)
			assert.Equal(t, snapshot.LastUpdate().NewStatus(), snapshot.Status())
		}

		found, err := registry.Find(ctx, "s10000")
		require.NoError(t, err)
		assert.Equal(t, services.StatusDelivered, found.Status())
		assert.Len(t, found.History(), 5)
	})

	t.Run("should revise the estimate without drift effects when compliant", func(t *testing.T) {
		registry := newRegistry()
		createShipment(t, registry, "s10000", shipment.CategoryExpress, 3*millisPerDay)

		_, snapshot, err := registry.Apply(ctx, event.ShipmentEvent{
			Type:              event.TypeShipped,
			ShipmentID:        "s10000",
			Timestamp:         creationTime + 2*millisPerDay,
			EstimatedDelivery: creationTime + 2*millisPerDay,
			HasEstimate:       true,
		})

		require.NoError(t, err)
		assert.Equal(t, creationTime+2*millisPerDay, snapshot.ExpectedDeliveryTimestamp())
		assert.False(t, snapshot.IsAbnormal())
		assert.Empty(t, snapshot.Notes())
		assert.Len(t, snapshot.History(), 2)
	})

	t.Run("should mark drift when a revised estimate breaks the window", func(t *testing.T) {
		registry := newRegistry()
		createShipment(t, registry, "s10000", shipment.CategoryExpress, 2*millisPerDay)
		revised := creationTime + 5*millisPerDay

		_, snapshot, err := registry.Apply(ctx, event.ShipmentEvent{
			Type:              event.TypeShipped,
			ShipmentID:        "s10000",
			Timestamp:         revised,
			EstimatedDelivery: revised,
			HasEstimate:       true,
		})

		require.NoError(t, err)
		assert.Equal(t, revised, snapshot.ExpectedDeliveryTimestamp())
		assert.True(t, snapshot.IsAbnormal())
		assert.Equal(t, services.ExpressDriftReason, snapshot.AbnormalityReason())
		assert.Equal(t, []string{services.ExpressDriftNote}, snapshot.Notes())

		history := snapshot.History()
		require.Len(t, history, 3)
		assert.Equal(t, services.StatusShipped, snapshot.Status())
		assert.Equal(t, services.StatusShipped, history[2].PreviousStatus())
		assert.Equal(t, services.StatusShipped, history[2].NewStatus())
	})

	t.Run("should mark a bulk shipment drifting too fast", func(t *testing.T) {
		registry := newRegistry()
		createShipment(t, registry, "s10000", shipment.CategoryBulk, 7*millisPerDay)
		revised := creationTime + 2*millisPerDay

		_, snapshot, err := registry.Apply(ctx, event.ShipmentEvent{
			Type:              event.TypeDelayed,
			ShipmentID:        "s10000",
			Timestamp:         revised,
			EstimatedDelivery: revised,
			HasEstimate:       true,
		})

		require.NoError(t, err)
		assert.True(t, snapshot.IsAbnormal())
		assert.Equal(t, services.BulkDriftReason, snapshot.AbnormalityReason())
		assert.Equal(t, services.StatusDelayed, snapshot.Status())
	})

	t.Run("should keep a creation-time abnormality after a compliant estimate", func(t *testing.T) {
		registry := newRegistry()
		createShipment(t, registry, "s10000", shipment.CategoryExpress, 7*millisPerDay)

		_, snapshot, err := registry.Apply(ctx, event.ShipmentEvent{
			Type:              event.TypeShipped,
			ShipmentID:        "s10000",
			Timestamp:         creationTime + millisPerDay,
			EstimatedDelivery: creationTime + millisPerDay,
			HasEstimate:       true,
		})

		require.NoError(t, err)
		assert.True(t, snapshot.IsAbnormal())
		assert.Equal(t, services.ExpressWindowViolation, snapshot.AbnormalityReason())
	})
}

func TestRegistry_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("should fail for an unknown id", func(t *testing.T) {
		registry := newRegistry()

		_, err := registry.Find(ctx, "s99999")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should return an isolated snapshot", func(t *testing.T) {
		registry := newRegistry()
		createShipment(t, registry, "s10000", shipment.CategoryStandard, 7*millisPerDay)

		snapshot, err := registry.Find(ctx, "s10000")
		require.NoError(t, err)
		snapshot.AddNote("tampered")
		snapshot.MarkAbnormal("tampered")

		fresh, err := registry.Find(ctx, "s10000")
		require.NoError(t, err)
		assert.Empty(t, fresh.Notes())
		assert.False(t, fresh.IsAbnormal())
	})
}

func TestRegistry_Notifications(t *testing.T) {
	ctx := context.Background()

	t.Run("should notify subscribers once per committed update", func(t *testing.T) {
		hub := observer.NewHub()
		registry := shipmentregistry.NewRegistry(hub)
		_, err := registry.Create(ctx, "s10000", shipment.CategoryStandard, creationTime, creationTime+7*millisPerDay)
		require.NoError(t, err)

		var received []shipment.ShippingUpdate
		hub.Subscribe("s10000", observer.NewFuncSubscriber(func(_ string, update shipment.ShippingUpdate) {
			received = append(received, update)
		}))

		update, _, err := registry.Apply(ctx, event.ShipmentEvent{
			Type:       event.TypeShipped,
			ShipmentID: "s10000",
			Timestamp:  creationTime + 1000,
		})

		require.NoError(t, err)
		require.Len(t, received, 1)
		assert.Equal(t, update, received[0])
	})

	t.Run("should not notify on creation", func(t *testing.T) {
		hub := observer.NewHub()
		registry := shipmentregistry.NewRegistry(hub)

		notified := false
		hub.Subscribe("s10000", observer.NewFuncSubscriber(func(string, shipment.ShippingUpdate) {
			notified = true
		}))

		_, err := registry.Create(ctx, "s10000", shipment.CategoryStandard, creationTime, creationTime+7*millisPerDay)

		require.NoError(t, err)
		assert.False(t, notified)
	})

	t.Run("should stop notifying after unsubscribe", func(t *testing.T) {
		hub := observer.NewHub()
		registry := shipmentregistry.NewRegistry(hub)
		_, err := registry.Create(ctx, "s10000", shipment.CategoryStandard, creationTime, creationTime+7*millisPerDay)
		require.NoError(t, err)

		count := 0
		subscriber := observer.NewFuncSubscriber(func(string, shipment.ShippingUpdate) { count++ })
		hub.Subscribe("s10000", subscriber)

		_, _, err = registry.Apply(ctx, event.ShipmentEvent{
			Type:       event.TypeShipped,
			ShipmentID: "s10000",
			Timestamp:  creationTime + 1,
		})
		require.NoError(t, err)

		hub.Unsubscribe("s10000", subscriber.HandleID())

		_, _, err = registry.Apply(ctx, event.ShipmentEvent{
			Type:       event.TypeDelivered,
			ShipmentID: "s10000",
			Timestamp:  creationTime + 2,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, count)
	})
}

func TestRegistry_Concurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("should not lose updates under concurrent applies to one id", func(t *testing.T) {
		const appliers = 50

		registry := newRegistry()
		createShipment(t, registry, "s10000", shipment.CategoryStandard, 7*millisPerDay)

		var wg sync.WaitGroup
		for i := 0; i < appliers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _, err := registry.Apply(ctx, event.ShipmentEvent{
					Type:       event.TypeNoteAdded,
					ShipmentID: "s10000",
					Timestamp:  creationTime + int64(i),
					Payload:    fmt.Sprintf("note %d", i),
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		found, err := registry.Find(ctx, "s10000")
		require.NoError(t, err)
		assert.Len(t, found.History(), appliers+1)
		assert.Len(t, found.Notes(), appliers)
		assert.Equal(t, found.LastUpdate().NewStatus(), found.Status())
	})

	t.Run("should isolate concurrent work on distinct ids", func(t *testing.T) {
		const shipments = 20

		registry := newRegistry()
		for i := 0; i < shipments; i++ {
			createShipment(t, registry, fmt.Sprintf("s%d", i), shipment.CategoryStandard, 7*millisPerDay)
		}

		var wg sync.WaitGroup
		for i := 0; i < shipments; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				id := fmt.Sprintf("s%d", i)
				_, _, err := registry.Apply(ctx, event.ShipmentEvent{
					Type:       event.TypeShipped,
					ShipmentID: id,
					Timestamp:  creationTime + 1,
				})
				assert.NoError(t, err)
				_, findErr := registry.Find(ctx, id)
				assert.NoError(t, findErr)
			}(i)
		}
		wg.Wait()

		for i := 0; i < shipments; i++ {
			found, err := registry.Find(ctx, fmt.Sprintf("s%d", i))
			require.NoError(t, err)
			assert.Equal(t, services.StatusShipped, found.Status())
			assert.Len(t, found.History(), 2)
		}
	})

	t.Run("should admit each id exactly once under concurrent creates", func(t *testing.T) {
		const attempts = 20

		registry := newRegistry()

		var wg sync.WaitGroup
		errCh := make(chan error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := registry.Create(ctx, "s10000", shipment.CategoryStandard, creationTime, creationTime+7*millisPerDay)
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)

		succeeded := 0
		for err := range errCh {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
			}
		}
		assert.Equal(t, 1, succeeded)
	})
}
