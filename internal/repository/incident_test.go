package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/sar_coordination_system/internal/models"
	"github.com/shenikar/sar_coordination_system/internal/service"
)

// newTestIncidentStore создает хранилище с клиентом Redis, указывающим
// в никуда: кэш в этих тестах не участвует, его сбои игнорируются.
func newTestIncidentStore(t *testing.T) *IncidentStore {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6399"})
	t.Cleanup(func() { _ = client.Close() })
	return NewIncidentStore(client, time.Minute).(*IncidentStore)
}

func testStoredIncident(id string) *models.Incident {
	return &models.Incident{
		ID:          id,
		MissingName: "سارة القحطاني",
		Status:      models.StatusSearching,
	}
}

func TestReplaceBatch_StoresCopies(t *testing.T) {
	// Подготовка
	store := newTestIncidentStore(t)
	ctx := context.Background()
	original := testStoredIncident("INC-2026-1000")

	// Действие
	require.NoError(t, store.ReplaceBatch(ctx, []*models.Incident{original}))
	original.IsSecurityRouted = true

	// Проверки: мутация записи вызывающего кода не видна хранилищу
	stored, err := store.GetByID(ctx, "INC-2026-1000")
	require.NoError(t, err)
	assert.False(t, stored.IsSecurityRouted)
}

func TestListIncidents_ReturnsCopies(t *testing.T) {
	// Подготовка
	store := newTestIncidentStore(t)
	ctx := context.Background()
	require.NoError(t, store.ReplaceBatch(ctx, []*models.Incident{testStoredIncident("INC-2026-1000")}))

	// Действие
	listed, err := store.ListIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	listed[0].IsSecurityRouted = true

	// Проверки: мутация выданной копии не видна при повторном чтении
	relisted, err := store.ListIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, relisted, 1)
	assert.False(t, relisted[0].IsSecurityRouted)
}

func TestSetSecurityRouted_Success(t *testing.T) {
	// Подготовка
	store := newTestIncidentStore(t)
	ctx := context.Background()
	require.NoError(t, store.ReplaceBatch(ctx, []*models.Incident{testStoredIncident("INC-2026-1000")}))

	// Действие
	routed, err := store.SetSecurityRouted(ctx, "INC-2026-1000")

	// Проверки
	require.NoError(t, err)
	assert.True(t, routed.IsSecurityRouted)

	// Возвращенная запись - копия: откат ее флага хранилища не касается
	routed.IsSecurityRouted = false
	stored, err := store.GetByID(ctx, "INC-2026-1000")
	require.NoError(t, err)
	assert.True(t, stored.IsSecurityRouted)
}

func TestSetSecurityRouted_NotFound(t *testing.T) {
	// Подготовка
	store := newTestIncidentStore(t)
	ctx := context.Background()

	// Действие
	_, err := store.SetSecurityRouted(ctx, "INC-2026-9999")

	// Проверки
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

// Маршрутизация и чтение партии должны быть безопасны при параллельном
// выполнении: читатели никогда не разделяют изменяемую запись с писателем.
func TestSetSecurityRouted_ConcurrentWithList(t *testing.T) {
	// Подготовка
	store := newTestIncidentStore(t)
	ctx := context.Background()

	batch := make([]*models.Incident, 0, 8)
	for i := 0; i < 8; i++ {
		batch = append(batch, testStoredIncident(fmt.Sprintf("INC-2026-%d", 1000+i)))
	}
	require.NoError(t, store.ReplaceBatch(ctx, batch))

	// Действие: писатели маршрутизируют, читатели одновременно листают партию
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		id := fmt.Sprintf("INC-2026-%d", 1000+i)
		go func() {
			defer wg.Done()
			_, err := store.SetSecurityRouted(ctx, id)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			listed, err := store.ListIncidents(ctx)
			assert.NoError(t, err)
			for _, incident := range listed {
				_ = incident.IsSecurityRouted
			}
		}()
	}
	wg.Wait()

	// Проверки: все записи помечены
	listed, err := store.ListIncidents(ctx)
	require.NoError(t, err)
	for _, incident := range listed {
		assert.True(t, incident.IsSecurityRouted)
	}
}
