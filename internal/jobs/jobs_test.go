package jobs_test

import (
	"testing"
	"time"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"officeit/internal/catalog"
	"officeit/internal/jobs"
	"officeit/internal/models"
	"officeit/internal/repositories"
)

func TestMain(m *testing.M) {
	zap.ReplaceGlobals(zap.NewNop())
	goleak.VerifyTestMain(m)
}

type recorder struct {
	keys []string
}

func (r *recorder) Publish(routingKey string, payload interface{}) error {
	r.keys = append(r.keys, routingKey)
	return nil
}

// overflowRepo reports a featured count the repositories themselves refuse
// to produce.
type overflowRepo struct {
	repositories.ProductRepository
	featured int
}

func (r overflowRepo) CountFeatured() (int, error) { return r.featured, nil }

func TestFeaturedAudit_Run(t *testing.T) {
	products := repositories.NewMockProductRepository()
	require.NoError(t, products.Create(&models.Product{Name: "a", Featured: true}))

	events := &recorder{}
	n, err := jobs.NewFeaturedAudit(products, events).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, events.keys)

	n, err = jobs.NewFeaturedAudit(overflowRepo{featured: catalog.MaxFeatured + 1}, events).Run()
	require.NoError(t, err)
	assert.Equal(t, catalog.MaxFeatured+1, n)
	assert.Equal(t, []string{jobs.EventFeaturedOverflow}, events.keys)
}

func TestSchedule(t *testing.T) {
	audit := jobs.NewFeaturedAudit(repositories.NewMockProductRepository(), nil)

	_, err := jobs.Schedule("not a schedule", audit)
	assert.Error(t, err)

	sched, err := jobs.Schedule("@every 1s", audit)
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 1)

	select {
	case <-sched.Stop().Done():
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestLogEvent(t *testing.T) {
	assert.NoError(t, jobs.LogEvent(amqp.Delivery{RoutingKey: "product.created", Body: []byte(`{"id":"p1"}`)}))
	assert.Error(t, jobs.LogEvent(amqp.Delivery{RoutingKey: "product.created", Body: []byte(`not json`)}))
}

