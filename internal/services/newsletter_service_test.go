package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officeit/internal/database"
	"officeit/internal/repositories"
	"officeit/internal/services"
)

func TestNewsletterService_Subscribe(t *testing.T) {
	db, err := database.OpenMemory(uuid.New().String())
	require.NoError(t, err)
	events := &recordingPublisher{}
	service := services.NewNewsletterService(repositories.NewGORMSubscriberRepository(db), events)

	sub, err := service.Subscribe("  Reader@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email)

	_, err = service.Subscribe("READER@example.com")
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	_, err = service.Subscribe("not-an-email")
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Please enter a valid email address", verr.Fields["email"])

	_, err = service.Subscribe("")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email address is required", verr.Fields["email"])

	all, err := service.Subscribers()
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, []string{services.EventNewsletterJoined}, events.Keys())
}
