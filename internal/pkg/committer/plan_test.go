package committer

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCommitPlan_Add(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(spanner.Delete("room_rates", spanner.Key{"r-1"}))
	plan.Add(nil) // nil mutations are ignored
	plan.Add(spanner.Delete("room_rates", spanner.Key{"r-2"}))

	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 2, plan.Count())
	assert.Len(t, plan.Mutations(), 2)
}

func TestCommitPlan_AddMultiple(t *testing.T) {
	plan := NewPlan()

	plan.AddMultiple([]*spanner.Mutation{
		spanner.Delete("room_rates", spanner.Key{"r-1"}),
		nil,
		spanner.Delete("outbox_events", spanner.Key{"e-1"}),
	})

	assert.Equal(t, 2, plan.Count())
}

func TestIsAlreadyExists(t *testing.T) {
	assert.True(t, IsAlreadyExists(status.Error(codes.AlreadyExists, "row exists")))
	assert.False(t, IsAlreadyExists(status.Error(codes.NotFound, "missing")))
	assert.False(t, IsAlreadyExists(nil))
}
