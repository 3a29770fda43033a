package users

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kotrecon/result-pattern/fault"
	"github.com/Kotrecon/result-pattern/outcome"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	svc := NewService(NewStore(), zerolog.Nop())
	require.True(t, svc.Create(NewUser{Name: "Ada", Email: "ada@example.com"}).Succeeded())

	inactive := svc.Create(NewUser{Name: "Grace", Email: "grace@example.com"})
	require.True(t, inactive.Succeeded())
	require.True(t, svc.Deactivate(inactive.Value().ID).Succeeded())

	return svc
}

func TestCreateRequiresEmail(t *testing.T) {
	svc := newTestService(t)

	res := svc.Create(NewUser{Name: "Linus", Email: ""})
	require.True(t, res.Failed())
	require.Len(t, res.Errors(), 1)

	err := res.FirstError()
	assert.Equal(t, fault.StatusValidation, err.StatusCode())

	details, ok := outcome.DetailsOf(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Email field is required"}, details)
}

func TestCreateReportsEveryViolation(t *testing.T) {
	svc := newTestService(t)

	res := svc.Create(NewUser{Email: "not-an-email"})
	require.Len(t, res.Errors(), 1)

	details, ok := outcome.DetailsOf(res.FirstError())
	require.True(t, ok)
	assert.Equal(t, []string{"Email must be a valid address", "Name field is required"}, details)
}

func TestGet(t *testing.T) {
	svc := newTestService(t)

	found := svc.Get(1)
	require.True(t, found.Succeeded())
	assert.Equal(t, User{ID: 1, Name: "Ada", Email: "ada@example.com", Active: true}, found.Value())

	missing := svc.Get(999)
	require.True(t, missing.Failed())
	require.Len(t, missing.Errors(), 1)
	assert.Equal(t, fault.StatusNotFound, missing.FirstError().StatusCode())
	assert.Equal(t, "User with id 999 was not found", missing.FirstError().Message())
}

func TestGetActive(t *testing.T) {
	svc := newTestService(t)

	assert.True(t, svc.GetActive(1).Succeeded())

	res := svc.GetActive(2)
	require.True(t, res.Failed())
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, fault.StatusForbidden, res.FirstError().StatusCode())
	assert.Equal(t, User{}, res.Value())

	_, ok := res.Get()
	assert.False(t, ok)

	missing := svc.GetActive(999)
	assert.Equal(t, fault.CodeNotFound, missing.FirstError().Code())
}

func TestRegisterConflict(t *testing.T) {
	svc := newTestService(t)

	dup := svc.Create(NewUser{Name: "Ada Again", Email: " ADA@example.com "})
	require.True(t, dup.Failed())
	require.Len(t, dup.Errors(), 1)
	assert.Equal(t, fault.StatusConflict, dup.FirstError().StatusCode())

	fresh := svc.Create(NewUser{Name: "Ken", Email: "ken@example.com"})
	require.True(t, fresh.Succeeded())
	assert.Equal(t, 3, fresh.Value().ID)
	assert.True(t, fresh.Value().Active)
}

func TestCount(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, 2, svc.Count())

	svc.Create(NewUser{Name: "Ada", Email: "ada@example.com"})
	assert.Equal(t, 2, svc.Count())

	svc.Create(NewUser{Name: "Ken", Email: "ken@example.com"})
	assert.Equal(t, 3, svc.Count())
}

func TestDeactivate(t *testing.T) {
	svc := newTestService(t)

	assert.True(t, svc.Deactivate(1).Succeeded())
	assert.False(t, svc.Get(1).Value().Active)

	again := svc.Deactivate(1)
	require.True(t, again.Failed())
	assert.Equal(t, fault.CodeBusinessRule, again.FirstError().Code())

	missing := svc.Deactivate(999)
	assert.Equal(t, fault.CodeNotFound, missing.FirstError().Code())
}

func TestStore(t *testing.T) {
	store := NewStore()

	u, err := store.Insert(NewUser{Name: " Ada ", Email: "Ada@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, User{ID: 1, Name: "Ada", Email: "ada@example.com", Active: true}, u)
	assert.Equal(t, 1, store.Count())

	_, err = store.Insert(NewUser{Name: "Other", Email: "ADA@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.True(t, Error.Has(err))
	assert.Contains(t, err.Error(), "already exists", "cache cause is kept")
	assert.Equal(t, 1, store.Count())

	err = store.Update(User{ID: 42})
	assert.ErrorIs(t, err, ErrUnknownUser)
	assert.True(t, Error.Has(err))

	_, found := store.Find(42)
	assert.False(t, found)
}
