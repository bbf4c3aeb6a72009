package service

import (
	"sync"
	"testing"

	"login-gate/internal/model"

	"github.com/stretchr/testify/require"
)

func newTestGate() *CredentialGate {
	return NewCredentialGate(model.ReferenceCredentials{Identity: "admin", Secret: "s3cret"})
}

func TestEvaluate(t *testing.T) {
	g := newTestGate()

	cases := []struct {
		name    string
		attempt model.LoginAttempt
		want    Outcome
	}{
		{"exact match", model.LoginAttempt{Identity: "admin", Secret: "s3cret"}, Privileged},
		{"identity case differs", model.LoginAttempt{Identity: "Admin", Secret: "s3cret"}, Standard},
		{"secret case differs", model.LoginAttempt{Identity: "admin", Secret: "S3CRET"}, Standard},
		{"empty secret", model.LoginAttempt{Identity: "admin", Secret: ""}, Standard},
		{"both absent", model.LoginAttempt{}, Standard},
		{"trailing space", model.LoginAttempt{Identity: "admin", Secret: "s3cret "}, Standard},
		{"leading space identity", model.LoginAttempt{Identity: " admin", Secret: "s3cret"}, Standard},
		{"substring", model.LoginAttempt{Identity: "adm", Secret: "s3c"}, Standard},
		{"superstring", model.LoginAttempt{Identity: "admin1", Secret: "s3cret1"}, Standard},
		{"swapped", model.LoginAttempt{Identity: "s3cret", Secret: "admin"}, Standard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, g.Evaluate(tc.attempt))
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	g := newTestGate()
	ok := model.LoginAttempt{Identity: "admin", Secret: "s3cret"}
	bad := model.LoginAttempt{Identity: "admin", Secret: "nope"}
	for i := 0; i < 5; i++ {
		require.Equal(t, Privileged, g.Evaluate(ok))
		require.Equal(t, Standard, g.Evaluate(bad))
	}
}

func TestEvaluateUnconfigured(t *testing.T) {
	g := NewCredentialGate(model.ReferenceCredentials{})
	require.False(t, g.Configured())
	require.Equal(t, Standard, g.Evaluate(model.LoginAttempt{}))
	require.Equal(t, Standard, g.Evaluate(model.LoginAttempt{Identity: "admin", Secret: "s3cret"}))

	g = NewCredentialGate(model.ReferenceCredentials{Identity: "admin"})
	require.False(t, g.Configured())
	require.Equal(t, Standard, g.Evaluate(model.LoginAttempt{Identity: "admin"}))

	require.True(t, newTestGate().Configured())
}

func TestEvaluateConcurrent(t *testing.T) {
	g := newTestGate()
	var wg sync.WaitGroup
	results := make([]Outcome, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = g.Evaluate(model.LoginAttempt{Identity: "admin", Secret: "s3cret"})
				return
			}
			results[i] = g.Evaluate(model.LoginAttempt{Identity: "guest", Secret: "s3cret"})
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		if i%2 == 0 {
			require.Equal(t, Privileged, r)
		} else {
			require.Equal(t, Standard, r)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "privileged", Privileged.String())
	require.Equal(t, "standard", Standard.String())
}
