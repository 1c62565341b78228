package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	identityDomain "github.com/allisson/tenantadmin/internal/identity/domain"
	identityMocks "github.com/allisson/tenantadmin/internal/identity/usecase/mocks"
)

func TestRunWhois(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("resolves credentials", func(t *testing.T) {
		mockUseCase := &identityMocks.MockIdentityUseCase{}
		mockUseCase.On("Whois", ctx, "u1:k1").Return(
			[]identityDomain.Identity{
				{Subject: "alice", Namespace: "alice"},
				{Subject: "alice", Namespace: "shared"},
			}, nil,
		)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunWhois(ctx, mockUseCase, logger, "u1:k1", io)

		require.NoError(t, err)
		require.Equal(t, "subject: alice\nnamespace: alice\nsubject: alice\nnamespace: shared\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("unrecognized credentials", func(t *testing.T) {
		mockUseCase := &identityMocks.MockIdentityUseCase{}
		mockUseCase.On("Whois", ctx, "u9:k9").Return([]identityDomain.Identity{}, nil)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunWhois(ctx, mockUseCase, logger, "u9:k9", io)

		require.NoError(t, err)
		require.Equal(t, "Subject id is not recognized\n", out.String())
		mockUseCase.AssertExpectations(t)
	})
}

func TestRunListNamespace(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("lists identities with subjects", func(t *testing.T) {
		mockUseCase := &identityMocks.MockIdentityUseCase{}
		mockUseCase.On("List", ctx, "shared", 42, false).Return(
			[]identityDomain.Identity{
				{Subject: "alice", Namespace: "shared", UUID: "u1", Key: "k1"},
				{Subject: "bob", Namespace: "shared", UUID: "u2", Key: "k2"},
			}, nil,
		)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunListNamespace(ctx, mockUseCase, logger, "shared", 42, false, false, io)

		require.NoError(t, err)
		require.Equal(t, "u1:k1\talice\nu2:k2\tbob\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("keys only", func(t *testing.T) {
		mockUseCase := &identityMocks.MockIdentityUseCase{}
		mockUseCase.On("List", ctx, "shared", 42, true).Return(
			[]identityDomain.Identity{
				{Subject: "alice", Namespace: "shared", UUID: "u1", Key: "k1"},
			}, nil,
		)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunListNamespace(ctx, mockUseCase, logger, "shared", 42, true, true, io)

		require.NoError(t, err)
		require.Equal(t, "u1:k1\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("empty namespace", func(t *testing.T) {
		mockUseCase := &identityMocks.MockIdentityUseCase{}
		mockUseCase.On("List", ctx, "empty", 42, false).Return([]identityDomain.Identity{}, nil)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunListNamespace(ctx, mockUseCase, logger, "empty", 42, false, false, io)

		require.NoError(t, err)
		require.Equal(t, "no identities found for namespace \"empty\"\n", out.String())
		mockUseCase.AssertExpectations(t)
	})
}
