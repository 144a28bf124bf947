package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	connMocks "github.com/binay-tripathy/CareerTree/internal/connection/mocks"
	models "github.com/binay-tripathy/CareerTree/internal/connection/model"
	"github.com/binay-tripathy/CareerTree/internal/connection/repository"
	userMocks "github.com/binay-tripathy/CareerTree/internal/user/mocks"
	userModels "github.com/binay-tripathy/CareerTree/internal/user/model"
	userRepository "github.com/binay-tripathy/CareerTree/internal/user/repository"
	appErrors "github.com/binay-tripathy/CareerTree/pkg/errors"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

func newTestUsecase(t *testing.T) (*ConnectionUsecase, *connMocks.MockConnectionRepository, *userMocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := connMocks.NewMockConnectionRepository(ctrl)
	mockUsers := userMocks.NewMockUserRepository(ctrl)
	uc := NewConnectionUsecase(mockRepo, mockUsers, logger.Logger{})
	return uc, mockRepo, mockUsers
}

func TestConnectionUsecase_SendRequest(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	bobUser := &userModels.User{ID: bob, FirstName: "Bob", LastName: "Baker", Email: "bob@example.com"}

	t.Run("happy path - request created", func(t *testing.T) {
		uc, mockRepo, mockUsers := newTestUsecase(t)

		mockUsers.EXPECT().GetUserByID(gomock.Any(), bob).Return(bobUser, nil)
		g := mockRepo.EXPECT()
		g.GetConnection(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), bob, alice).Return(nil, nil)
		g.CreateRequest(gomock.Any(), gomock.Any()).Return(nil)

		err := uc.SendRequest(context.Background(), alice, bob)
		require.NoError(t, err)
	})

	t.Run("sad path - self request", func(t *testing.T) {
		uc, _, _ := newTestUsecase(t)

		err := uc.SendRequest(context.Background(), alice, alice)
		assert.Equal(t, appErrors.ErrInvalidTarget, err)
	})

	t.Run("sad path - target does not exist", func(t *testing.T) {
		uc, _, mockUsers := newTestUsecase(t)

		mockUsers.EXPECT().GetUserByID(gomock.Any(), bob).Return(nil, userRepository.ErrUserNotFound)

		err := uc.SendRequest(context.Background(), alice, bob)
		assert.Equal(t, appErrors.ErrUserNotFound, err)
	})

	t.Run("sad path - target lookup failure is not a not-found", func(t *testing.T) {
		uc, _, mockUsers := newTestUsecase(t)

		mockUsers.EXPECT().GetUserByID(gomock.Any(), bob).Return(nil, errors.New("connection refused"))

		err := uc.SendRequest(context.Background(), alice, bob)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})

	t.Run("sad path - already connected", func(t *testing.T) {
		uc, mockRepo, mockUsers := newTestUsecase(t)

		lo, hi := models.OrderPair(alice, bob)
		mockUsers.EXPECT().GetUserByID(gomock.Any(), bob).Return(bobUser, nil)
		mockRepo.EXPECT().GetConnection(gomock.Any(), alice, bob).
			Return(&models.Connection{UserLoID: lo, UserHiID: hi}, nil)

		err := uc.SendRequest(context.Background(), alice, bob)
		assert.Equal(t, appErrors.ErrAlreadyConnected, err)
	})

	t.Run("sad path - duplicate request", func(t *testing.T) {
		uc, mockRepo, mockUsers := newTestUsecase(t)

		mockUsers.EXPECT().GetUserByID(gomock.Any(), bob).Return(bobUser, nil)
		g := mockRepo.EXPECT()
		g.GetConnection(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), alice, bob).
			Return(&models.ConnectionRequest{RequesterID: alice, RecipientID: bob, SentAt: time.Now()}, nil)

		err := uc.SendRequest(context.Background(), alice, bob)
		assert.Equal(t, appErrors.ErrDuplicateRequest, err)
	})

	t.Run("sad path - reciprocal request pending", func(t *testing.T) {
		uc, mockRepo, mockUsers := newTestUsecase(t)

		mockUsers.EXPECT().GetUserByID(gomock.Any(), bob).Return(bobUser, nil)
		g := mockRepo.EXPECT()
		g.GetConnection(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), bob, alice).
			Return(&models.ConnectionRequest{RequesterID: bob, RecipientID: alice, SentAt: time.Now()}, nil)

		err := uc.SendRequest(context.Background(), alice, bob)
		assert.Equal(t, appErrors.ErrReciprocalRequest, err)
	})

	t.Run("sad path - lost race surfaces same taxonomy", func(t *testing.T) {
		uc, mockRepo, mockUsers := newTestUsecase(t)

		mockUsers.EXPECT().GetUserByID(gomock.Any(), bob).Return(bobUser, nil)
		g := mockRepo.EXPECT()
		g.GetConnection(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), bob, alice).Return(nil, nil)
		g.CreateRequest(gomock.Any(), gomock.Any()).Return(repository.ErrRequestExists)

		err := uc.SendRequest(context.Background(), alice, bob)
		assert.Equal(t, appErrors.ErrDuplicateRequest, err)
	})
}

func TestConnectionUsecase_Accept(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("happy path - pending request accepted", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		lo, hi := models.OrderPair(alice, bob)
		mockRepo.EXPECT().AcceptRequest(gomock.Any(), alice, bob).
			Return(&models.Connection{UserLoID: lo, UserHiID: hi, ConnectedAt: time.Now()}, nil)

		// Bob accepts Alice's request.
		err := uc.Accept(context.Background(), bob, alice)
		require.NoError(t, err)
	})

	t.Run("sad path - no pending request", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().AcceptRequest(gomock.Any(), alice, bob).
			Return(nil, repository.ErrRequestNotFound)

		err := uc.Accept(context.Background(), bob, alice)
		assert.Equal(t, appErrors.ErrNoSuchRequest, err)
	})
}

func TestConnectionUsecase_RejectAndCancel(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("reject removes the pending edge", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().DeleteRequest(gomock.Any(), alice, bob).Return(true, nil)

		err := uc.Reject(context.Background(), bob, alice)
		require.NoError(t, err)
	})

	t.Run("reject on absent edge errors", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().DeleteRequest(gomock.Any(), alice, bob).Return(false, nil)

		err := uc.Reject(context.Background(), bob, alice)
		assert.Equal(t, appErrors.ErrNoSuchRequest, err)
	})

	t.Run("cancel removes the same directed edge", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().DeleteRequest(gomock.Any(), alice, bob).Return(true, nil)

		err := uc.Cancel(context.Background(), alice, bob)
		require.NoError(t, err)
	})

	t.Run("cancel on absent edge errors", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().DeleteRequest(gomock.Any(), alice, bob).Return(false, nil)

		err := uc.Cancel(context.Background(), alice, bob)
		assert.Equal(t, appErrors.ErrNoSuchRequest, err)
	})
}

func TestConnectionUsecase_Remove(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("happy path - connection removed", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().DeleteConnection(gomock.Any(), alice, bob).Return(true, nil)

		err := uc.Remove(context.Background(), alice, bob)
		require.NoError(t, err)
	})

	t.Run("sad path - pair was not connected", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().DeleteConnection(gomock.Any(), alice, bob).Return(false, nil)

		err := uc.Remove(context.Background(), alice, bob)
		assert.Equal(t, appErrors.ErrNotConnected, err)
	})
}

func TestConnectionUsecase_Status(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	lo, hi := models.OrderPair(alice, bob)

	t.Run("none", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetConnection(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), bob, alice).Return(nil, nil)

		status, err := uc.Status(context.Background(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, models.StatusNone, status)
	})

	t.Run("sent from the requester's view", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetConnection(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), alice, bob).
			Return(&models.ConnectionRequest{RequesterID: alice, RecipientID: bob}, nil)
		g.GetRequest(gomock.Any(), bob, alice).Return(nil, nil)

		status, err := uc.Status(context.Background(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, models.StatusSent, status)
	})

	t.Run("received from the recipient's view", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetConnection(gomock.Any(), bob, alice).Return(nil, nil)
		g.GetRequest(gomock.Any(), bob, alice).Return(nil, nil)
		g.GetRequest(gomock.Any(), alice, bob).
			Return(&models.ConnectionRequest{RequesterID: alice, RecipientID: bob}, nil)

		status, err := uc.Status(context.Background(), bob, alice)
		require.NoError(t, err)
		assert.Equal(t, models.StatusReceived, status)
	})

	t.Run("connected", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetConnection(gomock.Any(), alice, bob).
			Return(&models.Connection{UserLoID: lo, UserHiID: hi}, nil)
		g.GetRequest(gomock.Any(), alice, bob).Return(nil, nil)
		g.GetRequest(gomock.Any(), bob, alice).Return(nil, nil)

		status, err := uc.Status(context.Background(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConnected, status)
	})

	t.Run("connected wins when a stray pending edge coexists", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.GetConnection(gomock.Any(), alice, bob).
			Return(&models.Connection{UserLoID: lo, UserHiID: hi}, nil)
		g.GetRequest(gomock.Any(), alice, bob).
			Return(&models.ConnectionRequest{RequesterID: alice, RecipientID: bob}, nil)
		g.GetRequest(gomock.Any(), bob, alice).Return(nil, nil)

		status, err := uc.Status(context.Background(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConnected, status)
	})
}

func TestConnectionUsecase_Overview(t *testing.T) {
	me := uuid.New()
	connected := uuid.New()
	pendingOut := uuid.New()
	pendingIn := uuid.New()

	uc, mockRepo, mockUsers := newTestUsecase(t)

	sentAt := time.Now().Add(-time.Hour)
	g := mockRepo.EXPECT()
	g.ListConnectionUserIDs(gomock.Any(), me).Return([]uuid.UUID{connected}, nil)
	g.ListSentRequests(gomock.Any(), me).Return([]*models.ConnectionRequest{{
		RequesterID: me,
		RecipientID: pendingOut,
		Recipient:   &userModels.User{ID: pendingOut, FirstName: "Pat"},
		SentAt:      sentAt,
	}}, nil)
	g.ListReceivedRequests(gomock.Any(), me).Return([]*models.ConnectionRequest{{
		RequesterID: pendingIn,
		RecipientID: me,
		Requester:   &userModels.User{ID: pendingIn, FirstName: "Rae"},
		SentAt:      sentAt,
	}}, nil)
	mockUsers.EXPECT().GetUsersByIDs(gomock.Any(), []uuid.UUID{connected}).
		Return([]*userModels.User{{ID: connected, FirstName: "Cam"}}, nil)

	overview, err := uc.Overview(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, overview.Connections, 1)
	require.Len(t, overview.SentRequests, 1)
	require.Len(t, overview.ReceivedRequests, 1)
	assert.Equal(t, connected, overview.Connections[0].ID)
	assert.Equal(t, pendingOut, overview.SentRequests[0].User.ID)
	assert.Equal(t, pendingIn, overview.ReceivedRequests[0].User.ID)
	assert.Equal(t, sentAt, overview.SentRequests[0].SentAt)
}

func TestConnectionUsecase_InternalErrorsAreOpaque(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	uc, mockRepo, _ := newTestUsecase(t)
	mockRepo.EXPECT().DeleteConnection(gomock.Any(), alice, bob).
		Return(false, errors.New("db down"))

	err := uc.Remove(context.Background(), alice, bob)
	require.Error(t, err)
	assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
}
