package service_test

import (
	"context"
	"testing"

	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/mocks"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPermissionAssign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("upserts the full grant", func(t *testing.T) {
		perms := mocks.NewMockModulePermissionRepositoryIface(ctrl)

		var stored *model.ModulePermission
		perms.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, grant *model.ModulePermission) error {
				stored = grant
				return nil
			})

		userID := uuid.New()
		svc := service.NewPermissionService(perms)
		grant, err := svc.Assign(context.Background(), service.AssignPermissionsInput{
			UserID:        userID,
			ModuleID:      4,
			PermissionIDs: []int64{model.PermissionRead, model.PermissionCreate, model.PermissionUpdate},
		})

		require.NoError(t, err)
		assert.Equal(t, userID, stored.UserID)
		assert.Equal(t, 4, stored.ModuleID)
		assert.Equal(t, pq.Int64Array{model.PermissionRead, model.PermissionCreate, model.PermissionUpdate}, stored.PermissionIDs)
		assert.Equal(t, stored, grant)
	})

	t.Run("grant without read is refused", func(t *testing.T) {
		perms := mocks.NewMockModulePermissionRepositoryIface(ctrl)

		svc := service.NewPermissionService(perms)
		_, err := svc.Assign(context.Background(), service.AssignPermissionsInput{
			UserID:        uuid.New(),
			ModuleID:      4,
			PermissionIDs: []int64{model.PermissionCreate, model.PermissionDelete},
		})

		assert.ErrorIs(t, err, domain.ErrReadPermissionRequired)
	})
}

func TestPermissionListForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the user's grants", func(t *testing.T) {
		perms := mocks.NewMockModulePermissionRepositoryIface(ctrl)

		userID := uuid.New()
		perms.EXPECT().FindAllByUser(gomock.Any(), userID).
			Return([]*model.ModulePermission{
				{UserID: userID, ModuleID: 4, PermissionIDs: pq.Int64Array{model.PermissionRead}},
			}, nil)

		svc := service.NewPermissionService(perms)
		grants, err := svc.ListForUser(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, grants, 1)
		assert.Equal(t, 4, grants[0].ModuleID)
	})

	t.Run("no grants maps to not found", func(t *testing.T) {
		perms := mocks.NewMockModulePermissionRepositoryIface(ctrl)

		userID := uuid.New()
		perms.EXPECT().FindAllByUser(gomock.Any(), userID).
			Return(nil, nil)

		svc := service.NewPermissionService(perms)
		_, err := svc.ListForUser(context.Background(), userID)

		assert.ErrorIs(t, err, domain.ErrPermissionNotFound)
	})
}

func TestPermissionUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("replaces the set on an existing grant", func(t *testing.T) {
		perms := mocks.NewMockModulePermissionRepositoryIface(ctrl)

		userID := uuid.New()
		perms.EXPECT().UpdatePermissions(gomock.Any(), userID, 5, pq.Int64Array{model.PermissionRead, model.PermissionUpdate}).
			Return(nil)

		svc := service.NewPermissionService(perms)
		err := svc.Update(context.Background(), userID, 5, []int64{model.PermissionRead, model.PermissionUpdate})

		assert.NoError(t, err)
	})

	t.Run("missing grant propagates not found", func(t *testing.T) {
		perms := mocks.NewMockModulePermissionRepositoryIface(ctrl)

		userID := uuid.New()
		perms.EXPECT().UpdatePermissions(gomock.Any(), userID, 5, gomock.Any()).
			Return(domain.ErrPermissionNotFound)

		svc := service.NewPermissionService(perms)
		err := svc.Update(context.Background(), userID, 5, []int64{model.PermissionRead})

		assert.ErrorIs(t, err, domain.ErrPermissionNotFound)
	})

	t.Run("dropping read is refused", func(t *testing.T) {
		perms := mocks.NewMockModulePermissionRepositoryIface(ctrl)

		svc := service.NewPermissionService(perms)
		err := svc.Update(context.Background(), uuid.New(), 5, []int64{model.PermissionDelete})

		assert.ErrorIs(t, err, domain.ErrReadPermissionRequired)
	})
}
