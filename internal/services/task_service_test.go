package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/DaveedGangi/taskmanagerBackend/internal/models"
	"github.com/DaveedGangi/taskmanagerBackend/internal/repository"
)

func setupTaskService(t *testing.T) (*TaskService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewTaskService(repository.NewTaskRepository(db)), db
}

func createTaskUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, PasswordHash: "hashedpassword"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestTaskService_CreateDefaultsAndAttribution(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createTaskUser(t, db, "alice")

	task, err := svc.Create(CreateTaskInput{
		Title:     "t1",
		CreatorID: user.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, task.ID)
	require.Equal(t, models.TaskStatusPending, task.Status)
	require.Equal(t, user.ID, task.CreatedBy)
	require.Equal(t, user.ID, task.UserID)
	require.Nil(t, task.UpdatedBy)
}

func TestTaskService_CreateInvalidStatusInsertsNothing(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createTaskUser(t, db, "alice")

	_, err := svc.Create(CreateTaskInput{
		Title:     "t1",
		Status:    models.TaskStatus("bogus"),
		CreatorID: user.ID,
	})
	require.ErrorIs(t, err, ErrInvalidStatus)

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestTaskService_ListReturnsAllTasks(t *testing.T) {
	svc, db := setupTaskService(t)
	alice := createTaskUser(t, db, "alice")
	bob := createTaskUser(t, db, "bob")

	_, err := svc.Create(CreateTaskInput{Title: "from alice", CreatorID: alice.ID})
	require.NoError(t, err)
	_, err = svc.Create(CreateTaskInput{Title: "from bob", CreatorID: bob.ID})
	require.NoError(t, err)

	// No ownership filter: every authenticated user sees the whole board.
	tasks, err := svc.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
}

func TestTaskService_GetNotFound(t *testing.T) {
	svc, _ := setupTaskService(t)

	_, err := svc.Get(9999)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_UpdateSetsAttribution(t *testing.T) {
	svc, db := setupTaskService(t)
	alice := createTaskUser(t, db, "alice")
	bob := createTaskUser(t, db, "bob")

	created, err := svc.Create(CreateTaskInput{Title: "t1", CreatorID: alice.ID})
	require.NoError(t, err)

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	err = svc.Update(created.ID, UpdateTaskInput{
		Title:       "t1 updated",
		Description: "desc",
		DueDate:     &due,
		Status:      models.TaskStatusInProgress,
		Remarks:     "in review",
		ActorID:     bob.ID,
	})
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, "t1 updated", got.Title)
	require.Equal(t, models.TaskStatusInProgress, got.Status)
	require.Equal(t, "in review", got.Remarks)
	require.NotNil(t, got.UpdatedBy)
	require.Equal(t, bob.ID, *got.UpdatedBy)
	// Creation attribution never changes.
	require.Equal(t, alice.ID, got.CreatedBy)
	require.Equal(t, alice.ID, got.UserID)
}

func TestTaskService_UpdateInvalidStatus(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createTaskUser(t, db, "alice")

	created, err := svc.Create(CreateTaskInput{Title: "t1", CreatorID: user.ID})
	require.NoError(t, err)

	err = svc.Update(created.ID, UpdateTaskInput{
		Title:   "t1",
		Status:  models.TaskStatus("bogus"),
		ActorID: user.ID,
	})
	require.ErrorIs(t, err, ErrInvalidStatus)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusPending, got.Status)
}

func TestTaskService_UpdateMissingIDDoesNotCreate(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createTaskUser(t, db, "alice")

	err := svc.Update(9999, UpdateTaskInput{
		Title:   "ghost",
		Status:  models.TaskStatusPending,
		ActorID: user.ID,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestTaskService_DeleteMissingIDLeavesOtherRows(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createTaskUser(t, db, "alice")

	created, err := svc.Create(CreateTaskInput{Title: "keep me", CreatorID: user.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(9999))

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	// Deleting again is still a success.
	require.NoError(t, svc.Delete(created.ID))
}
