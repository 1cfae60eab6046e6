// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./salescard.go -destination=../mocks/mock_salescard_repository.go -package=mocks SalesCardRepositoryIface
//go:generate mockgen -source=./approval.go -destination=../mocks/mock_approval_repository.go -package=mocks ApprovalNotificationRepositoryIface
//go:generate mockgen -source=./task.go -destination=../mocks/mock_task_repository.go -package=mocks TaskRepositoryIface
//go:generate mockgen -source=./followup_iteration.go -destination=../mocks/mock_followup_iteration_repository.go -package=mocks FollowupIterationRepositoryIface
//go:generate mockgen -source=./notification.go -destination=../mocks/mock_notification_repository.go -package=mocks NotificationRepositoryIface
//go:generate mockgen -source=./permission.go -destination=../mocks/mock_module_permission_repository.go -package=mocks ModulePermissionRepositoryIface
