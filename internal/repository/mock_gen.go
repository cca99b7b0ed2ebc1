// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./structure.go -destination=../mocks/mock_structure_repository.go -package=mocks StructureRepositoryIface
//go:generate mockgen -source=./role.go -destination=../mocks/mock_role_repository.go -package=mocks RoleRepositoryIface
//go:generate mockgen -source=./relation.go -destination=../mocks/mock_relation_repository.go -package=mocks RelationRepositoryIface
//go:generate mockgen -source=./work_task.go -destination=../mocks/mock_work_task_repository.go -package=mocks WorkTaskRepositoryIface
//go:generate mockgen -source=./meeting.go -destination=../mocks/mock_meeting_repository.go -package=mocks MeetingRepositoryIface
