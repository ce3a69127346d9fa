package tests

// Mock generation example for handler tests.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name BoardService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename board_service_mock.go --with-expecter
//go:generate mockery --name ScheduleService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename schedule_service_mock.go --with-expecter
