package usecases

import (
	"github.com/rentalworks/erp-backend/repositories"
	"github.com/rentalworks/erp-backend/repositories/clock"
	"github.com/rentalworks/erp-backend/usecases/executor_factory"
)

type Usecases struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         *repositories.ErpDbRepository
	clock              clock.Clock
	auditModuleId      string
}

type Option func(*Usecases)

// WithAuditModuleId sets the scope tag stamped on every audit entry this
// deployment writes on its own behalf.
func WithAuditModuleId(moduleId string) Option {
	return func(u *Usecases) {
		u.auditModuleId = moduleId
	}
}

func WithClock(c clock.Clock) Option {
	return func(u *Usecases) {
		u.clock = c
	}
}

func NewUsecases(executorGetter repositories.ExecutorGetter, options ...Option) Usecases {
	factory := executor_factory.NewDbExecutorFactory(executorGetter)
	usecases := Usecases{
		executorFactory:    factory,
		transactionFactory: factory,
		repository:         repositories.NewErpDbRepository(),
		clock:              clock.New(),
		auditModuleId:      "rental-erp",
	}
	for _, option := range options {
		option(&usecases)
	}
	return usecases
}

func (u Usecases) NewAuditUsecase() AuditUsecase {
	return AuditUsecase{
		executorFactory: u.executorFactory,
		repository:      u.repository,
		clock:           u.clock,
	}
}

func (u Usecases) NewUsernameUsecase() UsernameUsecase {
	return UsernameUsecase{
		executorFactory: u.executorFactory,
		userRepository:  u.repository,
	}
}

func (u Usecases) NewUserUseCase() *UserUseCase {
	return &UserUseCase{
		executorFactory:    u.executorFactory,
		transactionFactory: u.transactionFactory,
		userRepository:     u.repository,
		auditRepository:    u.repository,
		usernameUsecase:    u.NewUsernameUsecase(),
		clock:              u.clock,
		auditModuleId:      u.auditModuleId,
	}
}
