package repositories

// ErpDbRepository carries every query against the ERP database. Methods are
// grouped per concern in the *_repository.go files of this package.
type ErpDbRepository struct{}

func NewErpDbRepository() *ErpDbRepository {
	return &ErpDbRepository{}
}
