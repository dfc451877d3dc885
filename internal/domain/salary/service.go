package salary

import "context"

type SalaryService interface {
	List(ctx context.Context, req ListRequest) ([]Line, error)
}
