package resolver

import (
	"context"
	"fmt"

	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/nlp"
)

type employeeResolver struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEmployeeResolver(uowFactory unitofwork.RepositoryFactory) EmployeeResolver {
	return &employeeResolver{uowFactory: uowFactory}
}

func (r *employeeResolver) Resolve(ctx context.Context, raw string, q *nlp.ParsedQuery) (Result, error) {
	if !q.HasIdentity() {
		return Failure("Please name the employee you want details for."), nil
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	user, err := findQueriedUser(ctx, uow, q)
	if err != nil {
		return Result{}, err
	}
	if user == nil {
		return Failure(fmt.Sprintf("Could not find an employee matching %q.", employeeRef(q))), nil
	}

	msg := fmt.Sprintf("%s (code %s) is a %s in %s. Email: %s. Status: %s.",
		user.FullName, user.Code, user.Designation, user.Department, user.Email, user.Status)
	return Result{Success: true, Message: msg, Data: user}, nil
}
