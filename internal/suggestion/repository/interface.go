package repository

import "context"

// Repository is the backend suggestions API.
type Repository interface {
	List(ctx context.Context, opt ListOptions) (ListResult, error)
	Accept(ctx context.Context, id string) (AcceptResult, error)
	Dismiss(ctx context.Context, id string) error
	Generate(ctx context.Context) (GenerateResult, error)
}
