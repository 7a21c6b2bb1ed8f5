package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/mitalikawde11/LightBnB/internal/domain"
	"github.com/mitalikawde11/LightBnB/internal/schema"
)

const userAlias = "u"

type Users struct {
	exec *Executor
}

func NewUsers(exec *Executor) *Users {
	return &Users{exec: exec}
}

func (r *Users) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "find_user_by_email", sq.Eq{schema.Col(userAlias, "email"): email})
}

func (r *Users) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, "find_user_by_id", sq.Eq{schema.Col(userAlias, "id"): id})
}

func (r *Users) Create(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	if err := checkInput(u); err != nil {
		return nil, err
	}

	q, err := compile(psql.Insert(schema.Users.Ident()).
		Columns("name", "email", "password").
		Values(u.Name, u.Email, u.Password).
		Suffix("RETURNING id, name, email, password"))
	if err != nil {
		return nil, err
	}

	var out domain.User
	if err := r.exec.QueryOne(ctx, "create_user", q, func(row pgx.Row) error {
		return scanUser(row, &out)
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Users) findOne(ctx context.Context, op string, cond sq.Sqlizer) (*domain.User, error) {
	q, err := compile(psql.Select(schema.Users.Cols(userAlias)...).
		From(schema.Users.As(userAlias)).
		Where(cond).
		Limit(1))
	if err != nil {
		return nil, err
	}

	var out domain.User
	if err := r.exec.QueryOne(ctx, op, q, func(row pgx.Row) error {
		return scanUser(row, &out)
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

func scanUser(row pgx.Row, u *domain.User) error {
	return row.Scan(&u.ID, &u.Name, &u.Email, &u.Password)
}
