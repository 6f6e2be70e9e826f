package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
)

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	FindByIDsFunc   func(ctx context.Context, ids []uint) (map[uint]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return map[uint]*user.User{}, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hash, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(hash, password string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, password)
	}
	return nil
}

type mockIssuer struct {
	GenerateFunc       func(actor user.Actor) (*TokenPair, error)
	GenerateAccessFunc func(actor user.Actor) (string, error)
	VerifyRefreshFunc  func(tokenString string) (user.Actor, error)
}

func (m *mockIssuer) Generate(actor user.Actor) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(actor)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockIssuer) GenerateAccess(actor user.Actor) (string, error) {
	if m.GenerateAccessFunc != nil {
		return m.GenerateAccessFunc(actor)
	}
	return "access", nil
}

func (m *mockIssuer) VerifyRefresh(tokenString string) (user.Actor, error) {
	if m.VerifyRefreshFunc != nil {
		return m.VerifyRefreshFunc(tokenString)
	}
	return user.Actor{}, nil
}
