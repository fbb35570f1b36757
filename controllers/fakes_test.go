package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopper/models"
)

// memProductRepo is an in-memory catalog preserving insertion order.
type memProductRepo struct {
	products []models.Product
}

func (m *memProductRepo) MaxID(ctx context.Context) (int64, error) {
	var max int64
	for _, p := range m.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max, nil
}

func (m *memProductRepo) Insert(ctx context.Context, p *models.Product) error {
	m.products = append(m.products, *p)
	return nil
}

func (m *memProductRepo) DeleteByID(ctx context.Context, id int64) (int64, error) {
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	out := []models.Product{}
	return append(out, m.products...), nil
}

func (m *memProductRepo) FindByCategory(ctx context.Context, category string, limit int64) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
			if limit > 0 && int64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

// memUserRepo is an in-memory user store keyed by id and email.
type memUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	copied := *u
	m.users[u.ID] = &copied
	return u.ID, nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	cart := make(map[string]int, len(u.CartData))
	for k, v := range u.CartData {
		cart[k] = v
	}
	copied.CartData = cart
	return &copied, nil
}

func (m *memUserRepo) UpdateCart(ctx context.Context, id primitive.ObjectID, cart map[string]int) error {
	u, ok := m.users[id]
	if !ok {
		return nil
	}
	u.CartData = cart
	return nil
}

// MockUserRepository is a testify mock over the user repository, for tests
// asserting on call behavior.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateCart(ctx context.Context, id primitive.ObjectID, cart map[string]int) error {
	args := m.Called(ctx, id, cart)
	return args.Error(0)
}
