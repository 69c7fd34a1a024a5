package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/models"
)

type fakeCartStore struct {
	carts   map[primitive.ObjectID]models.Cart
	getErr  error
	cleared int
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[primitive.ObjectID]models.Cart{}}
}

func (f *fakeCartStore) Get(_ context.Context, userID primitive.ObjectID) (models.Cart, error) {
	if f.getErr != nil {
		return models.Cart{}, f.getErr
	}
	cart, ok := f.carts[userID]
	if !ok {
		return models.Cart{UserID: userID}, nil
	}
	return cart, nil
}

func (f *fakeCartStore) Save(_ context.Context, cart models.Cart) error {
	f.carts[cart.UserID] = cart
	return nil
}

func (f *fakeCartStore) Clear(_ context.Context, userID primitive.ObjectID) error {
	cart := f.carts[userID]
	cart.UserID = userID
	cart.Clear()
	f.carts[userID] = cart
	f.cleared++
	return nil
}

type fakeOrderStore struct {
	orders    []models.Order
	insertErr error
}

func (f *fakeOrderStore) Insert(_ context.Context, order models.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderStore) Get(_ context.Context, id, userID primitive.ObjectID) (models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id && o.UserID == userID {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (f *fakeOrderStore) MarkPaid(_ context.Context, id, userID primitive.ObjectID, paymentID string) error {
	for i := range f.orders {
		if f.orders[i].ID == id && f.orders[i].UserID == userID {
			f.orders[i].PaymentStatus = "completed"
			f.orders[i].PaymentID = paymentID
			return nil
		}
	}
	return ErrNotFound
}

type fakeGateway struct {
	ref   string
	err   error
	calls int
}

func (f *fakeGateway) Charge(_ context.Context, amount float64, method models.PaymentMethod, orderRef string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.ref == "" {
		return "pay_" + orderRef, nil
	}
	return f.ref, nil
}

type fakeProductStore struct {
	products map[primitive.ObjectID]models.Product
	ratings  map[primitive.ObjectID]models.RatingSummary
}

func newFakeProductStore(products ...models.Product) *fakeProductStore {
	f := &fakeProductStore{
		products: map[primitive.ObjectID]models.Product{},
		ratings:  map[primitive.ObjectID]models.RatingSummary{},
	}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductStore) Get(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (f *fakeProductStore) UpdateRating(_ context.Context, id primitive.ObjectID, summary models.RatingSummary) error {
	f.ratings[id] = summary
	return nil
}

type fakeReviewStore struct {
	reviews   []models.Review
	insertErr error
}

func (f *fakeReviewStore) Insert(_ context.Context, review models.Review) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewStore) ListByProduct(_ context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeBatchWriter struct {
	inserted []models.Product
	err      error
}

func (f *fakeBatchWriter) InsertMany(_ context.Context, products []models.Product) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.inserted = append(f.inserted, products...)
	return len(products), nil
}
